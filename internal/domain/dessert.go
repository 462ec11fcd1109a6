package domain

import "time"

// Dessert 甜品记录。OwnerID 只是弱引用，不校验、不级联删除。
// 字段保持字符串，不做类型转换。
type Dessert struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Name         string     `gorm:"size:128" json:"name"`
	ImageRef     string     `gorm:"size:191" json:"imageRef"`
	Description  string     `gorm:"size:1024" json:"description"`
	Ingredients  string     `gorm:"size:1024" json:"ingredients"`
	Instructions string     `gorm:"size:2048" json:"instructions"`
	Difficulty   string     `gorm:"size:32" json:"difficulty"`
	Duration     string     `gorm:"size:32" json:"duration"`
	OwnerID      string     `gorm:"size:36;index" json:"ownerId"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt    *time.Time `gorm:"index" json:"deletedAt"`
}

func (Dessert) TableName() string { return "desserts" }

func (d *Dessert) Active() bool { return d.DeletedAt == nil }
