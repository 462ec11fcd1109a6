package domain

import "time"

// User 账户记录。SecretHash 永不出现在任何响应里（json:"-"）。
type User struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	Name       string     `gorm:"uniqueIndex;size:64;not null" json:"name"`
	SecretHash string     `gorm:"size:100;not null" json:"-"`
	AvatarRef  string     `gorm:"size:191" json:"avatarRef"`
	Bio        string     `gorm:"size:255" json:"bio"`
	IsAdmin    bool       `gorm:"not null;default:false" json:"isAdmin"`
	IsLoggedIn bool       `gorm:"not null;default:false" json:"isLoggedIn"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt  *time.Time `gorm:"index" json:"deletedAt"`
}

func (User) TableName() string { return "users" }

// Active 表示记录未被软删。
func (u *User) Active() bool { return u.DeletedAt == nil }
