package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-dessert-api/internal/core/upload"
	"go-dessert-api/internal/domain"
	"go-dessert-api/internal/repo"
	"go-dessert-api/internal/service"
)

// DessertHandler 甜品集合的增改查和生命周期操作。
type DessertHandler struct {
	lc       *service.Lifecycle[domain.Dessert]
	desserts *repo.Store[domain.Dessert]
	saver    *upload.Saver
	log      *zap.Logger
}

func NewDessert(lc *service.Lifecycle[domain.Dessert], desserts *repo.Store[domain.Dessert], saver *upload.Saver, log *zap.Logger) *DessertHandler {
	return &DessertHandler{lc: lc, desserts: desserts, saver: saver, log: log}
}

func (h *DessertHandler) List(c *gin.Context) {
	items, err := h.lc.ListAll(c.Request.Context())
	if err != nil {
		fail(c, h.log, err, "could not list desserts")
		return
	}
	ok(c, items, "desserts fetched")
}

// Create 接 multipart 表单：文本字段 + 文件 image。
// ownerId 只记录，不校验对应用户是否存在。
func (h *DessertHandler) Create(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		fail(c, h.log, fmt.Errorf("image file: %w", err), "could not create dessert")
		return
	}
	imageRef, err := h.saver.Save(fh)
	if err != nil {
		fail(c, h.log, err, "could not create dessert")
		return
	}

	d := &domain.Dessert{
		Name:         c.PostForm("name"),
		ImageRef:     imageRef,
		Description:  c.PostForm("description"),
		Ingredients:  c.PostForm("ingredients"),
		Instructions: c.PostForm("instructions"),
		Difficulty:   c.PostForm("difficulty"),
		Duration:     c.PostForm("duration"),
		OwnerID:      c.PostForm("userId"),
	}
	if err := h.desserts.Insert(c.Request.Context(), d); err != nil {
		fail(c, h.log, err, "could not create dessert")
		return
	}
	ok(c, d, "dessert created")
}

type dessertUpdateIn struct {
	Name         string `json:"name" form:"name"`
	Description  string `json:"description" form:"description"`
	Ingredients  string `json:"ingredients" form:"ingredients"`
	Instructions string `json:"instructions" form:"instructions"`
	Difficulty   string `json:"difficulty" form:"difficulty"`
	Duration     string `json:"duration" form:"duration"`
}

// Update 按 truthy 规则合并：空串字段不落库（“没传”和“清空”不作区分）。
func (h *DessertHandler) Update(c *gin.Context) {
	var in dessertUpdateIn
	if err := c.ShouldBind(&in); err != nil {
		fail(c, h.log, err, "could not update dessert")
		return
	}
	d, err := h.lc.Update(c.Request.Context(), c.Param("id"), map[string]any{
		"name":         in.Name,
		"description":  in.Description,
		"ingredients":  in.Ingredients,
		"instructions": in.Instructions,
		"difficulty":   in.Difficulty,
		"duration":     in.Duration,
	})
	if err != nil {
		fail(c, h.log, err, "could not update dessert")
		return
	}
	ok(c, d, "dessert updated")
}

func (h *DessertHandler) SoftDelete(c *gin.Context) {
	d, err := h.lc.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, err, "could not delete dessert")
		return
	}
	ok(c, d, "dessert soft deleted")
}

func (h *DessertHandler) Restore(c *gin.Context) {
	d, err := h.lc.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, err, "could not restore dessert")
		return
	}
	ok(c, d, "dessert restored")
}

func (h *DessertHandler) Purge(c *gin.Context) {
	d, err := h.lc.Purge(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, err, "could not delete dessert forever")
		return
	}
	ok(c, d, "dessert deleted forever")
}
