package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-dessert-api/internal/domain"
	"go-dessert-api/internal/service"
)

// UserHandler 用户集合的生命周期操作（列表/软删/恢复/彻底删除）。
type UserHandler struct {
	lc  *service.Lifecycle[domain.User]
	log *zap.Logger
}

func NewUser(lc *service.Lifecycle[domain.User], log *zap.Logger) *UserHandler {
	return &UserHandler{lc: lc, log: log}
}

// List 返回全部用户，软删的也在内（历史行为，不加隐式过滤）。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.lc.ListAll(c.Request.Context())
	if err != nil {
		fail(c, h.log, err, "could not list users")
		return
	}
	ok(c, users, "users fetched")
}

func (h *UserHandler) SoftDelete(c *gin.Context) {
	u, err := h.lc.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, err, "could not delete user")
		return
	}
	ok(c, u, "user soft deleted")
}

func (h *UserHandler) Restore(c *gin.Context) {
	u, err := h.lc.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, err, "could not restore user")
		return
	}
	ok(c, u, "user restored")
}

func (h *UserHandler) Purge(c *gin.Context) {
	u, err := h.lc.Purge(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, err, "could not delete user forever")
		return
	}
	ok(c, u, "user deleted forever")
}
