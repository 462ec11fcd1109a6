package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-dessert-api/internal/core/upload"
	"go-dessert-api/internal/service"
)

// AuthHandler 注册 / 登录。
//
//	POST /create/user  multipart：name, secret, bio + 文件 avatar
//	POST /login/user   JSON：{name, secret}
type AuthHandler struct {
	auth  *service.Auth
	saver *upload.Saver
	log   *zap.Logger
}

func NewAuth(auth *service.Auth, saver *upload.Saver, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, saver: saver, log: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
	name := c.PostForm("name")
	secret := c.PostForm("secret")
	bio := c.PostForm("bio")

	fh, err := c.FormFile("avatar")
	if err != nil {
		fail(c, h.log, fmt.Errorf("avatar file: %w", err), "could not create user")
		return
	}
	avatarRef, err := h.saver.Save(fh)
	if err != nil {
		fail(c, h.log, err, "could not create user")
		return
	}

	u, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Name:      name,
		Secret:    secret,
		Bio:       bio,
		AvatarRef: avatarRef,
	})
	if err != nil {
		fail(c, h.log, err, "could not create user")
		return
	}
	ok(c, u, "user created")
}

type loginIn struct {
	Name   string `json:"name" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, h.log, err, "login failed")
		return
	}
	u, err := h.auth.Login(c.Request.Context(), in.Name, in.Secret)
	if err != nil {
		fail(c, h.log, err, "login failed")
		return
	}
	ok(c, u, "login successful")
}
