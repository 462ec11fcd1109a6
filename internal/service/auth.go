package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"go-dessert-api/internal/domain"
	"go-dessert-api/internal/repo"
	"go-dessert-api/pkg/utils"
)

// Auth 负责注册和登录。没有 token 会话，登录只翻转持久化的
// isLoggedIn 标记，且没有任何操作会把它清回 false。
type Auth struct {
	users *repo.Store[domain.User]
	log   *zap.Logger
}

func NewAuth(users *repo.Store[domain.User], log *zap.Logger) *Auth {
	return &Auth{users: users, log: log}
}

type RegisterInput struct {
	Name      string
	Secret    string
	Bio       string
	AvatarRef string
}

// Register 建新账户。用户名查重不区分软删状态：同名记录哪怕已软删，
// 注册也会被拒。
func (a *Auth) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	existing, err := a.users.FindByField(ctx, "name", in.Name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		a.log.Warn("register rejected, name taken", zap.String("name", in.Name))
		return nil, fmt.Errorf("name %q: %w", in.Name, domain.ErrDuplicateIdentity)
	}

	u := &domain.User{
		Name:       in.Name,
		SecretHash: utils.HashPassword(in.Secret),
		AvatarRef:  in.AvatarRef,
		Bio:        in.Bio,
		IsAdmin:    false,
		IsLoggedIn: false,
	}
	if err := a.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	a.log.Info("user registered", zap.String("id", u.ID), zap.String("name", u.Name))
	return u, nil
}

// Login 按用户名查账户并校验口令，成功后持久化 isLoggedIn=true。
func (a *Auth) Login(ctx context.Context, name, secret string) (*domain.User, error) {
	u, err := a.users.FindByField(ctx, "name", name)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(secret, u.SecretHash) {
		a.log.Warn("login rejected", zap.String("name", name))
		return nil, domain.ErrInvalidCredentials
	}
	logged, err := a.users.UpdateByID(ctx, u.ID, map[string]any{"is_logged_in": true})
	if err != nil {
		return nil, err
	}
	a.log.Info("user logged in", zap.String("id", u.ID), zap.String("name", name))
	return logged, nil
}
