package domain

import "errors"

// 错误分类：handler 层用 errors.Is 映射到 HTTP 状态码。
var (
	// ErrNotFound 按 id 或身份查不到记录。
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateIdentity 注册时用户名冲突（含软删记录）。
	ErrDuplicateIdentity = errors.New("duplicate identity")
	// ErrInvalidCredentials 登录口令校验失败。
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnexpected 存储/基础设施错误兜底。
	ErrUnexpected = errors.New("unexpected failure")
)
