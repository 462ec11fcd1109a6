package response

import (
	"errors"
	"net/http"

	"go-dessert-api/internal/domain"
)

// StatusOf 把内部错误分类映射到 HTTP 状态码。
// DuplicateIdentity 沿用 404（历史行为），未识别错误一律 500。
func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateIdentity):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
