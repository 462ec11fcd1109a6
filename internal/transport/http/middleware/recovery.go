package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "go-dessert-api/internal/transport/http/response"
)

// SimpleRecovery 兜住 handler panic，返回 500 信封。
func SimpleRecovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.String("rid", c.GetString(KeyRequestID)),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp.Fail("internal error"))
			}
		}()
		c.Next()
	}
}
