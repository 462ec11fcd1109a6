package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mdw "go-dessert-api/internal/transport/http/middleware"
	resp "go-dessert-api/internal/transport/http/response"
)

// fail 是所有 handler 的统一出错出口：先记日志，再发一个全新的错误信封。
// 信封每次现造，绝不跨请求复用。
func fail(c *gin.Context, l *zap.Logger, err error, msg string) {
	l.Error(msg,
		zap.Error(err),
		zap.String("rid", c.GetString(mdw.KeyRequestID)),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(resp.StatusOf(err), resp.Fail(msg))
}

func ok(c *gin.Context, data any, msg string) {
	c.JSON(http.StatusOK, resp.OK(data, msg))
}
