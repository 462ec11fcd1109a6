package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-dessert-api/internal/core/config"
	"go-dessert-api/internal/core/upload"
	"go-dessert-api/internal/domain"
	"go-dessert-api/internal/repo"
	"go-dessert-api/internal/service"
	"go-dessert-api/internal/transport/http/handler"
	mdw "go-dessert-api/internal/transport/http/middleware"
)

const landingHTML = `<h1>Welcome to the Dessert API!</h1>`

// NewEngine 组装完整路由。路径表见 SPEC，全部挂在根上。
func NewEngine(l *zap.Logger, db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// SimpleRecovery 放最内层，handler panic 也走统一信封；
	// RecoveryWithZap 兜中间件自身的 panic 并带栈打印。
	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		mdw.SimpleRecovery(l),
	)

	// 依赖装配
	users := repo.NewStore[domain.User](db)
	desserts := repo.NewStore[domain.Dessert](db)
	saver := upload.NewSaver(cfg.Upload.Dir)

	authH := handler.NewAuth(service.NewAuth(users, l), saver, l)
	userH := handler.NewUser(service.NewLifecycle(users, "users", l), l)
	dessertH := handler.NewDessert(
		service.NewLifecycle(desserts, "desserts", l), desserts, saver, l)

	// 杂项
	r.GET("/", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, landingHTML)
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/files", cfg.Upload.Dir) // 上传的图片走静态服务

	// 甜品
	r.GET("/desserts", dessertH.List)
	r.POST("/desserts/create", dessertH.Create)
	r.PUT("/desserts/:id", dessertH.Update)
	r.DELETE("/desserts/:id", dessertH.SoftDelete)
	r.PATCH("/desserts/:id", dessertH.Restore)
	r.DELETE("/desserts/:id/forever", dessertH.Purge)

	// 账户
	r.POST("/create/user", authH.Register)
	r.POST("/login/user", authH.Login)

	// 用户
	r.GET("/users", userH.List)
	r.DELETE("/users/:id", userH.SoftDelete)
	r.PATCH("/users/:id", userH.Restore)
	r.DELETE("/users/:id/forever", userH.Purge)

	// 未匹配路由：裸错误对象，不走统一信封（历史行为）
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})

	return r
}
