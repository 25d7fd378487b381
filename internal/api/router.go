package api

import (
	"time"

	"cocktail-bot/internal/api/handlers/health"
	"cocktail-bot/internal/api/middleware"
	"cocktail-bot/internal/infrastructure/config"
	"cocktail-bot/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 設置狀態伺服器路由。機器人本體不對外提供
// API，這個伺服器只給維運用的健康檢查端點。
func SetupRouter(cfg *config.Config, ledger health.Pinger) *gin.Engine {
	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	// 健康檢查路由
	router.GET("/health", health.HealthCheck(cfg))
	router.GET("/ready", health.ReadinessCheck(ledger))
	router.GET("/live", health.LivenessCheck)

	common.LogInfo("Router setup completed",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	return router
}
