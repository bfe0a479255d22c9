package main

import (
	"log"
	"net/http"

	config "flight-delay-app/configs"
	"flight-delay-app/internal/handlers"
	"flight-delay-app/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .envファイルを読み込み
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// 設定の読み込み
	cfg := config.LoadConfig()

	// Ginルーターの初期化
	r := gin.Default()

	// サービスの初期化
	monitoringService := services.NewMonitoringService()
	airportService := services.NewAirportService(cfg.PredictionAPIBaseURL, cfg.PredictionAPITimeout)
	predictionService := services.NewPredictionService(cfg.PredictionAPIBaseURL, cfg.PredictionAPITimeout)
	historyService := services.NewHistoryService()
	formService := services.NewFormService(predictionService, historyService)

	// ハンドラーの初期化
	airportHandler := handlers.NewAirportHandler(airportService)
	predictionHandler := handlers.NewPredictionHandler(formService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	adminHandler := handlers.NewAdminHandler(cfg, historyService)
	monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

	// ミドルウェアの登録
	r.Use(monitoringService.LoggingMiddleware()) // ロギングミドルウェアをグローバルに適用
	r.Use(cors.Default())

	// 認証ミドルウェア
	authMiddleware := func(apiKey string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if apiKey == "" || apiKey == "default_secret_key" {
				c.Next()
				return
			}
			providedKey := c.GetHeader("X-API-KEY")
			if providedKey != apiKey {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.Next()
		}
	}

	// ヘルスチェックエンドポイント
	r.GET("/health", handlers.HealthCheck)

	// フォームページ
	r.StaticFile("/", "./static/index.html")

	// APIバージョン1のルートグループ
	v1 := r.Group("/api/v1")
	v1.Use(authMiddleware(cfg.APIKey))
	{
		// 管理者向けAPI
		admin := v1.Group("/admin")
		{
			admin.GET("/health-status", adminHandler.GetHealthStatus)
			admin.POST("/maintenance/start", adminHandler.StartMaintenance)
			admin.POST("/maintenance/stop", adminHandler.StopMaintenance)
		}

		// モニタリングAPI
		monitoring := v1.Group("/monitoring")
		{
			monitoring.GET("/logs", monitoringHandler.GetLogs)
		}

		// 空港ディレクトリAPI
		airports := v1.Group("/airports")
		{
			airports.GET("", airportHandler.GetAirports)
			airports.POST("/refresh", airportHandler.RefreshAirports)
		}

		// 予測フォームAPI
		v1.POST("/prediction", predictionHandler.SubmitPrediction)
		form := v1.Group("/form")
		{
			form.GET("", predictionHandler.GetForm)
			form.POST("/reset", predictionHandler.ResetForm)
		}

		// 履歴API
		history := v1.Group("/history")
		{
			history.GET("", historyHandler.GetHistory)
			history.GET("/export", historyHandler.ExportHistory)
		}
	}

	log.Printf("Starting flight-delay-app server on :%s (prediction API: %s)", cfg.Port, cfg.PredictionAPIBaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
