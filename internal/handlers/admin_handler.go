package handlers

import (
	"net/http"
	"sync/atomic"

	config "flight-delay-app/configs"
	"flight-delay-app/internal/services"

	"github.com/gin-gonic/gin"
)

// isMaintenanceMode はサーバーがメンテナンスモードかどうかを示します。
// atomic.Boolを使用して、スレッドセーフな読み書きを保証します。
var isMaintenanceMode atomic.Bool

// AdminHandler は管理者向け操作のハンドラです。
type AdminHandler struct {
	adminUsername        string
	adminPassword        string
	environment          string
	predictionAPIBaseURL string
	historyService       *services.HistoryService
}

// NewAdminHandler は新しいAdminHandlerを生成します。
func NewAdminHandler(cfg *config.Config, historyService *services.HistoryService) *AdminHandler {
	return &AdminHandler{
		adminUsername:        cfg.AdminUsername,
		adminPassword:        cfg.AdminPassword,
		environment:          cfg.Environment,
		predictionAPIBaseURL: cfg.PredictionAPIBaseURL,
		historyService:       historyService,
	}
}

// AdminCredentials は管理者認証のためのリクエストボディです。
type AdminCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// authenticate は管理者認証を行います。失敗時はレスポンスを書き込んでfalseを返します。
func (h *AdminHandler) authenticate(c *gin.Context) bool {
	var input AdminCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return false
	}

	if input.Username != h.adminUsername || input.Password != h.adminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return false
	}

	return true
}

// StartMaintenance はメンテナンスモードを開始します。
func (h *AdminHandler) StartMaintenance(c *gin.Context) {
	if !h.authenticate(c) {
		return
	}

	isMaintenanceMode.Store(true)
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance mode started"})
}

// StopMaintenance はメンテナンスモードを停止します。
func (h *AdminHandler) StopMaintenance(c *gin.Context) {
	if !h.authenticate(c) {
		return
	}

	isMaintenanceMode.Store(false)
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance mode stopped"})
}

// GetHealthStatus は現在のサーバーの状態を返します。
// メンテナンス状態に加えて、予測APIの接続先と履歴件数を含みます。
func (h *AdminHandler) GetHealthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"isMaintenanceMode":       isMaintenanceMode.Load(),
		"environment":             h.environment,
		"prediction_api_base_url": h.predictionAPIBaseURL,
		"history_count":           h.historyService.Count(),
	})
}

// HealthCheck は外部のヘルスチェッカー（例: ロードバランサー）からのリクエストに応答します。
func HealthCheck(c *gin.Context) {
	if isMaintenanceMode.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "message": "Server is in maintenance mode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "flight-delay-app"})
}
