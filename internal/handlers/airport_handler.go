package handlers

import (
	"errors"
	"net/http"

	"flight-delay-app/internal/models"
	"flight-delay-app/internal/services"

	"github.com/gin-gonic/gin"
)

// AirportHandler 空港ディレクトリハンドラー
type AirportHandler struct {
	airportService *services.AirportService
}

// NewAirportHandler 新しい空港ディレクトリハンドラーを作成
func NewAirportHandler(airportService *services.AirportService) *AirportHandler {
	return &AirportHandler{
		airportService: airportService,
	}
}

// GetAirportService AirportServiceを取得
func (ah *AirportHandler) GetAirportService() *services.AirportService {
	return ah.airportService
}

// GetAirports は空港一覧を返すハンドラー（キャッシュ利用）
func (ah *AirportHandler) GetAirports(c *gin.Context) {
	airports, err := ah.airportService.Load(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    airports,
		"count":   len(airports),
	})
}

// RefreshAirports はキャッシュを無視して空港一覧を再取得するハンドラー
func (ah *AirportHandler) RefreshAirports(c *gin.Context) {
	airports, err := ah.airportService.Refetch(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    airports,
		"count":   len(airports),
	})
}

// respondServiceError は上流サービスのエラーをHTTPレスポンスに変換します。
func respondServiceError(c *gin.Context, err error) {
	var serviceErr *models.ServiceError
	if errors.As(err, &serviceErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   serviceErr.DisplayMessage(),
			"status":  serviceErr.Status,
			"network": serviceErr.IsNetworkError(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}
