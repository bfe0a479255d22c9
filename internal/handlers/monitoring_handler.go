package handlers

import (
	"net/http"
	"strconv"

	"flight-delay-app/internal/services"

	"github.com/gin-gonic/gin"
)

// MonitoringHandler モニタリングハンドラー
type MonitoringHandler struct {
	monitoringService *services.MonitoringService
}

// NewMonitoringHandler 新しいモニタリングハンドラーを作成
func NewMonitoringHandler(monitoringService *services.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{
		monitoringService: monitoringService,
	}
}

// GetLogs は最近のリクエストログとステータス集計を返すハンドラー
func (mh *MonitoringHandler) GetLogs(c *gin.Context) {
	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	logs := mh.monitoringService.RecentLogs(limit)

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          logs,
		"count":         len(logs),
		"status_counts": mh.monitoringService.StatusCounts(),
	})
}
