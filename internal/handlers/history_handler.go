package handlers

import (
	"fmt"
	"net/http"
	"time"

	"flight-delay-app/internal/services"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HistoryHandler 予測履歴ハンドラー
type HistoryHandler struct {
	historyService *services.HistoryService
}

// NewHistoryHandler 新しい予測履歴ハンドラーを作成
func NewHistoryHandler(historyService *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// GetHistory は送信履歴を新しい順で返すハンドラー
func (hh *HistoryHandler) GetHistory(c *gin.Context) {
	records := hh.historyService.List()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
		"count":   len(records),
	})
}

// ExportHistory は履歴をExcelファイルとしてダウンロードさせるハンドラー
func (hh *HistoryHandler) ExportHistory(c *gin.Context) {
	f, err := hh.historyService.ExportXLSX()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("prediction_history_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", xlsxContentType)

	if _, err := f.WriteTo(c.Writer); err != nil {
		// ヘッダー送信後のため、ログに残すのみ
		_ = c.Error(err)
	}
}
