package services

import (
	"fmt"
	"sync"
	"time"

	"flight-delay-app/internal/models"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// historySheetName エクスポート時のシート名
const historySheetName = "Predictions"

// historyHeaders エクスポート時のヘッダー行
var historyHeaders = []string{
	"ID",
	"Submitted At",
	"Airport ID",
	"Day Of Week",
	"Carrier",
	"Origin Airport ID",
	"Prediction",
	"Delay Probability",
	"Delay Probability (%)",
	"Model Confidence (%)",
}

// HistoryService 予測送信履歴（プロセス寿命のインメモリ保持）
type HistoryService struct {
	mu      sync.RWMutex
	records []models.PredictionRecord
}

// NewHistoryService 新しい履歴サービスを作成
func NewHistoryService() *HistoryService {
	return &HistoryService{
		records: make([]models.PredictionRecord, 0),
	}
}

// Add は成功した送信を履歴に記録します。
func (hs *HistoryService) Add(req models.PredictionRequest, resp models.PredictionResponse) models.PredictionRecord {
	record := models.PredictionRecord{
		ID:          uuid.NewString(),
		SubmittedAt: time.Now(),
		Request:     req,
		Response:    resp,
	}

	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.records = append(hs.records, record)
	return record
}

// Count は記録済みの履歴件数を返します。
func (hs *HistoryService) Count() int {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	return len(hs.records)
}

// List は履歴を新しい順で返します。
func (hs *HistoryService) List() []models.PredictionRecord {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	out := make([]models.PredictionRecord, len(hs.records))
	for i, record := range hs.records {
		out[len(hs.records)-1-i] = record
	}
	return out
}

// ExportXLSX は履歴をExcelワークブックとして書き出します。
func (hs *HistoryService) ExportXLSX() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", historySheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, header := range historyHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell name: %w", err)
		}
		if err := f.SetCellValue(historySheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	hs.mu.RLock()
	defer hs.mu.RUnlock()

	for i, record := range hs.records {
		row := i + 2
		values := []interface{}{
			record.ID,
			record.SubmittedAt.Format(time.RFC3339),
			record.Request.DestinationAirportID,
			record.Request.DayOfWeek,
			record.Request.Carrier,
			record.Request.OriginAirportID,
			record.Response.Prediction,
			record.Response.DelayProbability,
			record.Response.DelayProbabilityPercent,
			record.Response.ModelConfidencePercent,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(historySheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write record: %w", err)
			}
		}
	}

	return f, nil
}
