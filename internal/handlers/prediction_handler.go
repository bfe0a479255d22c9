package handlers

import (
	"net/http"

	"flight-delay-app/internal/models"
	"flight-delay-app/internal/services"

	"github.com/gin-gonic/gin"
)

// PredictionHandler 予測フォームハンドラー
type PredictionHandler struct {
	formService *services.FormService
}

// NewPredictionHandler 新しい予測フォームハンドラーを作成
func NewPredictionHandler(formService *services.FormService) *PredictionHandler {
	return &PredictionHandler{
		formService: formService,
	}
}

// GetFormService FormServiceを取得
func (ph *PredictionHandler) GetFormService() *services.FormService {
	return ph.formService
}

// SubmitPrediction はフォーム入力を受け取り、オーケストレーション経由で
// 予測を実行するハンドラー。スナップショットを常に返します。
func (ph *PredictionHandler) SubmitPrediction(c *gin.Context) {
	var fields models.RawFormFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "リクエストボディが不正です",
		})
		return
	}

	snapshot := ph.formService.Submit(c.Request.Context(), fields)

	c.JSON(statusForSnapshot(snapshot), gin.H{
		"success": snapshot.Result != nil,
		"data":    snapshot,
	})
}

// GetForm は現在のフォーム状態を返すハンドラー
func (ph *PredictionHandler) GetForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ph.formService.Snapshot(),
	})
}

// ResetForm は結果とエラーをクリアするハンドラー。
// フォーム入力と空港キャッシュはそのまま残ります。
func (ph *PredictionHandler) ResetForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ph.formService.Reset(),
	})
}

// statusForSnapshot はスナップショットのエラー種別をHTTPステータスに対応付けます。
func statusForSnapshot(snapshot services.FormSnapshot) int {
	switch snapshot.ErrorKind {
	case "":
		return http.StatusOK
	case services.ErrorKindValidation:
		return http.StatusBadRequest
	case services.ErrorKindInFlight:
		return http.StatusConflict
	case services.ErrorKindNoData:
		return http.StatusOK
	case services.ErrorKindService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
