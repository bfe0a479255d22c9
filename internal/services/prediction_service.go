package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"flight-delay-app/internal/models"
)

// PredictionService 予測APIクライアント
type PredictionService struct {
	client  *http.Client
	baseURL string
}

// NewPredictionService 新しい予測APIクライアントを作成
func NewPredictionService(baseURL string, timeout time.Duration) *PredictionService {
	return &PredictionService{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Submit は検証済みリクエストを POST /prediction に送信します。
//   - 2xx かつボディがJSONとして解釈できれば PredictionResponse を返す
//   - 2xx でボディが空または解釈不能なら (nil, nil) を返す（データなし扱い）
//   - 非2xx はエラーボディを解析して *models.ServiceError を返す
//   - トランスポート障害は Status 0 の *models.ServiceError を返す
func (ps *PredictionService) Submit(ctx context.Context, req models.PredictionRequest) (*models.PredictionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prediction request: %w", err)
	}

	url := ps.baseURL + "/prediction"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build prediction request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := ps.client.Do(httpReq)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newServiceError(resp.StatusCode, respBody)
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}

	var prediction models.PredictionResponse
	if err := json.Unmarshal(respBody, &prediction); err != nil {
		// 成功ステータスだがボディが解釈できない場合はデータなし扱い
		return nil, nil
	}

	return &prediction, nil
}

// networkError はHTTPレスポンス到達前の障害を表すServiceErrorを作成します。
func networkError(err error) *models.ServiceError {
	return &models.ServiceError{
		Status:  0,
		Message: "network error",
		Err:     err,
	}
}

// newServiceError は非2xxレスポンスからServiceErrorを組み立てます。
// メッセージは payload.message を優先し、なければHTTPステータステキストを使用します。
func newServiceError(status int, body []byte) *models.ServiceError {
	var payload *models.APIErrorPayload
	var parsed models.APIErrorPayload
	if err := json.Unmarshal(body, &parsed); err == nil {
		payload = &parsed
	}

	message := ""
	if payload != nil {
		message = payload.Message
	}
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}

	return &models.ServiceError{
		Status:  status,
		Message: message,
		Payload: payload,
	}
}
