package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"flight-delay-app/internal/models"
)

// AirportService 空港ディレクトリクライアント（プロセス寿命のキャッシュ付き）
type AirportService struct {
	client  *http.Client
	baseURL string

	// キャッシュはこのオブジェクトが所有する。取得処理はmuで直列化されるため、
	// Loadが進行中に発行されたRefetchはその完了後に実行される。
	mu     sync.Mutex
	cache  []models.Airport
	loaded bool
}

// NewAirportService 新しい空港ディレクトリクライアントを作成
func NewAirportService(baseURL string, timeout time.Duration) *AirportService {
	return &AirportService{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Load は空港一覧を返します。初回のみネットワーク取得し、以降は
// Refetchされるまでキャッシュを返します。順序はサービスの返却順のままです。
func (as *AirportService) Load(ctx context.Context) ([]models.Airport, error) {
	as.mu.Lock()
	defer as.mu.Unlock()

	if as.loaded {
		return as.cache, nil
	}

	airports, err := as.fetch(ctx)
	if err != nil {
		return nil, err
	}

	as.cache = airports
	as.loaded = true
	return airports, nil
}

// Refetch はキャッシュを無視して必ず再取得します。
// 失敗時はキャッシュを変更せず（古いデータを保持）、エラーを返します。
func (as *AirportService) Refetch(ctx context.Context) ([]models.Airport, error) {
	as.mu.Lock()
	defer as.mu.Unlock()

	airports, err := as.fetch(ctx)
	if err != nil {
		return nil, err
	}

	as.cache = airports
	as.loaded = true
	return airports, nil
}

// fetch は GET /airports を実行します。呼び出し側がmuを保持していること。
func (as *AirportService) fetch(ctx context.Context) ([]models.Airport, error) {
	url := as.baseURL + "/airports"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, networkError(err)
	}

	resp, err := as.client.Do(httpReq)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newServiceError(resp.StatusCode, body)
	}

	var list models.AirportListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &models.ServiceError{
			Status:  resp.StatusCode,
			Message: "invalid airport list response",
			Err:     err,
		}
	}

	return list.Airports, nil
}
