package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"flight-delay-app/internal/models"
)

// FormState はフォームの状態です。送信の成否はresult/errorのどちらが
// 埋まっているかで区別され、どちらの場合もidleに戻ります。
type FormState string

const (
	// StateIdle 待機中（結果またはエラーの表示を含む）
	StateIdle FormState = "idle"
	// StateSubmitting 送信中（再送信は拒否される）
	StateSubmitting FormState = "submitting"
)

// Error kinds attached to a snapshot so callers can map them without
// re-parsing the display string.
const (
	ErrorKindValidation = "validation"
	ErrorKindService    = "service"
	ErrorKindNoData     = "no_data"
	ErrorKindInFlight   = "in_flight"
	ErrorKindUnknown    = "unknown"
)

// noDataMessage 成功ステータスだが結果が得られなかった場合の表示文字列
const noDataMessage = "サービスから予測結果が返されませんでした。"

// inFlightMessage 送信中の再送信を拒否したときの表示文字列
const inFlightMessage = "送信処理が進行中です。完了までお待ちください。"

// FormSnapshot はフォームの現在状態のスナップショットです。
type FormSnapshot struct {
	State     FormState                  `json:"state"`
	Fields    models.RawFormFields       `json:"fields"`
	CanSubmit bool                       `json:"can_submit"`
	Result    *models.PredictionResponse `json:"result,omitempty"`
	Error     string                     `json:"error,omitempty"`
	ErrorKind string                     `json:"error_kind,omitempty"`
}

// FormService はフォームのオーケストレーションを行うヘッドレスな状態機械です。
// 検証 → リクエスト組み立て → 送信 → 結果/エラー反映を直列に実行します。
type FormService struct {
	mu           sync.Mutex
	state        FormState
	fields       models.RawFormFields
	result       *models.PredictionResponse
	displayError string
	errorKind    string

	predictions *PredictionService
	history     *HistoryService
}

// NewFormService 新しいフォームサービスを作成
func NewFormService(predictions *PredictionService, history *HistoryService) *FormService {
	return &FormService{
		state:       StateIdle,
		predictions: predictions,
		history:     history,
	}
}

// SetFields はフォーム入力を更新します。結果とエラーには触れません。
func (fs *FormService) SetFields(fields models.RawFormFields) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.fields = fields
}

// CanSubmit は送信ガードです。目的地空港と曜日の両方が入力されているときのみtrue。
func (fs *FormService) CanSubmit() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return canSubmit(fs.fields)
}

func canSubmit(fields models.RawFormFields) bool {
	return strings.TrimSpace(fields.DestinationAirportID) != "" &&
		strings.TrimSpace(fields.DayOfWeek) != ""
}

// Snapshot は現在状態のコピーを返します。
func (fs *FormService) Snapshot() FormSnapshot {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.snapshotLocked()
}

func (fs *FormService) snapshotLocked() FormSnapshot {
	return FormSnapshot{
		State:     fs.state,
		Fields:    fs.fields,
		CanSubmit: canSubmit(fs.fields),
		Result:    fs.result,
		Error:     fs.displayError,
		ErrorKind: fs.errorKind,
	}
}

// Reset は結果とエラーをクリアして送信前の状態に戻します。
// フォーム入力と空港キャッシュには触れません。
func (fs *FormService) Reset() FormSnapshot {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.result = nil
	fs.displayError = ""
	fs.errorKind = ""
	return fs.snapshotLocked()
}

// Submit はフォーム入力を検証・送信し、結果を反映したスナップショットを返します。
// 同時に進行できる送信は1件のみで、送信開始時に前回のエラーと結果をクリアします。
// エラーは表示用文字列に変換され、呼び出し側へ伝播しません。
func (fs *FormService) Submit(ctx context.Context, fields models.RawFormFields) FormSnapshot {
	fs.mu.Lock()
	if fs.state == StateSubmitting {
		snap := fs.snapshotLocked()
		snap.Error = inFlightMessage
		snap.ErrorKind = ErrorKindInFlight
		fs.mu.Unlock()
		return snap
	}

	fs.fields = fields
	fs.result = nil
	fs.displayError = ""
	fs.errorKind = ""

	req, err := BuildPredictionRequest(fields)
	if err != nil {
		fs.displayError, fs.errorKind = displayFor(err)
		snap := fs.snapshotLocked()
		fs.mu.Unlock()
		return snap
	}

	fs.state = StateSubmitting
	fs.mu.Unlock()

	// ネットワーク呼び出し中はロックを保持しない
	resp, err := fs.predictions.Submit(ctx, req)

	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.state = StateIdle

	switch {
	case err != nil:
		fs.displayError, fs.errorKind = displayFor(err)
	case resp == nil:
		fs.displayError = noDataMessage
		fs.errorKind = ErrorKindNoData
	default:
		fs.result = resp
		if fs.history != nil {
			fs.history.Add(req, *resp)
		}
	}

	return fs.snapshotLocked()
}

// displayFor はエラー種別ごとに表示用文字列とエラー種別タグを返します。
// 想定外のエラーはログに記録し、汎用メッセージに変換します。
func displayFor(err error) (string, string) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return validationMessage(validationErr), ErrorKindValidation
	}

	var serviceErr *models.ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr.DisplayMessage(), ErrorKindService
	}

	log.Printf("unexpected error during form submission: %v", err)
	return models.GenericErrorMessage, ErrorKindUnknown
}

func validationMessage(err *models.ValidationError) string {
	switch err.Reason {
	case models.ReasonRequired:
		return fmt.Sprintf("%s is required", err.Field)
	case models.ReasonOutOfRange:
		return fmt.Sprintf("%s must be an integer between 1 and 7", err.Field)
	case models.ReasonTooLong:
		return fmt.Sprintf("%s must be at most %d characters", err.Field, maxCarrierLength)
	default:
		return err.Error()
	}
}
