package models

import (
	"fmt"
	"sort"
	"strings"
)

// Validation failure reasons produced by the request builder.
const (
	ReasonRequired   = "required"
	ReasonOutOfRange = "out_of_range"
	ReasonTooLong    = "too_long"
)

// GenericErrorMessage is shown when no better message can be extracted.
const GenericErrorMessage = "予期しないエラーが発生しました。もう一度お試しください。"

// ValidationError は送信前のローカル検証エラーです。ネットワークには送信されません。
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// APIErrorPayload is the structured error body the prediction API may return.
type APIErrorPayload struct {
	Errors  map[string]string `json:"errors,omitempty"`
	Message string            `json:"message,omitempty"`
	Detail  string            `json:"detail,omitempty"`
}

// DisplayMessage はユーザー向けの表示文字列を組み立てます。
// errorsマップがあれば全メッセージを1行ずつ（キーのソート順で）連結し、
// なければmessage/detailを使用します。
func (p *APIErrorPayload) DisplayMessage() string {
	if p == nil {
		return ""
	}
	if len(p.Errors) > 0 {
		keys := make([]string, 0, len(p.Errors))
		for k := range p.Errors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := make([]string, 0, len(keys))
		for _, k := range keys {
			lines = append(lines, p.Errors[k])
		}
		return strings.Join(lines, "\n")
	}
	if p.Message != "" {
		return p.Message
	}
	return p.Detail
}

// ServiceError はネットワーク/サービス層のエラーです。
// Status 0 はトランスポート障害（アプリケーションエラーと区別可能）を表します。
type ServiceError struct {
	Status  int              `json:"status"`
	Message string           `json:"message"`
	Payload *APIErrorPayload `json:"payload,omitempty"`
	Err     error            `json:"-"`
}

func (e *ServiceError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("service error (status %d): %s", e.Status, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether the error happened before any HTTP response.
func (e *ServiceError) IsNetworkError() bool {
	return e.Status == 0
}

// DisplayMessage はペイロード優先でユーザー向け文字列を返します。
func (e *ServiceError) DisplayMessage() string {
	if msg := e.Payload.DisplayMessage(); msg != "" {
		return msg
	}
	if e.Message != "" {
		return e.Message
	}
	return GenericErrorMessage
}
