package services

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"flight-delay-app/internal/models"
)

// maxCarrierLength はキャリアコードの最大文字数です。
const maxCarrierLength = 6

// BuildPredictionRequest は生のフォーム入力から検証済みリクエストを組み立てます。
// 純粋関数（I/Oなし）。失敗時は *models.ValidationError を返します。
//   - destination_airport_id / day_of_week は必須（数値として解釈できない入力も欠落扱い）
//   - day_of_week は 1..7 の整数
//   - carrier は前後の空白を除去し、空なら省略、それ以外は大文字化
//   - origin_airport_id は数字のみ解釈し、空または数値でなければ省略
func BuildPredictionRequest(raw models.RawFormFields) (models.PredictionRequest, error) {
	destID, ok := parseInt(raw.DestinationAirportID)
	if !ok {
		return models.PredictionRequest{}, &models.ValidationError{
			Field:  "destination_airport_id",
			Reason: models.ReasonRequired,
		}
	}

	dayOfWeek, ok := parseInt(raw.DayOfWeek)
	if !ok {
		return models.PredictionRequest{}, &models.ValidationError{
			Field:  "day_of_week",
			Reason: models.ReasonRequired,
		}
	}
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return models.PredictionRequest{}, &models.ValidationError{
			Field:  "day_of_week",
			Reason: models.ReasonOutOfRange,
		}
	}

	carrier := strings.ToUpper(strings.TrimSpace(raw.Carrier))
	if utf8.RuneCountInString(carrier) > maxCarrierLength {
		return models.PredictionRequest{}, &models.ValidationError{
			Field:  "carrier",
			Reason: models.ReasonTooLong,
		}
	}

	req := models.PredictionRequest{
		DestinationAirportID: destID,
		DayOfWeek:            dayOfWeek,
		Carrier:              carrier,
	}

	// 出発地空港は任意。数値でない入力はフィールドごと省略する。
	if originID, ok := parseInt(raw.OriginAirportID); ok {
		req.OriginAirportID = originID
	}

	return req, nil
}

// parseInt parses trimmed decimal input; blank or non-numeric input reports false.
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
