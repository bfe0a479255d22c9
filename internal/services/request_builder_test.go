package services

import (
	"encoding/json"
	"errors"
	"testing"

	"flight-delay-app/internal/models"
)

func TestBuildPredictionRequest_RequiredFields(t *testing.T) {
	testCases := []struct {
		name          string
		raw           models.RawFormFields
		expectedField string
	}{
		{
			name:          "missing destination",
			raw:           models.RawFormFields{DayOfWeek: "3"},
			expectedField: "destination_airport_id",
		},
		{
			name:          "missing day of week",
			raw:           models.RawFormFields{DestinationAirportID: "12892"},
			expectedField: "day_of_week",
		},
		{
			name:          "non-numeric destination counts as missing",
			raw:           models.RawFormFields{DestinationAirportID: "LAX", DayOfWeek: "3"},
			expectedField: "destination_airport_id",
		},
		{
			name:          "non-numeric day of week counts as missing",
			raw:           models.RawFormFields{DestinationAirportID: "12892", DayOfWeek: "monday"},
			expectedField: "day_of_week",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildPredictionRequest(tc.raw)
			var validationErr *models.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != tc.expectedField {
				t.Errorf("expected field %q, got %q", tc.expectedField, validationErr.Field)
			}
			if validationErr.Reason != models.ReasonRequired {
				t.Errorf("expected reason %q, got %q", models.ReasonRequired, validationErr.Reason)
			}
		})
	}
}

func TestBuildPredictionRequest_DayOfWeekRange(t *testing.T) {
	for _, day := range []string{"0", "8", "-1"} {
		raw := models.RawFormFields{DestinationAirportID: "12892", DayOfWeek: day}

		_, err := BuildPredictionRequest(raw)
		var validationErr *models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("day %s: expected ValidationError, got %v", day, err)
		}
		if validationErr.Field != "day_of_week" || validationErr.Reason != models.ReasonOutOfRange {
			t.Errorf("day %s: expected day_of_week/out_of_range, got %s/%s",
				day, validationErr.Field, validationErr.Reason)
		}
	}
}

func TestBuildPredictionRequest_CarrierNormalization(t *testing.T) {
	raw := models.RawFormFields{
		DestinationAirportID: "12892",
		DayOfWeek:            "3",
		Carrier:              " dl ",
	}

	req, err := BuildPredictionRequest(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Carrier != "DL" {
		t.Errorf("expected carrier DL, got %q", req.Carrier)
	}
}

func TestBuildPredictionRequest_CarrierTooLong(t *testing.T) {
	raw := models.RawFormFields{
		DestinationAirportID: "12892",
		DayOfWeek:            "3",
		Carrier:              "TOOLONGCODE",
	}

	_, err := BuildPredictionRequest(raw)
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Field != "carrier" || validationErr.Reason != models.ReasonTooLong {
		t.Errorf("expected carrier/too_long, got %s/%s", validationErr.Field, validationErr.Reason)
	}
}

func TestBuildPredictionRequest_CarrierLengthCountsRunes(t *testing.T) {
	// マルチバイト文字は1文字として数える
	raw := models.RawFormFields{
		DestinationAirportID: "12892",
		DayOfWeek:            "3",
		Carrier:              "日本航空ＡＢ", // 6 runes, 18 bytes
	}

	req, err := BuildPredictionRequest(raw)
	if err != nil {
		t.Fatalf("6-rune carrier should be accepted, got %v", err)
	}
	if req.Carrier == "" {
		t.Error("carrier should be kept")
	}

	raw.Carrier = "日本航空ＡＢＣ" // 7 runes
	_, err = BuildPredictionRequest(raw)
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("7-rune carrier should be rejected, got %v", err)
	}
	if validationErr.Reason != models.ReasonTooLong {
		t.Errorf("expected reason too_long, got %q", validationErr.Reason)
	}
}

func TestBuildPredictionRequest_OptionalFieldsOmitted(t *testing.T) {
	raw := models.RawFormFields{
		DestinationAirportID: "12892",
		DayOfWeek:            "3",
		Carrier:              "   ",
		OriginAirportID:      "",
	}

	req, err := BuildPredictionRequest(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 空のオプションフィールドはキーごと省略される
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	expected := `{"airport_id":12892,"day_of_week":3}`
	if string(body) != expected {
		t.Errorf("expected body %s, got %s", expected, string(body))
	}
}

func TestBuildPredictionRequest_OriginParsing(t *testing.T) {
	testCases := []struct {
		name     string
		origin   string
		expected int
	}{
		{"numeric origin kept", "15304", 15304},
		{"non-numeric origin omitted", "abc", 0},
		{"blank origin omitted", "  ", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := models.RawFormFields{
				DestinationAirportID: "12892",
				DayOfWeek:            "3",
				OriginAirportID:      tc.origin,
			}

			req, err := BuildPredictionRequest(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.OriginAirportID != tc.expected {
				t.Errorf("expected origin %d, got %d", tc.expected, req.OriginAirportID)
			}
		})
	}
}
