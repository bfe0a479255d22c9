package models

import "time"

// Airport represents a selectable destination airport.
type Airport struct {
	ID   int    `json:"airport_id"`
	Name string `json:"airport_name"`
}

// AirportListResponse is the wire shape of GET /airports on the prediction API.
type AirportListResponse struct {
	Airports []Airport `json:"airports"`
	Count    int       `json:"count"`
}

// RawFormFields holds the untyped form input exactly as the user entered it.
type RawFormFields struct {
	DestinationAirportID string `json:"destination_airport_id"`
	DayOfWeek            string `json:"day_of_week"`
	Carrier              string `json:"carrier"`
	OriginAirportID      string `json:"origin_airport_id"`
}

// PredictionRequest is the validated payload sent to POST /prediction.
// The destination airport serializes as "airport_id" per the service
// contract. Optional fields are omitted entirely when unset.
type PredictionRequest struct {
	DestinationAirportID int    `json:"airport_id"`
	DayOfWeek            int    `json:"day_of_week"`
	Carrier              string `json:"carrier,omitempty"`
	OriginAirportID      int    `json:"origin_airport_id,omitempty"`
}

// EchoedInput is the submitted request as the service saw it, with the
// service-side defaults filled in.
type EchoedInput struct {
	AirportID       int    `json:"airport_id"`
	DayOfWeek       int    `json:"day_of_week"`
	Carrier         string `json:"carrier"`
	OriginAirportID int    `json:"origin_airport_id"`
}

// PredictionResponse represents a successful response from POST /prediction.
type PredictionResponse struct {
	EchoedInput             EchoedInput `json:"input"`
	Prediction              string      `json:"prediction"` // "delayed" or "on_time"
	DelayProbability        float64     `json:"delay_probability"`
	DelayProbabilityPercent float64     `json:"delay_probability_percent"`
	ModelConfidencePercent  float64     `json:"model_confidence_percent"`
}

// PredictionRecord is a single history entry for a successful submission.
type PredictionRecord struct {
	ID          string             `json:"id"`
	SubmittedAt time.Time          `json:"submitted_at"`
	Request     PredictionRequest  `json:"request"`
	Response    PredictionResponse `json:"response"`
}
