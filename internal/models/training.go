package models

import "github.com/google/uuid"

// TrainingRequest is a raw sensor package: a workout code and its readings
// in positional order.
type TrainingRequest struct {
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
}

// Summary is a computed training summary as returned over the API.
type Summary struct {
	ID           uuid.UUID `json:"id"`
	WorkoutType  string    `json:"workout_type"`
	TrainingType string    `json:"training_type"`
	Duration     float64   `json:"duration"`
	Distance     float64   `json:"distance"`
	Speed        float64   `json:"speed"`
	Calories     float64   `json:"calories"`
	Message      string    `json:"message"`
}

// WorkoutType describes one accepted workout code.
type WorkoutType struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Arity  int      `json:"arity"`
	Fields []string `json:"fields"`
}

// ErrorResponse is the JSON error body. Kind is set for rejected sensor packages.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
