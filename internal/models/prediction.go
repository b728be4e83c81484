package models

import "time"

// PredictionInput carries the raw feature values for one subject. Range
// checks are the calling form's responsibility; the service only requires a
// model kind to load the artifact for.
type PredictionInput struct {
	Model     string  `json:"model" binding:"required" example:"linear_regression"`
	Gender    string  `json:"gender" binding:"required" example:"male"`
	Age       int     `json:"age" example:"26"`
	Height    float64 `json:"height" example:"187"`
	Weight    float64 `json:"weight" example:"91"`
	Duration  float64 `json:"duration" example:"15"`
	HeartRate float64 `json:"heart_rate" example:"160"`
	BodyTemp  float64 `json:"body_temp" example:"37"`
}

// PredictionResponse is the single scalar outcome, rounded to one decimal.
type PredictionResponse struct {
	Model     string    `json:"model" example:"linear_regression"`
	Calories  float64   `json:"calories" example:"96.3"`
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"`
}

// TrainModelRequest triggers a training run for one model kind.
type TrainModelRequest struct {
	Model string `json:"model" binding:"required" example:"random_forest"`
}
