package ml

import (
	"math"

	"calorify/internal/models"
)

// CaloriePredictor is the prediction entry point the API layer depends on.
type CaloriePredictor interface {
	Predict(input *models.PredictionInput) (float64, error)
}

// Predictor serves single-row predictions from persisted artifacts. It reads
// through the same ArtifactStore and FeatureRow contract the trainer used, so
// the column ordering cannot diverge between training and inference.
type Predictor struct {
	artifacts *ArtifactStore
}

func NewPredictor(artifacts *ArtifactStore) *Predictor {
	return &Predictor{artifacts: artifacts}
}

// Predict returns the estimated calories burned, rounded to one decimal
// place. A kind that was never trained yields ErrArtifactNotFound; inputs
// are otherwise taken as-is.
func (p *Predictor) Predict(input *models.PredictionInput) (float64, error) {
	est, err := p.artifacts.Load(input.Model)
	if err != nil {
		return 0, err
	}
	row := FeatureRow(
		input.Gender,
		float64(input.Age),
		input.Height,
		input.Weight,
		input.Duration,
		input.HeartRate,
		input.BodyTemp,
	)
	return math.Round(est.Predict(row)*10) / 10, nil
}
