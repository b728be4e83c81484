package ml

import (
	"errors"
	"fmt"

	"calorify/internal/models"
)

// ErrUnsupportedModel is the configuration error for kinds outside the
// registry, including enumerated-but-unimplemented ones such as lightgbm.
var ErrUnsupportedModel = errors.New("unsupported model kind")

// defaultSeed fixes every stochastic step (split shuffle, bootstrap sampling)
// so repeated runs on the same dataset are reproducible.
const defaultSeed = 42

// NewEstimator resolves a model kind to an un-fitted estimator configured
// with its fixed hyperparameter policy.
func NewEstimator(kind string) (Estimator, error) {
	switch kind {
	case models.ModelLinearRegression:
		return NewLinearRegression(), nil
	case models.ModelRandomForest:
		return NewRandomForest(ForestConfig{
			Trees: 100,
			Seed:  defaultSeed,
		}), nil
	case models.ModelXGBoost:
		return NewGradientBoosting(BoostConfig{
			Rounds:       100,
			LearningRate: 0.3,
			MaxDepth:     6,
			Seed:         defaultSeed,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, kind)
	}
}

// Supported reports whether kind has a registry entry.
func Supported(kind string) bool {
	switch kind {
	case models.ModelLinearRegression, models.ModelRandomForest, models.ModelXGBoost:
		return true
	}
	return false
}
