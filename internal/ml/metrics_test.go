package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanSquaredError(t *testing.T) {
	assert.InDelta(t, 2.0, MeanSquaredError([]float64{3, 5}, []float64{1, 5}), 1e-12)
	assert.InDelta(t, 0.0, MeanSquaredError([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-12)
}

func TestR2Score(t *testing.T) {
	assert.InDelta(t, 1.0, R2Score([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-12)

	// Predicting the mean everywhere scores exactly zero.
	assert.InDelta(t, 0.0, R2Score([]float64{1, 2, 3}, []float64{2, 2, 2}), 1e-12)
}

func TestR2ScoreZeroVariance(t *testing.T) {
	// A single-row or constant held-out set has no variance to explain; the
	// score stays 0 rather than dividing by zero.
	assert.Equal(t, 0.0, R2Score([]float64{5}, []float64{4}))
	assert.Equal(t, 0.0, R2Score([]float64{5, 5, 5}, []float64{4, 5, 6}))
}
