package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// durationDataset ties the target to feature index 3 only, so importance
// checks have an unambiguous winner.
func durationDataset(n int) ([][]float64, []float64) {
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		duration := float64(i%15) + 1
		X[i] = []float64{
			float64(20 + i%40),
			float64(150 + i%40),
			float64(50 + i%50),
			duration,
			float64(90 + i%60),
			38,
			float64(i % 2),
		}
		y[i] = duration * 10
	}
	return X, y
}

func TestRegressionTreeFit(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}, {10}, {11}, {12}}
	y := []float64{5, 5, 5, 50, 50, 50}

	tree := NewRegressionTree(TreeConfig{})
	require.NoError(t, tree.Fit(X, y))

	assert.InDelta(t, 5.0, tree.Predict([]float64{2}), 1e-9)
	assert.InDelta(t, 50.0, tree.Predict([]float64{11}), 1e-9)
}

func TestRandomForestFit(t *testing.T) {
	X, y := durationDataset(60)

	m := NewRandomForest(ForestConfig{Trees: 25, Seed: 42})
	require.NoError(t, m.Fit(X, y))
	require.Len(t, m.Trees, 25)

	// Averaged predictions stay inside the target range.
	for _, row := range X {
		pred := m.Predict(row)
		assert.GreaterOrEqual(t, pred, 10.0)
		assert.LessOrEqual(t, pred, 150.0)
	}
}

func TestRandomForestDeterministic(t *testing.T) {
	X, y := durationDataset(40)

	a := NewRandomForest(ForestConfig{Trees: 10, Seed: 42})
	b := NewRandomForest(ForestConfig{Trees: 10, Seed: 42})
	require.NoError(t, a.Fit(X, y))
	require.NoError(t, b.Fit(X, y))

	for _, row := range X {
		assert.Equal(t, a.Predict(row), b.Predict(row))
	}
}

func TestRandomForestFeatureWeights(t *testing.T) {
	X, y := durationDataset(60)

	m := NewRandomForest(ForestConfig{Trees: 25, Seed: 42})
	require.NoError(t, m.Fit(X, y))

	weights, ok := m.FeatureWeights()
	require.True(t, ok)
	require.Len(t, weights, 7)

	var total float64
	best := 0
	for i, w := range weights {
		assert.GreaterOrEqual(t, w, 0.0)
		total += w
		if w > weights[best] {
			best = i
		}
	}
	assert.InDelta(t, 1.0, total, 1e-9, "forest importances are normalized")
	assert.Equal(t, 3, best, "duration drives the target")
}

func TestGradientBoostingFit(t *testing.T) {
	X, y := durationDataset(60)

	m := NewGradientBoosting(BoostConfig{Rounds: 50, LearningRate: 0.3, MaxDepth: 4})
	require.NoError(t, m.Fit(X, y))

	for i, row := range X {
		assert.InDelta(t, y[i], m.Predict(row), 1.0)
	}
}

func TestGradientBoostingFeatureWeights(t *testing.T) {
	X, y := durationDataset(60)

	m := NewGradientBoosting(BoostConfig{Rounds: 20, MaxDepth: 4})
	require.NoError(t, m.Fit(X, y))

	weights, ok := m.FeatureWeights()
	require.True(t, ok)
	require.Len(t, weights, 7)

	best := 0
	for i, w := range weights {
		assert.GreaterOrEqual(t, w, 0.0)
		if w > weights[best] {
			best = i
		}
	}
	assert.Equal(t, 3, best, "duration drives the target")
}

func TestGradientBoostingStopsOnExactFit(t *testing.T) {
	// A constant target is fitted by the base prediction alone.
	X := [][]float64{{1}, {2}, {3}}
	y := []float64{7, 7, 7}

	m := NewGradientBoosting(BoostConfig{Rounds: 100})
	require.NoError(t, m.Fit(X, y))

	assert.Empty(t, m.Trees)
	assert.InDelta(t, 7.0, m.Predict([]float64{99}), 1e-12)
}

func TestEnsemblesRejectEmptyTrainingSet(t *testing.T) {
	assert.Error(t, NewRandomForest(ForestConfig{Trees: 5}).Fit(nil, nil))
	assert.Error(t, NewGradientBoosting(BoostConfig{Rounds: 5}).Fit(nil, nil))
}
