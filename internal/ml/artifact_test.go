package ml

import (
	"os"
	"path/filepath"
	"testing"

	"calorify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactStoreRoundTrip(t *testing.T) {
	store := NewArtifactStore(t.TempDir())

	m := NewLinearRegression()
	require.NoError(t, m.Fit([][]float64{{1}, {2}, {3}}, []float64{2, 4, 6}))
	require.NoError(t, store.Save(models.ModelLinearRegression, m))

	loaded, err := store.Load(models.ModelLinearRegression)
	require.NoError(t, err)

	row := []float64{5}
	assert.InDelta(t, m.Predict(row), loaded.Predict(row), 1e-12)
}

func TestArtifactStoreEnsembleRoundTrip(t *testing.T) {
	store := NewArtifactStore(t.TempDir())
	X, y := durationDataset(40)

	forest := NewRandomForest(ForestConfig{Trees: 5, Seed: 42})
	require.NoError(t, forest.Fit(X, y))
	require.NoError(t, store.Save(models.ModelRandomForest, forest))

	boost := NewGradientBoosting(BoostConfig{Rounds: 5})
	require.NoError(t, boost.Fit(X, y))
	require.NoError(t, store.Save(models.ModelXGBoost, boost))

	for kind, original := range map[string]Estimator{
		models.ModelRandomForest: forest,
		models.ModelXGBoost:      boost,
	} {
		loaded, err := store.Load(kind)
		require.NoError(t, err)
		assert.InDelta(t, original.Predict(X[0]), loaded.Predict(X[0]), 1e-12)
	}
}

func TestArtifactStoreOverwrite(t *testing.T) {
	store := NewArtifactStore(t.TempDir())

	first := NewLinearRegression()
	require.NoError(t, first.Fit([][]float64{{1}, {2}}, []float64{1, 2}))
	require.NoError(t, store.Save(models.ModelLinearRegression, first))

	second := NewLinearRegression()
	require.NoError(t, second.Fit([][]float64{{1}, {2}}, []float64{10, 20}))
	require.NoError(t, store.Save(models.ModelLinearRegression, second))

	loaded, err := store.Load(models.ModelLinearRegression)
	require.NoError(t, err)
	assert.InDelta(t, second.Predict([]float64{3}), loaded.Predict([]float64{3}), 1e-12)
}

func TestArtifactStoreLoadMissing(t *testing.T) {
	store := NewArtifactStore(t.TempDir())

	_, err := store.Load(models.ModelRandomForest)
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestArtifactStorePaths(t *testing.T) {
	dir := t.TempDir()
	store := NewArtifactStore(dir)

	assert.Equal(t, filepath.Join("models", "xgboost_model.gob"), store.RelativePath(models.ModelXGBoost))

	m := NewLinearRegression()
	require.NoError(t, m.Fit([][]float64{{1}, {2}}, []float64{1, 2}))
	require.NoError(t, store.Save(models.ModelLinearRegression, m))

	_, err := os.Stat(filepath.Join(dir, "models", "linear_regression_model.gob"))
	assert.NoError(t, err, "artifact lands under <media root>/models")
}
