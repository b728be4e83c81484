package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainedModelImportancesRoundTrip(t *testing.T) {
	var tm TrainedModel
	require.NoError(t, tm.SetImportances([]FeatureImportance{
		{Feature: "duration", Importance: 0.8},
		{Feature: "age", Importance: 0.1},
	}))

	imps, err := tm.Importances()
	require.NoError(t, err)
	require.Len(t, imps, 2)
	assert.Equal(t, "duration", imps[0].Feature)
	assert.Equal(t, 0.8, imps[0].Importance)
}

func TestTrainedModelImportancesNotApplicable(t *testing.T) {
	var tm TrainedModel
	require.NoError(t, tm.SetImportances(nil))

	assert.Nil(t, tm.FeatureImportances)

	imps, err := tm.Importances()
	require.NoError(t, err)
	assert.Nil(t, imps)
}

func TestModelLabel(t *testing.T) {
	assert.Equal(t, "Linear Regression", ModelLabel(ModelLinearRegression))
	assert.Equal(t, "Random Forest", ModelLabel(ModelRandomForest))
	assert.Equal(t, "XGBoost", ModelLabel(ModelXGBoost))
	assert.Equal(t, "LightGBM", ModelLabel(ModelLightGBM))
	assert.Equal(t, "mystery", ModelLabel("mystery"))
}
