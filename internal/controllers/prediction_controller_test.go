package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"calorify/internal/ml"
	"calorify/internal/mocks"
	"calorify/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupPredictionRouter() (*gin.Engine, *mocks.MockCaloriePredictor) {
	gin.SetMode(gin.TestMode)
	predictor := new(mocks.MockCaloriePredictor)
	controller := NewPredictionController(predictor)

	router := gin.New()
	router.POST("/prediction", controller.Predict)
	return router, predictor
}

func TestPredict(t *testing.T) {
	router, predictor := setupPredictionRouter()
	predictor.On("Predict", mock.AnythingOfType("*models.PredictionInput")).Return(96.3, nil)

	w := postJSON(router, "/prediction", models.PredictionInput{
		Model:     "linear_regression",
		Gender:    "male",
		Age:       26,
		Height:    187,
		Weight:    91,
		Duration:  15,
		HeartRate: 160,
		BodyTemp:  37,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.PredictionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "linear_regression", resp.Model)
	assert.Equal(t, 96.3, resp.Calories)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestPredictMissingRequiredFields(t *testing.T) {
	router, predictor := setupPredictionRouter()

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "missing model", body: map[string]interface{}{"gender": "male"}},
		{name: "missing gender", body: map[string]interface{}{"model": "xgboost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/prediction", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	predictor.AssertNotCalled(t, "Predict")
}

func TestPredictUntrainedModel(t *testing.T) {
	router, predictor := setupPredictionRouter()
	predictor.On("Predict", mock.AnythingOfType("*models.PredictionInput")).
		Return(0.0, fmt.Errorf("%w: xgboost", ml.ErrArtifactNotFound))

	w := postJSON(router, "/prediction", models.PredictionInput{Model: "xgboost", Gender: "female"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Model has not been trained yet")
}

func TestPredictInternalError(t *testing.T) {
	router, predictor := setupPredictionRouter()
	predictor.On("Predict", mock.AnythingOfType("*models.PredictionInput")).Return(0.0, assert.AnError)

	w := postJSON(router, "/prediction", models.PredictionInput{Model: "xgboost", Gender: "female"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
