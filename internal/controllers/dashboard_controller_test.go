package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calorify/internal/mocks"
	"calorify/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDashboardRouter() (*gin.Engine, *mocks.MockTrainedModelRepository) {
	gin.SetMode(gin.TestMode)
	trainedRepo := new(mocks.MockTrainedModelRepository)
	// nil cache: every dashboard request renders from the repository.
	controller := NewDashboardController(trainedRepo, nil)

	router := gin.New()
	router.GET("/dashboard", controller.GetDashboard)
	router.GET("/models", controller.ListModels)
	router.GET("/models/:name", controller.GetModel)
	return router, trainedRepo
}

func trainedFixture(t *testing.T) []models.TrainedModel {
	t.Helper()
	mse, r2 := 131.4, 0.967
	linear := models.TrainedModel{
		Name:      "linear_regression",
		File:      "models/linear_regression_model.gob",
		MSE:       &mse,
		R2:        &r2,
		UpdatedAt: time.Now(),
	}
	require.NoError(t, linear.SetImportances([]models.FeatureImportance{
		{Feature: "age", Importance: 0.1},
		{Feature: "duration", Importance: 0.8},
		{Feature: "heart_rate", Importance: 0.4},
	}))

	forestMSE, forestR2 := 90.2, 0.981
	forest := models.TrainedModel{
		Name:      "random_forest",
		File:      "models/random_forest_model.gob",
		MSE:       &forestMSE,
		R2:        &forestR2,
		UpdatedAt: time.Now(),
	}
	// No importances stored for this one.
	return []models.TrainedModel{linear, forest}
}

func TestGetDashboard(t *testing.T) {
	router, trainedRepo := setupDashboardRouter()
	trainedRepo.On("FindAll").Return(trainedFixture(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data DashboardPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Data.ModelData, 2)
	assert.Equal(t, "Linear Regression model", resp.Data.ModelData[0].Title)
	assert.Equal(t, "Random Forest model", resp.Data.ModelData[1].Title)

	// Only the model with stored importances gets a chart.
	require.Len(t, resp.Data.ModelImportance, 1)
	items := resp.Data.ModelImportance["Linear Regression"]
	require.Len(t, items, 3)

	// Sorted by normalized value, strongest first at 100.
	assert.Equal(t, "Duration", items[0].Title)
	assert.Equal(t, 100, items[0].Value)
	assert.Equal(t, "Importance: 0.80", items[0].Description)
	assert.Equal(t, "Heart Rate", items[1].Title)
	assert.Equal(t, 50, items[1].Value)
	assert.Equal(t, "Age", items[2].Title)
	assert.Equal(t, 12, items[2].Value)
}

func TestGetDashboardRepositoryFailure(t *testing.T) {
	router, trainedRepo := setupDashboardRouter()
	trainedRepo.On("FindAll").Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetDashboardEmpty(t *testing.T) {
	router, trainedRepo := setupDashboardRouter()
	trainedRepo.On("FindAll").Return([]models.TrainedModel{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data DashboardPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.ModelData)
	assert.Empty(t, resp.Data.ModelImportance)
}

func TestListModels(t *testing.T) {
	router, trainedRepo := setupDashboardRouter()
	trainedRepo.On("FindAll").Return(trainedFixture(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/models", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["count"])
}

func TestGetModel(t *testing.T) {
	router, trainedRepo := setupDashboardRouter()
	records := trainedFixture(t)
	trainedRepo.On("FindByName", "linear_regression").Return(&records[0], nil)

	req := httptest.NewRequest(http.MethodGet, "/models/linear_regression", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "linear_regression_model.gob")
}

func TestGetModelNotFound(t *testing.T) {
	router, trainedRepo := setupDashboardRouter()
	trainedRepo.On("FindByName", "lightgbm").Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/models/lightgbm", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeatureTitle(t *testing.T) {
	assert.Equal(t, "Heart Rate", featureTitle("heart_rate"))
	assert.Equal(t, "Age", featureTitle("age"))
	assert.Equal(t, "Gender Male", featureTitle("gender_male"))
}
