package controllers

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"calorify/internal/cache"
	"calorify/internal/models"
	"calorify/internal/repository"

	"github.com/gin-gonic/gin"
)

const dashboardCacheTTL = 5 * time.Minute

// ModelCard is one metrics tile on the dashboard.
type ModelCard struct {
	Title     string    `json:"title" example:"Linear Regression model"`
	MSE       *float64  `json:"mse" example:"131.4"`
	R2        *float64  `json:"r2" example:"0.967"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}

// ImportanceItem is one bar of a feature importance chart, with Value
// normalized so the strongest feature reads 100.
type ImportanceItem struct {
	Title       string `json:"title" example:"Duration"`
	Description string `json:"description" example:"Importance: 0.72"`
	Value       int    `json:"value" example:"100"`
}

// DashboardPayload is the full rendered dashboard response, cached as a unit.
type DashboardPayload struct {
	ModelData       []ModelCard                 `json:"model_data"`
	ModelImportance map[string][]ImportanceItem `json:"model_importance"`
}

type DashboardController struct {
	trainedRepo repository.TrainedModelRepository
	dashboard   *cache.DashboardCache
}

func NewDashboardController(
	trainedRepo repository.TrainedModelRepository,
	dashboard *cache.DashboardCache,
) *DashboardController {
	return &DashboardController{
		trainedRepo: trainedRepo,
		dashboard:   dashboard,
	}
}

// GetDashboard godoc
// @Summary Get the model dashboard
// @Description Metrics and normalized feature importances for every trained model
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to build dashboard"
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	var cached DashboardPayload
	hit, err := dc.dashboard.Get(c.Request.Context(), &cached)
	if err != nil {
		log.Printf("Dashboard cache read failed: %v", err)
	}
	if hit {
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   cached,
		})
		return
	}

	records, err := dc.trainedRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build dashboard",
			"error":   err.Error(),
		})
		return
	}

	payload := buildDashboardPayload(records)

	if err := dc.dashboard.Store(c.Request.Context(), payload, dashboardCacheTTL); err != nil {
		log.Printf("Dashboard cache write failed: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   payload,
	})
}

// ListModels godoc
// @Summary List trained models
// @Description Metadata records for every model that has completed training
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Models retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve models"
// @Router /models [get]
func (dc *DashboardController) ListModels(c *gin.Context) {
	records, err := dc.trainedRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve trained models",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(records),
		"data":   records,
	})
}

// GetModel godoc
// @Summary Get one trained model
// @Description Metadata record for a single model kind
// @Tags dashboard
// @Produce json
// @Param name path string true "Model kind" Enums(linear_regression, random_forest, xgboost, lightgbm)
// @Success 200 {object} map[string]interface{} "Model retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Model not found"
// @Router /models/{name} [get]
func (dc *DashboardController) GetModel(c *gin.Context) {
	name := c.Param("name")

	record, err := dc.trainedRepo.FindByName(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Trained model not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   record,
	})
}

// ========== PAYLOAD RENDERING ==========

func buildDashboardPayload(records []models.TrainedModel) DashboardPayload {
	payload := DashboardPayload{
		ModelData:       make([]ModelCard, 0, len(records)),
		ModelImportance: make(map[string][]ImportanceItem),
	}

	for _, record := range records {
		label := models.ModelLabel(record.Name)
		payload.ModelData = append(payload.ModelData, ModelCard{
			Title:     label + " model",
			MSE:       record.MSE,
			R2:        record.R2,
			UpdatedAt: record.UpdatedAt,
		})

		imps, err := record.Importances()
		if err != nil {
			log.Printf("Failed to decode importances for %s: %v", record.Name, err)
			continue
		}
		if len(imps) == 0 {
			continue
		}
		payload.ModelImportance[label] = renderImportances(imps)
	}

	return payload
}

// renderImportances scales the chart so the strongest feature is 100 and the
// rest are proportional, regardless of whether the raw values are absolute
// coefficients or split gains.
func renderImportances(imps []models.FeatureImportance) []ImportanceItem {
	max := 0.0
	for _, imp := range imps {
		if imp.Importance > max {
			max = imp.Importance
		}
	}

	items := make([]ImportanceItem, 0, len(imps))
	for _, imp := range imps {
		value := 0
		if max > 0 {
			value = int(imp.Importance / max * 100)
		}
		items = append(items, ImportanceItem{
			Title:       featureTitle(imp.Feature),
			Description: fmt.Sprintf("Importance: %.2f", imp.Importance),
			Value:       value,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Value > items[j].Value
	})
	return items
}

func featureTitle(feature string) string {
	words := strings.Split(feature, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
