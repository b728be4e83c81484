package controllers

import (
	"errors"
	"net/http"
	"time"

	"calorify/internal/ml"
	"calorify/internal/models"

	"github.com/gin-gonic/gin"
)

type PredictionController struct {
	predictor ml.CaloriePredictor
}

func NewPredictionController(predictor ml.CaloriePredictor) *PredictionController {
	return &PredictionController{predictor: predictor}
}

// Predict godoc
// @Summary Predict calories burned
// @Description Run a single prediction against the fitted artifact of the requested model kind
// @Tags prediction
// @Accept json
// @Produce json
// @Param input body models.PredictionInput true "Feature values and model kind"
// @Success 200 {object} models.PredictionResponse "Prediction computed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Model has not been trained yet"
// @Failure 500 {object} map[string]interface{} "Prediction failed"
// @Router /prediction [post]
func (pc *PredictionController) Predict(c *gin.Context) {
	var input models.PredictionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	calories, err := pc.predictor.Predict(&input)
	if err != nil {
		// An unknown kind and an untrained kind look the same here: no
		// artifact on disk.
		if errors.Is(err, ml.ErrArtifactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Model has not been trained yet",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Prediction failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.PredictionResponse{
		Model:     input.Model,
		Calories:  calories,
		Timestamp: time.Now(),
	})
}
