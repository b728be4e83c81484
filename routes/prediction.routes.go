package routes

import (
	"calorify/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPredictionRoutes(router *gin.Engine, predictionController *controllers.PredictionController) {
	predictionRoutes := router.Group("/prediction")
	{
		predictionRoutes.POST("/", predictionController.Predict)
	}
}
