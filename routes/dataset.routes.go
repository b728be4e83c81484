package routes

import (
	"calorify/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterDatasetRoutes(router *gin.Engine, datasetController *controllers.DatasetController) {
	datasetRoutes := router.Group("/datasets")
	{
		datasetRoutes.GET("/exercise", datasetController.ListExerciseData)
		datasetRoutes.POST("/exercise", datasetController.CreateExerciseData)
		datasetRoutes.DELETE("/exercise/:id", datasetController.DeleteExerciseData)
		datasetRoutes.POST("/exercise/import", datasetController.ImportExerciseCSV)

		datasetRoutes.GET("/calories", datasetController.ListCaloriesData)
		datasetRoutes.POST("/calories", datasetController.CreateCaloriesData)
		datasetRoutes.DELETE("/calories/:id", datasetController.DeleteCaloriesData)
		datasetRoutes.POST("/calories/import", datasetController.ImportCaloriesCSV)
	}
}
