package routes

import (
	"calorify/internal/controllers"
	"calorify/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterTrainingRoutes(router *gin.Engine, trainingController *controllers.TrainingController, jwtSecret string) {
	trainingRoutes := router.Group("/training")
	trainingRoutes.Use(middleware.AdminAuthMiddleware(jwtSecret))
	{
		trainingRoutes.POST("/", trainingController.TrainModel)
		trainingRoutes.GET("/jobs", trainingController.ListRecentJobs)
		trainingRoutes.GET("/jobs/:job_id", trainingController.GetJobStatus)
	}
}
