package routes

import (
	"calorify/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterDashboardRoutes(router *gin.Engine, dashboardController *controllers.DashboardController) {
	router.GET("/dashboard", dashboardController.GetDashboard)

	modelRoutes := router.Group("/models")
	{
		modelRoutes.GET("/", dashboardController.ListModels)
		modelRoutes.GET("/:name", dashboardController.GetModel)
	}
}
