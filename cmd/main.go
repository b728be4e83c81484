package main

import (
	"log"
	"net/http"
	"time"

	"calorify/database"
	"calorify/docs"
	"calorify/internal/cache"
	"calorify/internal/config"
	"calorify/internal/controllers"
	"calorify/internal/ml"
	"calorify/internal/mq"
	"calorify/internal/repository"
	"calorify/internal/services"
	"calorify/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Calorify API"
	docs.SwaggerInfo.Description = "Calories burned prediction API with async model training."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase(cfg)
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize repositories
	exerciseRepo := repository.NewExerciseDataRepository(database.DB)
	caloriesRepo := repository.NewCaloriesDataRepository(database.DB)
	trainedRepo := repository.NewTrainedModelRepository(database.DB)
	jobRepo := repository.NewTrainingJobRepository(database.DB)

	artifacts := ml.NewArtifactStore(cfg.MediaRoot)

	// Optional integrations: the service runs without Redis or RabbitMQ, it
	// just loses caching and event publishing.
	var dashboardCache *cache.DashboardCache
	if cfg.RedisURL != "" {
		c, err := cache.NewDashboardCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: dashboard cache disabled: %v", err)
		} else {
			dashboardCache = c
			defer dashboardCache.Close()
		}
	}

	var events *mq.Publisher
	if cfg.RabbitMQURL != "" {
		p, err := mq.NewPublisher(cfg.RabbitMQURL, cfg.EventQueue)
		if err != nil {
			log.Printf("Warning: training event publishing disabled: %v", err)
		} else {
			events = p
			defer events.Close()
		}
	}

	// Initialize Training Job Worker
	trainingJobWorker := services.NewTrainingJobWorker(
		jobRepo,
		exerciseRepo,
		caloriesRepo,
		trainedRepo,
		artifacts,
		dashboardCache,
		events,
		cfg.WorkerCount,
	)

	log.Printf("Starting training job worker with %d workers...", cfg.WorkerCount)
	trainingJobWorker.Start()
	defer trainingJobWorker.Stop()

	// Initialize controllers
	datasetController := controllers.NewDatasetController(exerciseRepo, caloriesRepo)
	trainingController := controllers.NewTrainingController(jobRepo, trainedRepo, trainingJobWorker)
	predictionController := controllers.NewPredictionController(ml.NewPredictor(artifacts))
	dashboardController := controllers.NewDashboardController(trainedRepo, dashboardCache)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Calorify API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterSwaggerRoutes(router)
	routes.RegisterDatasetRoutes(router, datasetController)
	routes.RegisterTrainingRoutes(router, trainingController, cfg.JWTSecret)
	routes.RegisterPredictionRoutes(router, predictionController)
	routes.RegisterDashboardRoutes(router, dashboardController)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
