package database

import (
	"log"

	"calorify/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.ExerciseData{},
		&models.CaloriesData{},
		&models.TrainedModel{},
		&models.TrainingJob{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
