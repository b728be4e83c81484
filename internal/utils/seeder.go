package utils

import (
	"fmt"
	"log"
	"math/rand"

	"calorify/internal/models"

	"gorm.io/gorm"
)

const DefaultNumRecords = 1000

// seedStartID keeps generated user IDs away from any imported dataset rows,
// which start at 10000001 in the source CSV.
const seedStartID = 90000001

// SeedDataset generates numRecords paired exercise and calorie rows. The
// calorie value follows a rough duration/heart-rate formula plus noise, so
// every model kind has real signal to fit.
func SeedDataset(db *gorm.DB, numRecords int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	exercise := make([]models.ExerciseData, 0, numRecords)
	calories := make([]models.CaloriesData, 0, numRecords)

	for i := 0; i < numRecords; i++ {
		userID := int64(seedStartID + i)

		gender := models.GenderFemale
		if rng.Intn(2) == 0 {
			gender = models.GenderMale
		}
		age := 18 + rng.Intn(60)
		height := 140.0 + rng.Float64()*60.0
		weight := 40.0 + rng.Float64()*80.0
		duration := 1.0 + rng.Float64()*29.0
		heartRate := 70.0 + duration*1.8 + rng.Float64()*20.0
		bodyTemp := 37.0 + duration*0.05 + rng.Float64()*0.8

		burned := duration*(4.5+heartRate*0.035) + weight*0.12 + rng.NormFloat64()*5.0
		if gender == models.GenderMale {
			burned *= 1.05
		}
		if burned < 1 {
			burned = 1
		}

		exercise = append(exercise, models.ExerciseData{
			UserID:    userID,
			Gender:    gender,
			Age:       age,
			Height:    height,
			Weight:    weight,
			Duration:  duration,
			HeartRate: heartRate,
			BodyTemp:  bodyTemp,
		})
		calories = append(calories, models.CaloriesData{
			UserID:   userID,
			Calories: burned,
		})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(exercise, 500).Error; err != nil {
			return fmt.Errorf("failed to seed exercise records: %w", err)
		}
		if err := tx.CreateInBatches(calories, 500).Error; err != nil {
			return fmt.Errorf("failed to seed calorie records: %w", err)
		}
		log.Printf("Seeded %d exercise and %d calorie records", len(exercise), len(calories))
		return nil
	})
}

// ClearSeededData removes only generated rows, leaving imported data alone.
func ClearSeededData(db *gorm.DB) error {
	result := db.Where("user_id >= ?", seedStartID).Delete(&models.ExerciseData{})
	if result.Error != nil {
		return fmt.Errorf("failed to clear seeded exercise records: %w", result.Error)
	}
	log.Printf("Deleted %d seeded exercise records", result.RowsAffected)

	result = db.Where("user_id >= ?", seedStartID).Delete(&models.CaloriesData{})
	if result.Error != nil {
		return fmt.Errorf("failed to clear seeded calorie records: %w", result.Error)
	}
	log.Printf("Deleted %d seeded calorie records", result.RowsAffected)
	return nil
}

// DatasetCounts reports the current table sizes.
func DatasetCounts(db *gorm.DB) (exercise int64, calories int64, err error) {
	if err = db.Model(&models.ExerciseData{}).Count(&exercise).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count exercise records: %w", err)
	}
	if err = db.Model(&models.CaloriesData{}).Count(&calories).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count calorie records: %w", err)
	}
	return exercise, calories, nil
}
