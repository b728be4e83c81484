package repository

import (
	"calorify/internal/models"

	"gorm.io/gorm"
)

type ExerciseDataRepository interface {
	Create(record *models.ExerciseData) error
	FindAll() ([]models.ExerciseData, error)
	FindByUserID(userID int64) (*models.ExerciseData, error)
	Delete(id uint) error
	ReplaceByUserID(records []models.ExerciseData) error
	Count() (int64, error)
}

type exerciseDataRepository struct {
	db *gorm.DB
}

func NewExerciseDataRepository(db *gorm.DB) ExerciseDataRepository {
	return &exerciseDataRepository{db}
}

func (r *exerciseDataRepository) Create(record *models.ExerciseData) error {
	return r.db.Create(record).Error
}

func (r *exerciseDataRepository) FindAll() ([]models.ExerciseData, error) {
	var records []models.ExerciseData
	err := r.db.Order("user_id").Find(&records).Error
	return records, err
}

func (r *exerciseDataRepository) FindByUserID(userID int64) (*models.ExerciseData, error) {
	var record models.ExerciseData
	err := r.db.Where("user_id = ?", userID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *exerciseDataRepository) Delete(id uint) error {
	return r.db.Delete(&models.ExerciseData{}, id).Error
}

// ReplaceByUserID upserts imported rows: any existing row for the same
// user_id is replaced, mirroring the CSV importer's identity column.
func (r *exerciseDataRepository) ReplaceByUserID(records []models.ExerciseData) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Where("user_id = ?", records[i].UserID).
				Delete(&models.ExerciseData{}).Error; err != nil {
				return err
			}
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *exerciseDataRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ExerciseData{}).Count(&count).Error
	return count, err
}
