package repository

import (
	"calorify/internal/models"

	"gorm.io/gorm"
)

type CaloriesDataRepository interface {
	Create(record *models.CaloriesData) error
	FindAll() ([]models.CaloriesData, error)
	FindByUserID(userID int64) (*models.CaloriesData, error)
	Delete(id uint) error
	ReplaceByUserID(records []models.CaloriesData) error
	Count() (int64, error)
}

type caloriesDataRepository struct {
	db *gorm.DB
}

func NewCaloriesDataRepository(db *gorm.DB) CaloriesDataRepository {
	return &caloriesDataRepository{db}
}

func (r *caloriesDataRepository) Create(record *models.CaloriesData) error {
	return r.db.Create(record).Error
}

func (r *caloriesDataRepository) FindAll() ([]models.CaloriesData, error) {
	var records []models.CaloriesData
	err := r.db.Order("user_id").Find(&records).Error
	return records, err
}

func (r *caloriesDataRepository) FindByUserID(userID int64) (*models.CaloriesData, error) {
	var record models.CaloriesData
	err := r.db.Where("user_id = ?", userID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *caloriesDataRepository) Delete(id uint) error {
	return r.db.Delete(&models.CaloriesData{}, id).Error
}

func (r *caloriesDataRepository) ReplaceByUserID(records []models.CaloriesData) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Where("user_id = ?", records[i].UserID).
				Delete(&models.CaloriesData{}).Error; err != nil {
				return err
			}
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *caloriesDataRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.CaloriesData{}).Count(&count).Error
	return count, err
}
