package repository

import (
	"time"

	"calorify/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrainedModelRepository interface {
	// Upsert writes the metadata record keyed by model name: at most one row
	// per kind, all metric fields set together.
	Upsert(record *models.TrainedModel) error
	FindByName(name string) (*models.TrainedModel, error)
	FindAll() ([]models.TrainedModel, error)
}

type trainedModelRepository struct {
	db *gorm.DB
}

func NewTrainedModelRepository(db *gorm.DB) TrainedModelRepository {
	return &trainedModelRepository{db}
}

func (r *trainedModelRepository) Upsert(record *models.TrainedModel) error {
	record.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"file", "mse", "r2", "feature_importances", "updated_at",
		}),
	}).Create(record).Error
}

func (r *trainedModelRepository) FindByName(name string) (*models.TrainedModel, error) {
	var record models.TrainedModel
	err := r.db.Where("name = ?", name).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *trainedModelRepository) FindAll() ([]models.TrainedModel, error) {
	var records []models.TrainedModel
	err := r.db.Order("name").Find(&records).Error
	return records, err
}
