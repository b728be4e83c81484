package repository

import (
	"fmt"
	"time"

	"calorify/internal/models"

	"gorm.io/gorm"
)

type TrainingJobRepository interface {
	SaveJob(job *models.TrainingJob) error
	GetJobByID(id string) (*models.TrainingJob, error)
	UpdateJobStatus(jobID, status string, errorMessage *string) error
	GetJobsByStatus(status string, limit int) ([]*models.TrainingJob, error)
	GetRecentJobs(limit int) ([]*models.TrainingJob, error)
	CleanupOldJobs(olderThan time.Time) error
}

type trainingJobRepository struct {
	db *gorm.DB
}

func NewTrainingJobRepository(db *gorm.DB) TrainingJobRepository {
	return &trainingJobRepository{db}
}

func (r *trainingJobRepository) SaveJob(job *models.TrainingJob) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	job.UpdatedAt = time.Now()
	return r.db.Create(job).Error
}

func (r *trainingJobRepository) GetJobByID(id string) (*models.TrainingJob, error) {
	var job models.TrainingJob
	err := r.db.Where("id = ?", id).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *trainingJobRepository) UpdateJobStatus(jobID, status string, errorMessage *string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if errorMessage != nil {
		updates["error_message"] = *errorMessage
	}
	if status == models.JobStatusCompleted || status == models.JobStatusFailed {
		now := time.Now()
		updates["completed_at"] = &now
	}

	result := r.db.Model(&models.TrainingJob{}).Where("id = ?", jobID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job with ID %s not found", jobID)
	}
	return nil
}

func (r *trainingJobRepository) GetJobsByStatus(status string, limit int) ([]*models.TrainingJob, error) {
	var jobs []*models.TrainingJob
	query := r.db.Where("status = ?", status).Order("created_at ASC") // oldest first for processing
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&jobs).Error
	return jobs, err
}

func (r *trainingJobRepository) GetRecentJobs(limit int) ([]*models.TrainingJob, error) {
	var jobs []*models.TrainingJob
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&jobs).Error
	return jobs, err
}

func (r *trainingJobRepository) CleanupOldJobs(olderThan time.Time) error {
	result := r.db.Where("completed_at < ? AND status IN (?)",
		olderThan,
		[]string{models.JobStatusCompleted, models.JobStatusFailed},
	).Delete(&models.TrainingJob{})
	return result.Error
}
