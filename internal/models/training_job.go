package models

import "time"

type TrainingJob struct {
	ID           string     `gorm:"primaryKey;type:varchar(36)" json:"id" example:"7b0c6f0a-0de9-4f9e-8f3a-0c9a4f0a7c11"`
	ModelName    string     `gorm:"type:varchar(32);not null;index" json:"model_name" example:"random_forest"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status" example:"pending"`
	ErrorMessage *string    `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time  `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// Job status constants
const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

func (TrainingJob) TableName() string {
	return "training_jobs"
}

// TrainingJobRequest is what gets queued for the worker pool.
type TrainingJobRequest struct {
	JobID     string `json:"job_id"`
	ModelName string `json:"model_name"`
}
