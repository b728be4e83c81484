package models

import "time"

// CaloriesData holds the training target, joined 1:1 with ExerciseData on
// user_id. Rows without an exercise counterpart are dropped by the join.
type CaloriesData struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	UserID    int64     `gorm:"not null;index" json:"user_id" example:"14733363"`
	Calories  float64   `json:"calories" example:"231"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}

func (CaloriesData) TableName() string {
	return "calories_data"
}
