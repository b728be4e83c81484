package models

import "time"

// Gender values stored with exercise records. Other strings are tolerated by
// the feature assembler, which encodes anything that is not "male" as 0.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type ExerciseData struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	UserID    int64     `gorm:"not null;index" json:"user_id" example:"14733363"`
	Gender    string    `gorm:"type:varchar(10)" json:"gender" example:"male"`
	Age       int       `json:"age" example:"26"`
	Height    float64   `json:"height" example:"187"`
	Weight    float64   `json:"weight" example:"91"`
	Duration  float64   `json:"duration" example:"15"`
	HeartRate float64   `json:"heart_rate" example:"160"`
	BodyTemp  float64   `json:"body_temp" example:"37"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}

func (ExerciseData) TableName() string {
	return "exercise_data"
}
