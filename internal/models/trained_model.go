package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// FeatureImportance is one entry of a model's importance list: the absolute
// coefficient for linear models, the raw importance for tree ensembles.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// TrainedModel is the metadata record for one fitted artifact. There is at
// most one row per model kind; training upserts on Name.
type TrainedModel struct {
	ID                 uint           `gorm:"primaryKey" json:"id" example:"1"`
	Name               string         `gorm:"type:varchar(32);uniqueIndex;not null" json:"name" example:"linear_regression"`
	File               string         `gorm:"type:varchar(255)" json:"file" example:"models/linear_regression_model.gob"`
	MSE                *float64       `json:"mse" example:"131.4"`
	R2                 *float64       `json:"r2" example:"0.967"`
	FeatureImportances datatypes.JSON `gorm:"type:jsonb" json:"feature_importances" swaggerignore:"true"`
	CreatedAt          time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt          time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}

func (TrainedModel) TableName() string {
	return "trained_models"
}

// SetImportances stores the importance list, or clears the column when the
// fitted model exposes no importances (nil marks "not applicable", distinct
// from an empty list).
func (tm *TrainedModel) SetImportances(imps []FeatureImportance) error {
	if imps == nil {
		tm.FeatureImportances = nil
		return nil
	}
	raw, err := json.Marshal(imps)
	if err != nil {
		return err
	}
	tm.FeatureImportances = datatypes.JSON(raw)
	return nil
}

// Importances decodes the stored importance list; nil when absent.
func (tm *TrainedModel) Importances() ([]FeatureImportance, error) {
	if len(tm.FeatureImportances) == 0 {
		return nil, nil
	}
	var imps []FeatureImportance
	if err := json.Unmarshal(tm.FeatureImportances, &imps); err != nil {
		return nil, err
	}
	return imps, nil
}
