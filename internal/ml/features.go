package ml

import "calorify/internal/models"

// FeatureNames is the canonical column order shared by training and
// prediction. The prediction path reproduces this exact ordering when it
// assembles a row, so reordering the list invalidates every stored artifact.
var FeatureNames = []string{
	"age",
	"height",
	"weight",
	"duration",
	"heart_rate",
	"body_temp",
	"gender_male",
}

// AssembleTraining inner-joins exercise and calorie rows on user_id and
// returns the design matrix with its parallel target vector. Rows without a
// counterpart on either side are dropped silently; callers that care about
// dataset completeness must compare counts themselves.
func AssembleTraining(exercise []models.ExerciseData, calories []models.CaloriesData) (X [][]float64, y []float64) {
	targets := make(map[int64]float64, len(calories))
	for _, c := range calories {
		targets[c.UserID] = c.Calories
	}
	for _, e := range exercise {
		target, ok := targets[e.UserID]
		if !ok {
			continue
		}
		X = append(X, FeatureRow(e.Gender, float64(e.Age), e.Height, e.Weight, e.Duration, e.HeartRate, e.BodyTemp))
		y = append(y, target)
	}
	return X, y
}

// FeatureRow builds a single row in the canonical column order. The gender
// indicator is 1 only for "male"; "female" and any unexpected value encode
// to 0 without raising an error.
func FeatureRow(gender string, age, height, weight, duration, heartRate, bodyTemp float64) []float64 {
	genderMale := 0.0
	if gender == models.GenderMale {
		genderMale = 1.0
	}
	return []float64{age, height, weight, duration, heartRate, bodyTemp, genderMale}
}
