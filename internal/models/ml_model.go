package models

// Model kinds the service knows about. The set is closed: adding a kind means
// touching this list, the registry and the dashboard labels in one change.
// lightgbm is enumerated but has no registry entry yet; selecting it fails
// with a configuration error.
const (
	ModelLinearRegression = "linear_regression"
	ModelRandomForest     = "random_forest"
	ModelXGBoost          = "xgboost"
	ModelLightGBM         = "lightgbm"
)

// ModelKinds lists every enumerated kind in a stable order.
var ModelKinds = []string{
	ModelLinearRegression,
	ModelRandomForest,
	ModelXGBoost,
	ModelLightGBM,
}

// ModelLabel returns the human-readable name shown on the dashboard.
func ModelLabel(kind string) string {
	switch kind {
	case ModelLinearRegression:
		return "Linear Regression"
	case ModelRandomForest:
		return "Random Forest"
	case ModelXGBoost:
		return "XGBoost"
	case ModelLightGBM:
		return "LightGBM"
	}
	return kind
}
