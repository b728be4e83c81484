package ml

// Estimator is a regression model over a float64 design matrix. Implementations
// keep their fitted state in exported fields so artifacts survive gob encoding.
type Estimator interface {
	// Fit trains the model. Fitting on an empty matrix is an error.
	Fit(X [][]float64, y []float64) error
	// Predict scores a single row laid out in the canonical feature order.
	Predict(row []float64) float64
	// FeatureWeights returns one non-negative magnitude per feature when the
	// fitted model exposes importances or coefficients; ok is false when the
	// model has neither.
	FeatureWeights() (weights []float64, ok bool)
}
