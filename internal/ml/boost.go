package ml

import "errors"

// BoostConfig fixes the gradient boosting hyperparameter policy: squared
// error objective, shallow trees, multiplicative shrinkage.
type BoostConfig struct {
	Rounds         int
	LearningRate   float64
	MaxDepth       int
	MinSamplesLeaf int
	// Seed is kept for parity with the other ensembles; fitting without row
	// subsampling is deterministic regardless.
	Seed int64
}

// GradientBoosting fits regression trees to the running residuals of a
// constant base prediction.
type GradientBoosting struct {
	Config         BoostConfig
	BasePrediction float64
	Trees          []*RegressionTree
	NumFeatures    int
}

func NewGradientBoosting(cfg BoostConfig) *GradientBoosting {
	if cfg.Rounds <= 0 {
		cfg.Rounds = 100
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = 0.3
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 6
	}
	if cfg.MinSamplesLeaf <= 0 {
		cfg.MinSamplesLeaf = 1
	}
	return &GradientBoosting{Config: cfg}
}

func (m *GradientBoosting) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("gradient boosting: empty training set")
	}
	m.NumFeatures = len(X[0])

	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))
	m.BasePrediction = mean

	residuals := make([]float64, len(y))
	current := make([]float64, len(y))
	for i := range y {
		current[i] = mean
	}

	m.Trees = make([]*RegressionTree, 0, m.Config.Rounds)
	for round := 0; round < m.Config.Rounds; round++ {
		var sse float64
		for i := range y {
			residuals[i] = y[i] - current[i]
			sse += residuals[i] * residuals[i]
		}
		if sse <= 1e-12 {
			break
		}
		tree := NewRegressionTree(TreeConfig{
			MaxDepth:       m.Config.MaxDepth,
			MinSamplesLeaf: m.Config.MinSamplesLeaf,
		})
		if err := tree.Fit(X, residuals); err != nil {
			return err
		}
		m.Trees = append(m.Trees, tree)
		for i, row := range X {
			current[i] += m.Config.LearningRate * tree.Predict(row)
		}
	}
	return nil
}

func (m *GradientBoosting) Predict(row []float64) float64 {
	v := m.BasePrediction
	for _, tree := range m.Trees {
		v += m.Config.LearningRate * tree.Predict(row)
	}
	return v
}

// FeatureWeights reports the total split gain per feature across all rounds,
// unnormalized, matching the boosted-tree convention.
func (m *GradientBoosting) FeatureWeights() ([]float64, bool) {
	if m.NumFeatures == 0 {
		return nil, false
	}
	weights := make([]float64, m.NumFeatures)
	for _, tree := range m.Trees {
		for i, v := range tree.Importances {
			weights[i] += v
		}
	}
	return weights, true
}
