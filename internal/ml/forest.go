package ml

import (
	"errors"
	"math/rand"
)

// ForestConfig fixes the random forest hyperparameter policy. The registry
// pins Seed so repeated runs grow identical forests.
type ForestConfig struct {
	Trees          int
	MaxDepth       int // 0 means unbounded, like the fully-grown default
	MinSamplesLeaf int
	Seed           int64
}

// RandomForest averages bootstrap-aggregated regression trees.
type RandomForest struct {
	Config      ForestConfig
	Trees       []*RegressionTree
	NumFeatures int
}

func NewRandomForest(cfg ForestConfig) *RandomForest {
	if cfg.Trees <= 0 {
		cfg.Trees = 100
	}
	if cfg.MinSamplesLeaf <= 0 {
		cfg.MinSamplesLeaf = 1
	}
	return &RandomForest{Config: cfg}
}

func (m *RandomForest) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("random forest: empty training set")
	}
	m.NumFeatures = len(X[0])
	rng := rand.New(rand.NewSource(m.Config.Seed))
	m.Trees = make([]*RegressionTree, 0, m.Config.Trees)

	n := len(X)
	sampleX := make([][]float64, n)
	sampleY := make([]float64, n)
	for t := 0; t < m.Config.Trees; t++ {
		for i := 0; i < n; i++ {
			j := rng.Intn(n)
			sampleX[i] = X[j]
			sampleY[i] = y[j]
		}
		tree := NewRegressionTree(TreeConfig{
			MaxDepth:       m.Config.MaxDepth,
			MinSamplesLeaf: m.Config.MinSamplesLeaf,
		})
		if err := tree.Fit(sampleX, sampleY); err != nil {
			return err
		}
		m.Trees = append(m.Trees, tree)
	}
	return nil
}

func (m *RandomForest) Predict(row []float64) float64 {
	var sum float64
	for _, tree := range m.Trees {
		sum += tree.Predict(row)
	}
	return sum / float64(len(m.Trees))
}

// FeatureWeights sums per-tree impurity decreases and normalizes them to sum
// to one, the usual forest importance convention.
func (m *RandomForest) FeatureWeights() ([]float64, bool) {
	if len(m.Trees) == 0 {
		return nil, false
	}
	weights := make([]float64, m.NumFeatures)
	for _, tree := range m.Trees {
		for i, v := range tree.Importances {
			weights[i] += v
		}
	}
	var total float64
	for _, v := range weights {
		total += v
	}
	if total > 0 {
		for i := range weights {
			weights[i] /= total
		}
	}
	return weights, true
}
