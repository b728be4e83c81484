package ml

import (
	"errors"
	"sort"
)

// TreeConfig bounds a single regression tree.
type TreeConfig struct {
	MaxDepth       int // 0 means unbounded
	MinSamplesLeaf int
}

// TreeNode is one node of a fitted tree. Feature is -1 on leaves.
type TreeNode struct {
	Feature   int
	Threshold float64
	Value     float64
	Left      *TreeNode
	Right     *TreeNode
}

// RegressionTree is a CART-style tree greedily minimizing squared error.
// Importances accumulates the raw impurity decrease per feature across all
// splits, the same statistic tree ensembles aggregate.
type RegressionTree struct {
	Root        *TreeNode
	Config      TreeConfig
	Importances []float64
}

func NewRegressionTree(cfg TreeConfig) *RegressionTree {
	if cfg.MinSamplesLeaf <= 0 {
		cfg.MinSamplesLeaf = 1
	}
	return &RegressionTree{Config: cfg}
}

func (t *RegressionTree) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("regression tree: empty training set")
	}
	t.Importances = make([]float64, len(X[0]))
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	t.Root = t.build(X, y, idx, 0)
	return nil
}

func (t *RegressionTree) Predict(row []float64) float64 {
	node := t.Root
	for node.Feature >= 0 {
		if row[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Value
}

func (t *RegressionTree) FeatureWeights() ([]float64, bool) {
	if t.Root == nil {
		return nil, false
	}
	weights := make([]float64, len(t.Importances))
	copy(weights, t.Importances)
	return weights, true
}

func (t *RegressionTree) build(X [][]float64, y []float64, idx []int, depth int) *TreeNode {
	node := &TreeNode{Feature: -1}

	var sum, sumSq float64
	for _, i := range idx {
		sum += y[i]
		sumSq += y[i] * y[i]
	}
	n := float64(len(idx))
	node.Value = sum / n
	sse := sumSq - sum*sum/n

	if sse <= 1e-12 ||
		len(idx) < 2*t.Config.MinSamplesLeaf ||
		len(idx) < 2 ||
		(t.Config.MaxDepth > 0 && depth >= t.Config.MaxDepth) {
		return node
	}

	feature, threshold, gain, ok := t.bestSplit(X, y, idx, sse)
	if !ok {
		return node
	}
	t.Importances[feature] += gain

	var left, right []int
	for _, i := range idx {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	node.Feature = feature
	node.Threshold = threshold
	node.Left = t.build(X, y, left, depth+1)
	node.Right = t.build(X, y, right, depth+1)
	return node
}

// bestSplit scans every feature with a sorted prefix-sum sweep and returns
// the split with the largest impurity decrease.
func (t *RegressionTree) bestSplit(X [][]float64, y []float64, idx []int, parentSSE float64) (feature int, threshold, gain float64, ok bool) {
	numFeatures := len(X[idx[0]])
	order := make([]int, len(idx))

	var totalSum, totalSq float64
	for _, i := range idx {
		totalSum += y[i]
		totalSq += y[i] * y[i]
	}

	bestGain := 1e-12
	for f := 0; f < numFeatures; f++ {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool { return X[order[a]][f] < X[order[b]][f] })

		var leftSum, leftSq float64
		for k := 0; k < len(order)-1; k++ {
			i := order[k]
			leftSum += y[i]
			leftSq += y[i] * y[i]
			if X[order[k]][f] == X[order[k+1]][f] {
				continue
			}
			nl := float64(k + 1)
			nr := float64(len(order) - k - 1)
			if k+1 < t.Config.MinSamplesLeaf || len(order)-k-1 < t.Config.MinSamplesLeaf {
				continue
			}
			rightSum := totalSum - leftSum
			rightSq := totalSq - leftSq
			sseLeft := leftSq - leftSum*leftSum/nl
			sseRight := rightSq - rightSum*rightSum/nr
			g := parentSSE - sseLeft - sseRight
			if g > bestGain {
				bestGain = g
				feature = f
				threshold = (X[order[k]][f] + X[order[k+1]][f]) / 2
				ok = true
			}
		}
	}
	return feature, threshold, bestGain, ok
}
