package ml

import (
	"math"
	"math/rand"
)

// SplitData shuffles the rows with a seeded generator and partitions them
// into training and held-out subsets. The held-out size is ceil(n*testSize),
// so even tiny datasets keep at least one evaluation row. Same seed, same
// partition.
func SplitData(X [][]float64, y []float64, testSize float64, seed int64) (XTrain, XTest [][]float64, yTrain, yTest []float64) {
	n := len(X)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	nTest := int(math.Ceil(float64(n) * testSize))
	if nTest > n {
		nTest = n
	}
	for pos, i := range idx {
		if pos < nTest {
			XTest = append(XTest, X[i])
			yTest = append(yTest, y[i])
		} else {
			XTrain = append(XTrain, X[i])
			yTrain = append(yTrain, y[i])
		}
	}
	return XTrain, XTest, yTrain, yTest
}
