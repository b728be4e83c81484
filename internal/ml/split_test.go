package ml

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeRows(n int) ([][]float64, []float64) {
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		X[i] = []float64{float64(i)}
		y[i] = float64(i)
	}
	return X, y
}

func TestSplitDataSizes(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		wantTest int
	}{
		{name: "ten rows", n: 10, wantTest: 2},
		{name: "three rows rounds up", n: 3, wantTest: 1},
		{name: "single row goes to test", n: 1, wantTest: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			X, y := makeRows(tt.n)
			XTrain, XTest, yTrain, yTest := SplitData(X, y, 0.2, 42)

			assert.Len(t, XTest, tt.wantTest)
			assert.Len(t, yTest, tt.wantTest)
			assert.Len(t, XTrain, tt.n-tt.wantTest)
			assert.Len(t, yTrain, tt.n-tt.wantTest)
		})
	}
}

func TestSplitDataDeterministic(t *testing.T) {
	X, y := makeRows(50)

	_, _, yTrain1, yTest1 := SplitData(X, y, 0.2, 42)
	_, _, yTrain2, yTest2 := SplitData(X, y, 0.2, 42)

	assert.Equal(t, yTrain1, yTrain2)
	assert.Equal(t, yTest1, yTest2)
}

func TestSplitDataPartition(t *testing.T) {
	X, y := makeRows(20)

	_, _, yTrain, yTest := SplitData(X, y, 0.2, 42)

	all := append(append([]float64{}, yTrain...), yTest...)
	sort.Float64s(all)
	assert.Equal(t, y, all)
}
