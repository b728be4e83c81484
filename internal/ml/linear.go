package ml

import (
	"errors"
	"math"
)

// ridge keeps the normal equations solvable when the design matrix is rank
// deficient, e.g. a tiny dataset with fewer rows than features. Small enough
// to leave well-conditioned fits untouched.
const ridge = 1e-8

// LinearRegression is ordinary least squares with an intercept, solved via
// the normal equations.
type LinearRegression struct {
	Coefficients []float64
	Intercept    float64
}

func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("linear regression: empty training set")
	}
	p := len(X[0]) + 1 // implicit leading bias column

	xtx := make([][]float64, p)
	for i := range xtx {
		xtx[i] = make([]float64, p)
	}
	xty := make([]float64, p)
	row := make([]float64, p)
	for i, x := range X {
		row[0] = 1
		copy(row[1:], x)
		for a := 0; a < p; a++ {
			xty[a] += row[a] * y[i]
			for b := 0; b < p; b++ {
				xtx[a][b] += row[a] * row[b]
			}
		}
	}
	for a := 0; a < p; a++ {
		xtx[a][a] += ridge
	}

	beta, err := solveLinearSystem(xtx, xty)
	if err != nil {
		return err
	}
	m.Intercept = beta[0]
	m.Coefficients = beta[1:]
	return nil
}

func (m *LinearRegression) Predict(row []float64) float64 {
	v := m.Intercept
	for i, c := range m.Coefficients {
		v += c * row[i]
	}
	return v
}

// FeatureWeights reports absolute coefficient values; only the relative
// magnitude matters for importance ranking, so the sign is discarded.
func (m *LinearRegression) FeatureWeights() ([]float64, bool) {
	if m.Coefficients == nil {
		return nil, false
	}
	weights := make([]float64, len(m.Coefficients))
	for i, c := range m.Coefficients {
		weights[i] = math.Abs(c)
	}
	return weights, true
}

// solveLinearSystem runs Gaussian elimination with partial pivoting. It
// mutates its arguments, which the caller builds locally.
func solveLinearSystem(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, errors.New("linear regression: singular normal equations")
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]
		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			if f == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}
	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		v := b[r]
		for c := r + 1; c < n; c++ {
			v -= a[r][c] * x[c]
		}
		x[r] = v / a[r][r]
	}
	return x, nil
}
