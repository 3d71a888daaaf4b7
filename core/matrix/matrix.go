// Package matrix provides the small dense-matrix primitives used for
// coefficient standard errors. Every function allocates its result and
// leaves its arguments untouched.
package matrix

import (
	"math"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// conditionLimit is the condition number above which a matrix is treated
// as numerically singular.
const conditionLimit = 1e14

// Zeros returns an m×n matrix of zeros.
func Zeros(m, n int) *mat.Dense {
	return mat.NewDense(m, n, nil)
}

// FromRows builds a matrix from row slices. All rows must be non-empty and
// of equal length.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.NewInvalidInputError("matrix.FromRows", "rows", "matrix must have at least one row and column", len(rows))
	}
	n := len(rows[0])
	m := Zeros(len(rows), n)
	for i, row := range rows {
		if len(row) != n {
			return nil, errors.NewDimensionError("matrix.FromRows", n, len(row), 1)
		}
		m.SetRow(i, row)
	}
	return m, nil
}

// Rows copies m back into row slices.
func Rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

// Transpose returns mᵗ as a new matrix.
func Transpose(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	t := Zeros(c, r)
	t.Copy(m.T())
	return t
}

// Multiply returns a·b. The column count of a must equal the row count of b.
func Multiply(a, b mat.Matrix) (*mat.Dense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, errors.NewDimensionError("matrix.Multiply", ac, br, 0)
	}
	out := Zeros(ar, bc)
	out.Mul(a, b)
	return out, nil
}

// Gram returns m·mᵗ. For an m×n input the result is m×m, each entry being
// the dot product of two rows.
func Gram(m mat.Matrix) *mat.Dense {
	r, _ := m.Dims()
	out := Zeros(r, r)
	out.Mul(m, m.T())
	return out
}

// Scale returns s·m.
func Scale(s float64, m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	out := Zeros(r, c)
	out.Scale(s, m)
	return out
}

// Diagonal returns the main diagonal of m.
func Diagonal(m mat.Matrix) []float64 {
	r, c := m.Dims()
	n := min(r, c)
	d := make([]float64, n)
	for i := range d {
		d[i] = m.At(i, i)
	}
	return d
}

// Determinant computes det(m) from an LU factorization: the product of the
// diagonal of U with the sign of the row permutation.
func Determinant(m mat.Matrix) (float64, error) {
	r, c := m.Dims()
	if r != c {
		return 0, errors.NewDimensionError("matrix.Determinant", r, c, 1)
	}
	var lu mat.LU
	lu.Factorize(m)
	return lu.Det(), nil
}

// Inverse returns m⁻¹ computed from an LU factorization. A zero determinant
// or a condition number beyond conditionLimit yields a DegenerateFitError
// wrapping ErrSingularMatrix.
func Inverse(m mat.Matrix) (*mat.Dense, error) {
	r, c := m.Dims()
	if r != c {
		return nil, errors.NewDimensionError("matrix.Inverse", r, c, 1)
	}

	var lu mat.LU
	lu.Factorize(m)
	det := lu.Det()
	if det == 0 || math.IsNaN(det) || lu.Cond() > conditionLimit {
		return nil, errors.NewDegenerateFitError("matrix.Inverse", "matrix", "matrix is singular or ill-conditioned", errors.ErrSingularMatrix)
	}

	inv := Zeros(r, c)
	if err := lu.SolveTo(inv, false, mat.NewDiagDense(r, ones(r))); err != nil {
		return nil, errors.NewDegenerateFitError("matrix.Inverse", "matrix", err.Error(), errors.ErrSingularMatrix)
	}
	return inv, nil
}

// StandardErrors estimates per-coefficient standard errors of a least
// squares fit. design holds one row per coefficient and one column per
// observation. The result is sqrt(diag(σ²·(design·designᵗ)⁻¹)) with
// σ² = sse/(n−p).
//
// When the first row is all ones (an intercept), the other rows are centered
// before the Gram matrix is inverted and the intercept variance is recovered
// as σ²·(1/n + x̄ᵗ·S⁻¹·x̄), where S is the centered Gram matrix. Regressors at
// a large offset from zero therefore stay well conditioned.
//
// When there are no residual degrees of freedom (n ≤ p) it returns nil.
func StandardErrors(sse float64, design mat.Matrix) ([]float64, error) {
	p, n := design.Dims()
	if n <= p {
		return nil, nil
	}
	if sse < 0 || math.IsNaN(sse) || math.IsInf(sse, 0) {
		return nil, errors.NewInvalidInputError("matrix.StandardErrors", "sse", "must be a finite non-negative number", sse)
	}
	sigma2 := sse / float64(n-p)

	var variances []float64
	if hasIntercept(design) {
		v, err := centeredVariances(design)
		if err != nil {
			return nil, err
		}
		variances = v
	} else {
		inv, err := Inverse(Gram(design))
		if err != nil {
			return nil, err
		}
		variances = Diagonal(inv)
	}

	se := make([]float64, p)
	for i, v := range variances {
		// rounding can push a tiny variance below zero
		se[i] = math.Sqrt(math.Max(sigma2*v, 0))
	}
	return se, nil
}

// centeredVariances returns diag((design·designᵗ)⁻¹) for a design whose
// first row is the intercept, computed on mean-centered regressors.
func centeredVariances(design mat.Matrix) ([]float64, error) {
	p, n := design.Dims()
	fn := float64(n)
	out := make([]float64, p)
	if p == 1 {
		out[0] = 1 / fn
		return out, nil
	}

	means := mat.NewVecDense(p-1, nil)
	centered := Zeros(p-1, n)
	for i := 1; i < p; i++ {
		row := mat.Row(nil, i, design)
		mean := floats.Sum(row) / fn
		floats.AddConst(-mean, row)
		centered.SetRow(i-1, row)
		means.SetVec(i-1, mean)
	}

	inv, err := Inverse(Gram(centered))
	if err != nil {
		return nil, err
	}

	var sm mat.VecDense
	sm.MulVec(inv, means)
	out[0] = 1/fn + mat.Dot(means, &sm)
	copy(out[1:], Diagonal(inv))
	return out, nil
}

func hasIntercept(design mat.Matrix) bool {
	_, n := design.Dims()
	for j := 0; j < n; j++ {
		if design.At(0, j) != 1 {
			return false
		}
	}
	return true
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}
