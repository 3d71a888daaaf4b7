package regression

import (
	"math"

	"github.com/YuminosukeSato/curvefit/core/matrix"
	"github.com/YuminosukeSato/curvefit/metrics"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Analysis は当てはまりの良さの指標
type Analysis struct {
	R2  float64
	AIC float64
	BIC float64
	// ConstantError は係数ごとの標準誤差 (係数と同じ順序)。
	// 残差の自由度がない場合 (観測数 ≤ 係数の数) と計算できない場合は nil
	ConstantError []float64
}

// Analyze は観測値と予測値から R², AIC, BIC, 標準誤差を計算する。
// predictions は data と同じ長さで、欠測点は両方の段階で無視される。
// p は推定した係数の数。
//
//   - y の分散が0 (SSY = 0) の場合は DegenerateFitError
//   - 完全な当てはまり (SSE = 0) の場合 AIC と BIC は -Inf とし、UndefinedMetricWarning を発生させる
func Analyze(family Family, data Series, predictions []float64, p int) (*Analysis, error) {
	const op = "Analyze"

	if len(predictions) != len(data) {
		return nil, errors.NewDimensionError(op, len(data), len(predictions), 0)
	}
	if p < 1 {
		return nil, errors.NewInvalidInputError(op, "p", "at least one parameter is required", p)
	}

	xs := make([]float64, 0, len(data))
	ys := make([]float64, 0, len(data))
	yHat := make([]float64, 0, len(data))
	for i, pt := range data {
		if pt.Missing {
			continue
		}
		xs = append(xs, pt.X)
		ys = append(ys, pt.Y)
		yHat = append(yHat, predictions[i])
	}

	n := len(ys)
	if n < 2 {
		return nil, errors.NewInvalidInputError(op, "data", "at least 2 observed points are required", n)
	}
	if err := errors.CheckNumericalStability(family.String()+".predictions", yHat); err != nil {
		return nil, errors.NewDegenerateFitError(op, family.String(), "non-finite predictions", err)
	}

	ssy, sse, err := metrics.SumSquares(ys, yHat)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if ssy == 0 {
		return nil, errors.NewDegenerateFitError(op, family.String(), "zero variance in y", nil)
	}

	a := &Analysis{R2: 1 - sse/ssy}
	// 係数に加えて誤差分散も推定している
	a.AIC, a.BIC, err = metrics.InformationCriteria(n, sse, p+1)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if sse == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("aic/bic", "zero residual sum of squares ("+family.String()+" fit is exact)", a.BIC))
	}

	a.ConstantError = constantError(family, xs, sse)

	return a, nil
}

// constantError は標準誤差を計算する。計算できない場合は当てはめを失敗させず、
// UndefinedMetricWarning を発生させて nil を返す
func constantError(family Family, xs []float64, sse float64) []float64 {
	design := matrix.Zeros(2, len(xs))
	for i, x := range xs {
		design.Set(0, i, 1)
		design.Set(1, i, family.basis(x))
	}
	se, err := matrix.StandardErrors(sse, design)
	if err != nil {
		errors.Warn(errors.NewUndefinedMetricWarning("constant_error", family.String()+" standard errors: "+err.Error(), math.NaN()))
		return nil
	}
	return se
}
