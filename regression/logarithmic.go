package regression

import (
	"math"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// FitLogarithmic は y = c0 + c1·ln(x) を u = ln(x) に対する最小二乗法で推定する。
// x ≤ 0 を含む標本列は InvalidInputError になる
func FitLogarithmic(data Series, opts ...Option) (*Model, error) {
	return fitLogarithmic(data, NewConfig(opts...))
}

func fitLogarithmic(data Series, cfg Config) (*Model, error) {
	const op = "FitLogarithmic"
	if err := data.validate(op); err != nil {
		return nil, err
	}
	// 欠測点でも予測値を評価するので、全ての x を検査する
	for _, p := range data {
		if p.X <= 0 {
			return nil, errors.NewInvalidInputError(op, "x", "must be positive for the logarithmic family", p.X)
		}
	}

	xs, ys := data.observed()
	us := make([]float64, len(xs))
	for i, x := range xs {
		us[i] = math.Log(x)
	}

	n := float64(len(us))
	sumU := floats.Sum(us)
	sumY := floats.Sum(ys)
	sumUU := floats.Dot(us, us)
	sumYU := floats.Dot(ys, us)

	den := n*sumUU - sumU*sumU
	if nearZero(den, n*sumUU) {
		return nil, errors.NewDegenerateFitError(op, Logarithmic.String(), "all x values are equal", nil)
	}

	slope := (n*sumYU - sumY*sumU) / den
	intercept := (sumY - slope*sumU) / n

	return newModel(op, Logarithmic, []float64{intercept, slope}, data, cfg)
}
