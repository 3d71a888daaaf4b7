package regression

import (
	"math"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// FitExponential は y = c0·e^(c1·x) を推定する。
// ln(y) の単純な線形回帰ではなく、y で重み付けした最小二乗法で線形化する。
// y = 0 の点は重みが0なので和に含めない。負の y は InvalidInputError になる
func FitExponential(data Series, opts ...Option) (*Model, error) {
	return fitExponential(data, NewConfig(opts...))
}

func fitExponential(data Series, cfg Config) (*Model, error) {
	const op = "FitExponential"
	if err := data.validate(op); err != nil {
		return nil, err
	}

	var (
		weighted          int
		sumY, sumXXY      float64
		sumXY             float64
		sumYLnY, sumXYLnY float64
	)
	for _, p := range data {
		if p.Missing || p.Y == 0 {
			continue
		}
		if p.Y < 0 {
			return nil, errors.NewInvalidInputError(op, "y", "must be non-negative for the exponential family", p.Y)
		}
		lnY := math.Log(p.Y)
		weighted++
		sumY += p.Y
		sumXXY += p.X * p.X * p.Y
		sumYLnY += p.Y * lnY
		sumXYLnY += p.X * p.Y * lnY
		sumXY += p.X * p.Y
	}

	if weighted < 2 {
		return nil, errors.NewDegenerateFitError(op, Exponential.String(), "fewer than 2 non-zero observations", nil)
	}

	den := sumY*sumXXY - sumXY*sumXY
	if nearZero(den, sumY*sumXXY) {
		return nil, errors.NewDegenerateFitError(op, Exponential.String(), "all weighted x values are equal", nil)
	}

	c0 := math.Exp((sumXXY*sumYLnY - sumXY*sumXYLnY) / den)
	c1 := (sumY*sumXYLnY - sumXY*sumYLnY) / den

	coefficients := []float64{c0, c1}
	if err := errors.CheckNumericalStability(op, coefficients); err != nil {
		return nil, errors.NewDegenerateFitError(op, Exponential.String(), "coefficients are not finite", err)
	}

	return newModel(op, Exponential, coefficients, data, cfg)
}
