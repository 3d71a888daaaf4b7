package regression

import (
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// FitLinear は y = c1·x + c0 を最小二乗法で推定する。
// 係数は [c0, c1] の順で返る
func FitLinear(data Series, opts ...Option) (*Model, error) {
	return fitLinear(data, NewConfig(opts...))
}

func fitLinear(data Series, cfg Config) (*Model, error) {
	const op = "FitLinear"
	if err := data.validate(op); err != nil {
		return nil, err
	}

	// 欠測点は和に含めない
	xs, ys := data.observed()
	n := float64(len(xs))
	sumX := floats.Sum(xs)
	sumY := floats.Sum(ys)
	sumXX := floats.Dot(xs, xs)
	sumXY := floats.Dot(xs, ys)

	// 正規方程式の分母 nΣx² - (Σx)²
	den := n*sumXX - sumX*sumX
	if nearZero(den, n*sumXX) {
		return nil, errors.NewDegenerateFitError(op, Linear.String(), "all x values are equal", nil)
	}

	slope := (n*sumXY - sumX*sumY) / den
	intercept := sumY/n - slope*sumX/n

	return newModel(op, Linear, []float64{intercept, slope}, data, cfg)
}
