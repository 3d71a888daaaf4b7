package regression

import (
	"math"
	"time"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
)

// relTolerance は閉形式解の分母を0とみなす相対誤差
const relTolerance = 1e-12

// Fit は spec が指す族の推定関数を呼び出す
func Fit(spec Specifier, data Series, opts ...Option) (*Model, error) {
	return fitSpecifier(spec, data, NewConfig(opts...))
}

func fitSpecifier(spec Specifier, data Series, cfg Config) (*Model, error) {
	if err := spec.validate("Fit"); err != nil {
		return nil, err
	}

	start := time.Now()
	var (
		m   *Model
		err error
	)
	switch spec.Family {
	case Linear:
		m, err = fitLinear(data, cfg)
	case Exponential:
		m, err = fitExponential(data, cfg)
	case Logarithmic:
		m, err = fitLogarithmic(data, cfg)
	default:
		return nil, errors.NewInvalidInputError("Fit", "family", "unsupported regression family", int(spec.Family))
	}

	logger := cfg.logger().With(
		log.ComponentKey, "regression",
		log.OperationKey, log.OperationFit,
		log.FamilyKey, spec.Family.String(),
		log.SamplesKey, len(data),
	)
	if err != nil {
		logger.Debug("fit failed", err)
		return nil, err
	}
	logger.Debug("fit completed",
		log.EquationKey, m.String(),
		log.CoefficientsKey, m.coefficients,
		log.R2ScoreKey, m.analysis.R2,
		log.AICKey, m.analysis.AIC,
		log.BICKey, m.analysis.BIC,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return m, nil
}

// newModel はモデルを作成し、全ての点での予測値を使って評価を付与する。
// 評価に使う予測値は Model.PredictSeries で求めるので、Predict と常に一致する
func newModel(op string, family Family, coefficients []float64, data Series, cfg Config) (*Model, error) {
	m := &Model{
		family:       family,
		coefficients: coefficients,
		precision:    cfg.Precision,
	}

	xs := make([]float64, len(data))
	for i, p := range data {
		xs[i] = p.X
	}
	predictions := m.PredictSeries(xs)

	analysis, err := Analyze(family, data, predictions, len(coefficients))
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	m.analysis = analysis
	return m, nil
}

func nearZero(v, scale float64) bool {
	return math.Abs(v) <= relTolerance*math.Abs(scale)
}
