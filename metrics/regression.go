// Package metrics は当てはめの良さを測る指標を提供する
package metrics

import (
	"math"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SumSquares は全変動 SSY = Σ(y - ȳ)² と残差平方和 SSE = Σ(y - ŷ)² を計算する
func SumSquares(yTrue, yPred []float64) (ssy, sse float64, err error) {
	n := len(yTrue)
	if n == 0 {
		return 0, 0, errors.NewInvalidInputError("SumSquares", "yTrue", "empty vector", 0)
	}
	if len(yPred) != n {
		return 0, 0, errors.NewDimensionError("SumSquares", n, len(yPred), 0)
	}

	mean := stat.Mean(yTrue, nil)
	for i, y := range yTrue {
		d := y - mean
		ssy += d * d
		r := y - yPred[i]
		sse += r * r
	}
	return ssy, sse, nil
}

// RMSE は平方根平均二乗誤差を計算する
func RMSE(yTrue, yPred []float64) (float64, error) {
	if len(yTrue) == 0 {
		return 0, errors.NewInvalidInputError("RMSE", "yTrue", "empty vector", 0)
	}
	if len(yPred) != len(yTrue) {
		return 0, errors.NewDimensionError("RMSE", len(yTrue), len(yPred), 0)
	}
	return floats.Distance(yTrue, yPred, 2) / math.Sqrt(float64(len(yTrue))), nil
}

// InformationCriteria は正規誤差を仮定した AIC と BIC を返す。
// k は誤差分散を含めた推定パラメータ数。
//
//	common = n + n·ln(2π) + n·ln(SSE/n)
//	AIC    = common + 2k
//	BIC    = common + ln(n)·k
//
// SSE = 0 の場合はどちらも -Inf になる
func InformationCriteria(n int, sse float64, k int) (aic, bic float64, err error) {
	if n < 1 {
		return 0, 0, errors.NewInvalidInputError("InformationCriteria", "n", "must be positive", n)
	}
	if sse < 0 || math.IsNaN(sse) || math.IsInf(sse, 0) {
		return 0, 0, errors.NewInvalidInputError("InformationCriteria", "sse", "must be finite and non-negative", sse)
	}
	if sse == 0 {
		return math.Inf(-1), math.Inf(-1), nil
	}

	fn := float64(n)
	common := fn + fn*math.Log(2*math.Pi) + fn*math.Log(sse/fn)
	return common + 2*float64(k), common + math.Log(fn)*float64(k), nil
}
