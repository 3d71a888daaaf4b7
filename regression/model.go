package regression

import (
	"math"
	"strconv"
	"strings"
)

// Model は推定済みの曲線モデル。推定関数が一度だけ作成し、以降は変更されない
type Model struct {
	family       Family
	coefficients []float64
	analysis     *Analysis
	precision    int
}

// Family はモデルの族を返す
func (m *Model) Family() Family {
	return m.family
}

// Coefficients は推定された係数のコピーを返す。
//   - linear: [c0 (切片), c1 (傾き)]
//   - exponential: [c0, c1] (y = c0·e^(c1·x))
//   - logarithmic: [c0, c1] (y = c0 + c1·ln(x))
func (m *Model) Coefficients() []float64 {
	return append([]float64(nil), m.coefficients...)
}

// Analysis は当てはまりの評価結果のコピーを返す
func (m *Model) Analysis() *Analysis {
	if m.analysis == nil {
		return nil
	}
	a := *m.analysis
	if a.ConstantError != nil {
		a.ConstantError = append([]float64(nil), a.ConstantError...)
	}
	return &a
}

// Predict は x における予測値を返す
func (m *Model) Predict(x float64) float64 {
	c := m.coefficients
	switch m.family {
	case Linear:
		return c[1]*x + c[0]
	case Exponential:
		return c[0] * math.Exp(c[1]*x)
	case Logarithmic:
		return c[0] + c[1]*math.Log(x)
	}
	return math.NaN()
}

// PredictSeries は各 x に対する予測値を返す
func (m *Model) PredictSeries(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = m.Predict(x)
	}
	return out
}

// String はモデル式を返す (例: "y = 2.5x + 1.3", "y = 1.2e^(0.03x)", "y = 0.5 + 0.2log(x)")
func (m *Model) String() string {
	c := m.coefficients
	var b strings.Builder
	b.WriteString("y = ")
	switch m.family {
	case Linear:
		b.WriteString(m.format(c[1]))
		b.WriteString("x")
		b.WriteString(signed(c[0]))
		b.WriteString(m.format(math.Abs(c[0])))
	case Exponential:
		b.WriteString(m.format(c[0]))
		b.WriteString("e^(")
		b.WriteString(m.format(c[1]))
		b.WriteString("x)")
	case Logarithmic:
		b.WriteString(m.format(c[0]))
		b.WriteString(signed(c[1]))
		b.WriteString(m.format(math.Abs(c[1])))
		b.WriteString("log(x)")
	default:
		b.WriteString("NaN")
	}
	return b.String()
}

func (m *Model) format(v float64) string {
	return strconv.FormatFloat(v, 'g', m.precision, 64)
}

func signed(v float64) string {
	if v < 0 {
		return " - "
	}
	return " + "
}
