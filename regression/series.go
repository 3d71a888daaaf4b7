package regression

import (
	"math"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Point は1つの標本点 (x, y)。Missing が true の場合 y は観測されていない
type Point struct {
	X       float64
	Y       float64
	Missing bool
}

// Observed は観測値を持つ点を作成する
func Observed(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Absent は y が欠測している点を作成する
func Absent(x float64) Point {
	return Point{X: x, Missing: true}
}

// Series は順序付きの標本列。欠測点も位置を保持したまま含まれる
type Series []Point

// SeriesFromXY は x, y のスライスから Series を作成する。
// y が NaN の位置は欠測として扱う
func SeriesFromXY(xs, ys []float64) (Series, error) {
	if len(xs) != len(ys) {
		return nil, errors.NewDimensionError("SeriesFromXY", len(xs), len(ys), 0)
	}
	s := make(Series, len(xs))
	for i := range xs {
		if math.IsNaN(ys[i]) {
			s[i] = Absent(xs[i])
			continue
		}
		s[i] = Observed(xs[i], ys[i])
	}
	return s, nil
}

// ObservedCount は観測値を持つ点の数を返す
func (s Series) ObservedCount() int {
	n := 0
	for _, p := range s {
		if !p.Missing {
			n++
		}
	}
	return n
}

// observed は観測値を持つ点の x, y を返す
func (s Series) observed() (xs, ys []float64) {
	xs = make([]float64, 0, len(s))
	ys = make([]float64, 0, len(s))
	for _, p := range s {
		if p.Missing {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	return xs, ys
}

// Validate は推定に使える標本列かどうかを検証する。
// 2点未満、観測値2点未満、NaN/Inf を含む場合は InvalidInputError を返す
func (s Series) Validate() error {
	return s.validate("Series.Validate")
}

func (s Series) validate(op string) error {
	if len(s) == 0 {
		return errors.Mark(errors.NewInvalidInputError(op, "data", "series is empty", 0), errors.ErrEmptyData)
	}
	if len(s) < 2 {
		return errors.NewInvalidInputError(op, "data", "at least 2 points are required", len(s))
	}
	for _, p := range s {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
			return errors.NewInvalidInputError(op, "x", "must be finite", p.X)
		}
		if !p.Missing && (math.IsNaN(p.Y) || math.IsInf(p.Y, 0)) {
			return errors.NewInvalidInputError(op, "y", "must be finite", p.Y)
		}
	}
	if n := s.ObservedCount(); n < 2 {
		return errors.NewInvalidInputError(op, "data", "at least 2 observed points are required", n)
	}
	return nil
}
