package regression

import (
	"math"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Family は閉形式で推定できる曲線の族
type Family int

const (
	// Linear は y = c1·x + c0
	Linear Family = iota + 1
	// Exponential は y = c0·e^(c1·x)
	Exponential
	// Logarithmic は y = c0 + c1·ln(x)
	Logarithmic
)

// Families はサポートされている全ての族を定義順に返す
func Families() []Family {
	return []Family{Linear, Exponential, Logarithmic}
}

func (f Family) String() string {
	switch f {
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	case Logarithmic:
		return "logarithmic"
	default:
		return "unknown"
	}
}

// Valid は f がサポートされている族かどうかを返す
func (f Family) Valid() bool {
	switch f {
	case Linear, Exponential, Logarithmic:
		return true
	}
	return false
}

// ParseFamily は族の名前を大文字小文字を区別せずに解釈する
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear":
		return Linear, nil
	case "exponential":
		return Exponential, nil
	case "logarithmic":
		return Logarithmic, nil
	}
	return 0, errors.NewInvalidInputError("ParseFamily", "family", "unsupported regression family", name)
}

// basis は標準誤差の計画行列で使う説明変数を返す。
// 指数族は線形化前の x をそのまま使うため近似値になる
func (f Family) basis(x float64) float64 {
	if f == Logarithmic {
		return math.Log(x)
	}
	return x
}

// Specifier は当てはめる族と次数の組。次数は将来の多項式族のために予約されている
type Specifier struct {
	Family Family
	Order  int
}

// Spec は次数なしの Specifier を作成する
func Spec(f Family) Specifier {
	return Specifier{Family: f}
}

// DefaultCandidates は自動選択の既定候補 (linear, exponential, logarithmic) を返す
func DefaultCandidates() []Specifier {
	return []Specifier{Spec(Linear), Spec(Exponential), Spec(Logarithmic)}
}

func (s Specifier) String() string {
	return s.Family.String()
}

func (s Specifier) validate(op string) error {
	if !s.Family.Valid() {
		return errors.NewInvalidInputError(op, "family", "unsupported regression family", int(s.Family))
	}
	if s.Order < 0 {
		return errors.NewInvalidInputError(op, "order", "must be non-negative", s.Order)
	}
	if s.Order > 1 {
		return errors.NewUnimplementedError(op, "order "+strconv.Itoa(s.Order)+" "+s.Family.String()+" regression")
	}
	return nil
}
