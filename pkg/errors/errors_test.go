package errors

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewInvalidInputError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		param   string
		reason  string
		value   interface{}
		wantMsg string
	}{
		{
			name:    "too few points",
			op:      "FitLinear",
			param:   "data",
			reason:  "at least 2 points are required",
			value:   1,
			wantMsg: "curvefit: FitLinear: invalid input 'data': at least 2 points are required (got: 1)",
		},
		{
			name:    "non-positive x",
			op:      "FitLogarithmic",
			param:   "x",
			reason:  "must be positive",
			value:   -0.5,
			wantMsg: "curvefit: FitLogarithmic: invalid input 'x': must be positive (got: -0.5)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInvalidInputError(tt.op, tt.param, tt.reason, tt.value)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var invalidErr *InvalidInputError
			if !As(err, &invalidErr) {
				t.Error("Error should be castable to *InvalidInputError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Multiply", 3, 2, 0)

	want := "curvefit: Multiply: dimension mismatch on axis 0 (rows). Expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewDegenerateFitError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NewDegenerateFitError("Analyze", "linear", "zero variance in y", nil)

		want := "curvefit: Analyze: degenerate linear fit: zero variance in y"
		if err.Error() != want {
			t.Errorf("Error() = %v, want %v", err.Error(), want)
		}

		var degErr *DegenerateFitError
		if !As(err, &degErr) {
			t.Fatal("Error should be castable to *DegenerateFitError")
		}
		if degErr.Family != "linear" {
			t.Errorf("Family = %q, want linear", degErr.Family)
		}
	})

	t.Run("with cause", func(t *testing.T) {
		err := NewDegenerateFitError("Inverse", "matrix", "determinant is zero", ErrSingularMatrix)

		if !Is(err, ErrSingularMatrix) {
			t.Error("Expected Is(err, ErrSingularMatrix) to be true")
		}
		if !strings.Contains(err.Error(), "singular matrix") {
			t.Errorf("Expected cause in message, got %q", err.Error())
		}
	})
}

func TestNewUnimplementedError(t *testing.T) {
	err := NewUnimplementedError("Fit", "order 3 regression")

	want := "curvefit: Fit: order 3 regression is not implemented"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	if !Is(err, ErrNotImplemented) {
		t.Error("Expected Is(err, ErrNotImplemented) to be true")
	}

	// 他の分類とは区別できること
	var invalidErr *InvalidInputError
	if As(err, &invalidErr) {
		t.Error("UnimplementedError must not be castable to *InvalidInputError")
	}
}

func TestUndefinedMetricWarning(t *testing.T) {
	warn := NewUndefinedMetricWarning("bic", "zero residual sum of squares", math.Inf(-1))

	if !strings.Contains(warn.Error(), "'bic' is ill-defined") {
		t.Errorf("unexpected message: %s", warn.Error())
	}

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Warn().EmbedObject(warn).Msg("metric warning")

	out := buf.String()
	for _, want := range []string{`"metric":"bic"`, `"type":"UndefinedMetricWarning"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestWarnRouting(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(nil)

	Warn(New("plain handler"))
	if len(got) != 1 {
		t.Fatalf("expected 1 warning via handler, got %d", len(got))
	}

	var zl []error
	SetZerologWarnFunc(func(w error) { zl = append(zl, w) })
	defer SetZerologWarnFunc(nil)

	Warn(New("zerolog handler"))
	if len(zl) != 1 || len(got) != 1 {
		t.Errorf("expected zerolog func to take precedence, handler=%d zerolog=%d", len(got), len(zl))
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrNotImplemented, "in matrix.Determinant")

	if !Is(wrapped, ErrNotImplemented) {
		t.Error("Expected Is(wrapped, ErrNotImplemented) to be true")
	}

	if !strings.Contains(wrapped.Error(), "in matrix.Determinant") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "in %s: expected %d, got %d", "FitLinear", 2, 0)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	expectedMsg := "in FitLinear: expected 2, got 0"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestMark(t *testing.T) {
	err := Mark(NewInvalidInputError("Series.Validate", "data", "series is empty", 0), ErrEmptyData)

	if !Is(err, ErrEmptyData) {
		t.Error("Expected Is(err, ErrEmptyData) to be true")
	}
	var invalidErr *InvalidInputError
	if !As(err, &invalidErr) {
		t.Fatal("Expected As to find InvalidInputError through the mark")
	}
	if invalidErr.Param != "data" {
		t.Errorf("Param = %q, want %q", invalidErr.Param, "data")
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("ok", []float64{1, 2, 3}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := CheckNumericalStability("coefficients", []float64{1, math.NaN()})
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatalf("expected *NumericalInstabilityError, got %T", err)
	}
	if numErr.Operation != "coefficients" {
		t.Errorf("Operation = %q", numErr.Operation)
	}

	if err := CheckScalar("scalar", math.Inf(1)); err == nil {
		t.Error("expected error for +Inf")
	}
}
