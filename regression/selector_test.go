package regression

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBestMatchesIndependentBIC(t *testing.T) {
	data := series([2]float64{1, 1}, [2]float64{2, 4}, [2]float64{3, 9})

	lin, err := FitLinear(data)
	require.NoError(t, err)
	exp, err := FitExponential(data)
	require.NoError(t, err)

	want := Linear
	if exp.Analysis().BIC < lin.Analysis().BIC {
		want = Exponential
	}

	best, err := NewSelector().SelectBest(data, Spec(Linear), Spec(Exponential))
	require.NoError(t, err)
	assert.Equal(t, want, best.Family())
}

func TestSelectBestIsMinimalAndDeterministic(t *testing.T) {
	data := series(
		[2]float64{1, 2.7}, [2]float64{2, 7.4}, [2]float64{3, 20.1},
		[2]float64{4, 54.6}, [2]float64{5, 148.4}, [2]float64{6, 403.4},
	)
	sel := NewSelector()

	first, err := sel.SelectBest(data)
	require.NoError(t, err)
	second, err := sel.SelectBest(data)
	require.NoError(t, err)

	assert.Equal(t, first.Family(), second.Family())
	assert.Equal(t, first.Coefficients(), second.Coefficients())
	assert.Equal(t, Exponential, first.Family())

	candidates, err := sel.Evaluate(data)
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	for _, c := range candidates {
		require.NoError(t, c.Err)
		assert.LessOrEqual(t, first.Analysis().BIC, c.Model.Analysis().BIC, c.Spec.String())
	}
}

func TestSelectBestParallelMatchesSequential(t *testing.T) {
	data := series(
		[2]float64{1, 0.1}, [2]float64{2, 0.8}, [2]float64{3, 1.0},
		[2]float64{4, 1.5}, [2]float64{5, 1.6}, [2]float64{6, 1.8},
	)

	seq, err := NewSelector().SelectBest(data)
	require.NoError(t, err)
	par, err := NewSelector(WithParallel(true)).SelectBest(data)
	require.NoError(t, err)

	assert.Equal(t, seq.Family(), par.Family())
	assert.Equal(t, seq.Coefficients(), par.Coefficients())
	assert.Equal(t, seq.Analysis(), par.Analysis())
}

func TestPickBestFirstSeenWinsOnTies(t *testing.T) {
	a := &Model{family: Linear, coefficients: []float64{0, 1}, analysis: &Analysis{BIC: 3}}
	b := &Model{family: Exponential, coefficients: []float64{1, 0}, analysis: &Analysis{BIC: 3}}
	c := &Model{family: Logarithmic, coefficients: []float64{0, 1}, analysis: &Analysis{BIC: 5}}

	best, errs := pickBest([]Candidate{{Model: c}, {Model: a}, {Model: b}})
	assert.Same(t, a, best)
	assert.Empty(t, errs)

	best, _ = pickBest([]Candidate{{Model: b}, {Model: a}})
	assert.Same(t, b, best)

	// -Inf は有限の BIC より常に小さい
	perfect := &Model{family: Linear, coefficients: []float64{0, 2}, analysis: &Analysis{BIC: math.Inf(-1)}}
	best, _ = pickBest([]Candidate{{Model: a}, {Model: perfect}})
	assert.Same(t, perfect, best)

	failed := errors.New("boom")
	best, errs = pickBest([]Candidate{{Err: failed}, {Model: c}})
	assert.Same(t, c, best)
	assert.Equal(t, []error{failed}, errs)
}

func TestSelectBestSkipsFailedCandidates(t *testing.T) {
	// 対数族は x ≤ 0 を受け付けない
	data := series([2]float64{-1, -1}, [2]float64{0, 1}, [2]float64{1, 3.2}, [2]float64{2, 4.9})

	testLogger, _ := log.NewTestLogger(log.LevelDebug)
	best, err := NewSelector(WithLogger(testLogger)).SelectBest(data)
	require.NoError(t, err)
	assert.Equal(t, Linear, best.Family())

	assert.True(t, testLogger.ContainsMessage("candidate skipped"))
	assert.True(t, testLogger.ContainsField(log.FamilyKey, "logarithmic"))
	assert.True(t, testLogger.ContainsMessage("model selected"))

	// スキップは Warn で記録されるので、Warn 以上のロガーでも見える
	warnLogger, _ := log.NewTestLogger(log.LevelWarn)
	_, err = NewSelector(WithLogger(warnLogger)).SelectBest(data)
	require.NoError(t, err)

	entries, err := warnLogger.GetLogEntries()
	require.NoError(t, err)
	skipped := 0
	for _, e := range entries {
		if e["message"] == "candidate skipped" {
			assert.Equal(t, "warn", e["level"])
			skipped++
		}
	}
	assert.Equal(t, 2, skipped)

	// Evaluate は除外された候補のエラーも返す
	candidates, err := NewSelector().Evaluate(data)
	require.NoError(t, err)
	assert.NoError(t, candidates[0].Err)
	assert.True(t, isInvalidInput(candidates[1].Err), "exponential: %v", candidates[1].Err)
	assert.True(t, isInvalidInput(candidates[2].Err), "logarithmic: %v", candidates[2].Err)
}

func TestSelectBestErrors(t *testing.T) {
	data := series([2]float64{1, 2}, [2]float64{2, 4.1}, [2]float64{3, 5.9})

	t.Run("empty candidate list", func(t *testing.T) {
		_, err := NewSelector(WithCandidates()).SelectBest(data)
		assert.True(t, isInvalidInput(err), "got %v", err)
	})

	t.Run("unsupported family", func(t *testing.T) {
		_, err := NewSelector().SelectBest(data, Spec(Linear), Specifier{Family: Family(9)})
		assert.True(t, isInvalidInput(err), "got %v", err)
	})

	t.Run("unimplemented order", func(t *testing.T) {
		_, err := NewSelector().SelectBest(data, Specifier{Family: Linear, Order: 2})
		assert.True(t, errors.Is(err, errors.ErrNotImplemented), "got %v", err)
	})

	t.Run("every candidate degenerate", func(t *testing.T) {
		constant := series([2]float64{1, 5}, [2]float64{2, 5}, [2]float64{3, 5})
		m, err := NewSelector().SelectBest(constant)
		assert.Nil(t, m)
		assert.True(t, isDegenerate(err), "got %v", err)
	})
}

func TestSelectorUsesConfiguredCandidates(t *testing.T) {
	data := series([2]float64{1, 1}, [2]float64{2, 4}, [2]float64{3, 9}, [2]float64{4, 16})

	sel := NewSelectorWithConfig(NewConfig(WithCandidates(Spec(Logarithmic))))
	best, err := sel.SelectBest(data)
	require.NoError(t, err)
	assert.Equal(t, Logarithmic, best.Family())
}
