package regression

import (
	"github.com/YuminosukeSato/curvefit/core/parallel"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
)

// Candidate は1つの候補族の当てはめ結果
type Candidate struct {
	Spec  Specifier
	Model *Model
	Err   error
}

// Selector は複数の族を当てはめ、BIC が最小のモデルを選ぶ
type Selector struct {
	cfg Config
}

// NewSelector は新しい Selector を作成する
func NewSelector(opts ...Option) *Selector {
	return &Selector{cfg: NewConfig(opts...)}
}

// NewSelectorWithConfig は構築済みの Config から Selector を作成する
func NewSelectorWithConfig(cfg Config) *Selector {
	return &Selector{cfg: cfg}
}

// Evaluate は各候補を当てはめた結果を specs の順序で返す。
// specs が空の場合は設定の候補を使う。候補が空、または未対応の族を含む場合はエラー
func (s *Selector) Evaluate(data Series, specs ...Specifier) ([]Candidate, error) {
	const op = "Selector.Evaluate"

	if len(specs) == 0 {
		specs = s.cfg.Candidates
	}
	if len(specs) == 0 {
		return nil, errors.NewInvalidInputError(op, "specifiers", "candidate list is empty", 0)
	}
	for _, spec := range specs {
		if err := spec.validate(op); err != nil {
			return nil, err
		}
	}

	results := make([]Candidate, len(specs))
	fitRange := func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = s.fitCandidate(specs[i], data)
		}
	}

	// 逐次実行の場合は全件を閾値とする
	threshold := len(specs)
	if s.cfg.Parallel {
		threshold = 1
	}
	parallel.ParallelizeWithThreshold(len(specs), threshold, fitRange)

	return results, nil
}

func (s *Selector) fitCandidate(spec Specifier, data Series) (c Candidate) {
	c.Spec = spec
	c.Err = errors.SafeExecute("Selector.fitCandidate", func() error {
		m, err := fitSpecifier(spec, data, s.cfg)
		c.Model = m
		return err
	})
	if c.Err != nil {
		c.Model = nil
	}
	return c
}

// SelectBest は BIC が最小のモデルを返す。BIC が等しい場合は先に現れた候補を優先する。
// 当てはめに失敗した候補は Warn で記録して除外し、全ての候補が失敗した場合は
// それらのエラーをまとめて返す。候補ごとの結果とエラーが必要な場合は Evaluate を使う
func (s *Selector) SelectBest(data Series, specs ...Specifier) (*Model, error) {
	candidates, err := s.Evaluate(data, specs...)
	if err != nil {
		return nil, err
	}

	logger := s.cfg.logger().With(
		log.ComponentKey, "regression",
		log.OperationKey, log.OperationSelect,
		log.CandidatesKey, len(candidates),
		log.ParallelKey, s.cfg.Parallel,
	)

	best, errs := pickBest(candidates)
	for i, c := range candidates {
		if c.Err != nil {
			logger.Warn("candidate skipped", c.Err, log.FamilyKey, c.Spec.String(), log.CandidateIndexKey, i)
		}
	}

	if best == nil {
		err := errors.Join(errs...)
		logger.Warn("no candidate could be fitted", err)
		return nil, err
	}

	logger.Debug("model selected",
		log.FamilyKey, best.family.String(),
		log.EquationKey, best.String(),
		log.BICKey, best.analysis.BIC,
		log.R2ScoreKey, best.analysis.R2,
	)
	return best, nil
}

// pickBest は BIC が厳密に小さい場合のみ最良モデルを更新する。
// そのため BIC が等しい候補同士では先に現れたものが残る
func pickBest(candidates []Candidate) (*Model, []error) {
	var (
		best *Model
		errs []error
	)
	for _, c := range candidates {
		if c.Err != nil {
			errs = append(errs, c.Err)
			continue
		}
		if best == nil || c.Model.analysis.BIC < best.analysis.BIC {
			best = c.Model
		}
	}
	return best, errs
}
