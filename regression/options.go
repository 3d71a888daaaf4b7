package regression

import "github.com/YuminosukeSato/curvefit/pkg/log"

// Config はフィットとモデル選択の設定。NewConfig で一度だけ構築し、以降は変更しない
type Config struct {
	// Candidates は自動選択で使う候補。空の場合は DefaultCandidates
	Candidates []Specifier
	// Precision は Model.String の有効桁数。-1 は係数を正確に復元できる最短表現
	Precision int
	// Parallel が true の場合、候補を並列に当てはめる
	Parallel bool
	// Logger が nil の場合は log.GetLogger() を使う
	Logger log.Logger
}

// Option is a function that configures Config
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given
func DefaultConfig() Config {
	return Config{
		Candidates: DefaultCandidates(),
		Precision:  -1,
	}
}

// NewConfig applies opts on top of DefaultConfig
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCandidates sets the families considered by automatic selection
func WithCandidates(specs ...Specifier) Option {
	return func(c *Config) {
		c.Candidates = append([]Specifier(nil), specs...)
	}
}

// WithPrecision sets the number of significant digits used by Model.String
func WithPrecision(digits int) Option {
	return func(c *Config) {
		c.Precision = digits
	}
}

// WithParallel sets whether candidates are fitted concurrently
func WithParallel(parallel bool) Option {
	return func(c *Config) {
		c.Parallel = parallel
	}
}

// WithLogger sets the logger used for fit and selection records
func WithLogger(logger log.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func (c Config) logger() log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.GetLogger()
}
