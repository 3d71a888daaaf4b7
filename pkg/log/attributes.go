// Package log defines standard attribute keys for curve fitting operations.
//
// The keys follow a hierarchical naming convention (e.g. "model.family",
// "data.samples") so fit and selection logs can be filtered uniformly.

package log

// Model and Operation Context
const (
	// FamilyKey identifies the curve family being fitted.
	// Examples: "linear", "exponential", "logarithmic"
	FamilyKey = "model.family"

	// EquationKey carries the human-readable form of a fitted model.
	EquationKey = "model.equation"

	// CoefficientsKey carries the fitted coefficients in family order.
	CoefficientsKey = "model.coefficients"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "analyze", "select"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "regression", "matrix", "curvefit"
	ComponentKey = "ml.component"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of points in the series, missing ones included.
	SamplesKey = "data.samples"

	// ObservedKey indicates how many points carry an observation.
	ObservedKey = "data.observed"

	// ParamsKey indicates the number of estimated coefficients.
	ParamsKey = "data.params"
)

// Goodness of fit
const (
	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// AICKey records the Akaike information criterion.
	AICKey = "metrics.aic"

	// BICKey records the Bayesian information criterion.
	BICKey = "metrics.bic"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Model selection
const (
	// CandidatesKey records the number of candidate families considered.
	CandidatesKey = "selector.candidates"

	// CandidateIndexKey records the position of a candidate in selection order.
	CandidateIndexKey = "selector.index"

	// ParallelKey records whether candidates were fitted concurrently.
	ParallelKey = "selector.parallel"
)

// Error and Warning Context
const (
	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "InvalidInputError", "DegenerateFitError"
	ErrorTypeKey = "error.type"

	// ErrorDetailKey holds the structured fields of a typed error.
	ErrorDetailKey = "error.detail"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationAnalyze = "analyze"
	OperationSelect  = "select"
)
