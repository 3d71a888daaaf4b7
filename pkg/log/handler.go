package log

import (
	"context"
	"log/slog"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
	cerrors "github.com/cockroachdb/errors"
)

// ErrFmtHandler is a slog handler that decorates records carrying an
// ErrAttr with the error category and the stacktrace captured by
// cockroachdb/errors.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps handler with an ErrFmtHandler.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{
		handler: handler,
	}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		err, _ = attr.Value.Any().(error)
		return false
	})
	if err == nil {
		return eh.handler.Handle(ctx, r)
	}

	r.AddAttrs(slog.String(ErrorTypeKey, errorType(err)))
	if stacktrace := extractStacktrace(err); stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

// errorType names the most specific failure category found in err's chain.
func errorType(err error) string {
	var (
		invalid    *errors.InvalidInputError
		degenerate *errors.DegenerateFitError
		dimension  *errors.DimensionError
		numerical  *errors.NumericalInstabilityError
		panicErr   *errors.PanicError
	)
	switch {
	case errors.As(err, &invalid):
		return "InvalidInputError"
	case errors.As(err, &degenerate):
		return "DegenerateFitError"
	case errors.Is(err, errors.ErrNotImplemented):
		return "UnimplementedError"
	case errors.As(err, &dimension):
		return "DimensionError"
	case errors.As(err, &numerical):
		return "NumericalInstabilityError"
	case errors.As(err, &panicErr):
		return "PanicError"
	}
	return "error"
}

// extractStacktrace returns the first stacktrace recorded along err's chain.
func extractStacktrace(err error) string {
	for c := err; c != nil; c = cerrors.UnwrapOnce(c) {
		if details := cerrors.GetSafeDetails(c).SafeDetails; len(details) > 0 && details[0] != "" {
			return details[0]
		}
	}
	return ""
}
