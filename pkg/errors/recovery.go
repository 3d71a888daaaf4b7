package errors

import (
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// PanicError は候補の当てはめ中に発生した panic をエラーとして表します。
type PanicError struct {
	Op    string
	Value any
	// Stack は panic 発生時のスタックトレースです。
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("curvefit: %s: panic: %v", e.Op, e.Value)
}

// MarshalZerologObject は zerolog の構造化ログ出力に対応します。
func (e *PanicError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("op", e.Op).Interface("panic", e.Value)
}

// NewPanicError は現在のスタックトレースを記録した PanicError を作成します。
func NewPanicError(op string, value any) *PanicError {
	return &PanicError{Op: op, Value: value, Stack: string(debug.Stack())}
}

// Recover は defer で使用し、panic を *err に変換します。
// *err が既に設定されている場合は両方のエラーを Join で保持します。
//
//	func fit() (err error) {
//	    defer errors.Recover(&err, "Selector.fitCandidate")
//	    ...
//	}
func Recover(err *error, op string) {
	r := recover()
	if r == nil {
		return
	}
	panicErr := NewPanicError(op, r)
	if *err != nil {
		*err = Join(panicErr, *err)
		return
	}
	*err = panicErr
}

// SafeExecute は fn を実行し、panic を PanicError として返します。
func SafeExecute(op string, fn func() error) (err error) {
	defer Recover(&err, op)
	return fn()
}
