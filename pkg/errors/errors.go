// Package errors はcurvefit全体のエラーハンドリングと警告システムを提供します。
// 入力不正・退化したフィット・未実装機能を区別できる構造化エラーを提供します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	警告の配送
//
// ===========================================================================

// WarningHandler は Warn で発生した警告を受け取ります。
type WarningHandler func(w error)

func defaultWarningHandler(w error) {
	log.Printf("curvefit: warning: %v", w)
}

var (
	warningMu sync.RWMutex
	// handler は SetWarningHandler で設定され、routed は構造化ログへの配送先です。
	// routed が設定されていれば handler より優先されます。
	handler WarningHandler = defaultWarningHandler
	routed  WarningHandler
)

// SetWarningHandler は警告ハンドラを置き換えます。nil を渡すと警告を破棄します。
//
//	errors.SetWarningHandler(func(w error) {
//	    slog.Warn("curvefit warning", "warning", w)
//	})
func SetWarningHandler(h func(w error)) {
	warningMu.Lock()
	defer warningMu.Unlock()
	handler = h
}

// SetZerologWarnFunc は警告を構造化ログへ送る関数を設定します。
// pkg/log が pkg/errors に依存するため、ロガーはこの関数経由で登録されます。
// nil を渡すと SetWarningHandler のハンドラに戻ります。
func SetZerologWarnFunc(fn func(warning error)) {
	warningMu.Lock()
	defer warningMu.Unlock()
	routed = fn
}

// Warn は警告を発生させます。ハンドラはロックの外で呼ばれるため、
// ハンドラ内から Warn を呼んでも構いません。
func Warn(w error) {
	warningMu.RLock()
	h := handler
	if routed != nil {
		h = routed
	}
	warningMu.RUnlock()

	if h != nil {
		h(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// UndefinedMetricWarning は評価指標が有限値として定義できない場合に発生する警告です。
// 例えば、残差平方和が0の完全なフィットではAIC/BICが-Infになります。
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // この条件で返される値
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning は新しいUndefinedMetricWarningを作成します。
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("curvefit: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// InvalidInputError は入力データやパラメータが推定に使えない場合のエラーです。
// 点数不足、対数モデルへの非正のx、未対応のファミリー名などが該当します。
type InvalidInputError struct {
	Op     string
	Param  string
	Reason string
	Value  interface{}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("curvefit: %s: invalid input '%s': %s (got: %v)", e.Op, e.Param, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("param", e.Param).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "InvalidInputError")
}

// NewInvalidInputError は新しいInvalidInputErrorを作成し、スタックトレースを付与します。
func NewInvalidInputError(op, param, reason string, value interface{}) error {
	err := &InvalidInputError{Op: op, Param: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// DegenerateFitError は分散0などにより閉形式解の分母が0になった場合のエラーです。
// NaNやInfの係数を返す代わりにこのエラーを返します。
type DegenerateFitError struct {
	Op     string
	Family string
	Reason string
	Err    error
}

func (e *DegenerateFitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("curvefit: %s: degenerate %s fit: %s: %v", e.Op, e.Family, e.Reason, e.Err)
	}
	return fmt.Sprintf("curvefit: %s: degenerate %s fit: %s", e.Op, e.Family, e.Reason)
}

func (e *DegenerateFitError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DegenerateFitError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("family", e.Family).
		Str("reason", e.Reason).
		Str("type", "DegenerateFitError")
	if e.Err != nil {
		event.AnErr("cause", e.Err)
	}
}

// NewDegenerateFitError は新しいDegenerateFitErrorを作成し、スタックトレースを付与します。
func NewDegenerateFitError(op, family, reason string, cause error) error {
	err := &DegenerateFitError{Op: op, Family: family, Reason: reason, Err: cause}
	return errors.WithStack(err)
}

// UnimplementedError は要求された機能がまだ実装されていない場合のエラーです。
// errors.Is(err, ErrNotImplemented) でも判定できます。
type UnimplementedError struct {
	Op         string
	Capability string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("curvefit: %s: %s is not implemented", e.Op, e.Capability)
}

func (e *UnimplementedError) Unwrap() error {
	return ErrNotImplemented
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *UnimplementedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("capability", e.Capability).
		Str("type", "UnimplementedError")
}

// NewUnimplementedError は新しいUnimplementedErrorを作成し、スタックトレースを付与します。
func NewUnimplementedError(op, capability string) error {
	err := &UnimplementedError{Op: op, Capability: capability}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// Join は複数のエラーを1つにまとめます。nilは無視されます。
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Mark はエラーに目印を付け、Is(err, reference) が真になるようにします。
// 元のエラーの型は As で引き続き取り出せます。
func Mark(err error, reference error) error {
	return errors.Mark(err, reference)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrNotImplemented は機能が未実装の場合のエラーです。
	ErrNotImplemented = New("not implemented")

	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix は特異行列の場合のエラーです。
	ErrSingularMatrix = New("singular matrix")
)
