package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// TestLogger is a ZerologLogger that records JSON lines in memory so tests
// can assert on fit and selection logging. Records carry no timestamp.
type TestLogger struct {
	*ZerologLogger
	out *lockedBuffer
}

// NewTestLogger creates a TestLogger capturing records at or above level.
// The returned buffer holds the raw JSON lines.
//
//	logger, buf := log.NewTestLogger(log.LevelDebug)
//	regression.FitLinear(data, regression.WithLogger(logger))
//	fmt.Println(buf.String())
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	out := &lockedBuffer{}
	zl := zerolog.New(out).Level(toZerologLevel(level))
	return &TestLogger{ZerologLogger: NewZerologLoggerFrom(zl), out: out}, &out.buf
}

// With returns a TestLogger sharing the same capture buffer.
func (t *TestLogger) With(fields ...any) Logger {
	child := t.ZerologLogger.With(fields...).(*ZerologLogger)
	return &TestLogger{ZerologLogger: child, out: t.out}
}

// GetLogEntries decodes every captured record.
func (t *TestLogger) GetLogEntries() ([]map[string]interface{}, error) {
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(t.out.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ContainsMessage reports whether any captured output contains message.
func (t *TestLogger) ContainsMessage(message string) bool {
	return strings.Contains(t.out.String(), message)
}

// ContainsField reports whether a captured record has key set to value.
// Numbers decode as float64.
//
//	if !testLogger.ContainsField(log.OperationKey, log.OperationFit) {
//	    t.Error("expected a fit record")
//	}
func (t *TestLogger) ContainsField(key string, value interface{}) bool {
	entries, err := t.GetLogEntries()
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if v, ok := entry[key]; ok && v == value {
			return true
		}
	}
	return false
}

// Clear drops everything captured so far.
func (t *TestLogger) Clear() {
	t.out.Reset()
}

// lockedBuffer lets candidates fitted in parallel share one capture buffer.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *lockedBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}
