package testdoubles

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// LogHandlerSpy is a slog.Handler implementation that captures log records for testing.
type LogHandlerSpy struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a new LogHandlerSpy.
// Switchable to log to stdout, which can be useful for debugging tests by seeing the actual log output.
func NewLogHandlerSpy(logToStdout bool) *LogHandlerSpy {
	return &LogHandlerSpy{
		records:     make([]slog.Record, 0),
		logToStdout: logToStdout,
	}
}

// Handle implements slog.Handler.
func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record.Clone())

	if s.logToStdout {
		_ = slog.NewJSONHandler(os.Stdout, nil).Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler, all levels are captured.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler, attributes added this way are not captured.
func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup implements slog.Handler, groups are ignored.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// GetRecordCount returns the number of captured log records.
func (s *LogHandlerSpy) GetRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Reset clears all captured log records.
func (s *LogHandlerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

// SpyLogRecordMatcher provides a fluent interface for checking log record attributes.
type SpyLogRecordMatcher struct {
	candidates []slog.Record
	wanted     map[string]string
}

// HasDebugLog starts a fluent chain to check a debug-level log record.
func (s *LogHandlerSpy) HasDebugLog(message string) *SpyLogRecordMatcher {
	return s.matcherFor(slog.LevelDebug, message)
}

// HasInfoLog starts a fluent chain to check an info-level log record.
func (s *LogHandlerSpy) HasInfoLog(message string) *SpyLogRecordMatcher {
	return s.matcherFor(slog.LevelInfo, message)
}

// HasWarnLog starts a fluent chain to check a warn-level log record.
func (s *LogHandlerSpy) HasWarnLog(message string) *SpyLogRecordMatcher {
	return s.matcherFor(slog.LevelWarn, message)
}

// HasErrorLog starts a fluent chain to check an error-level log record.
func (s *LogHandlerSpy) HasErrorLog(message string) *SpyLogRecordMatcher {
	return s.matcherFor(slog.LevelError, message)
}

func (s *LogHandlerSpy) matcherFor(level slog.Level, message string) *SpyLogRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	matcher := &SpyLogRecordMatcher{wanted: make(map[string]string)}
	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			matcher.candidates = append(matcher.candidates, record)
		}
	}

	return matcher
}

// WithAttr requires an attribute whose value renders to the given string.
func (m *SpyLogRecordMatcher) WithAttr(key string, value any) *SpyLogRecordMatcher {
	m.wanted[key] = fmt.Sprint(value)
	return m
}

// Assert returns true if some record satisfied all conditions in the fluent chain.
func (m *SpyLogRecordMatcher) Assert() bool {
	for _, record := range m.candidates {
		attrs := make(map[string]string)
		record.Attrs(func(attr slog.Attr) bool {
			attrs[attr.Key] = attr.Value.String()
			return true
		})

		if matchesAll(attrs, m.wanted) {
			return true
		}
	}

	return false
}
