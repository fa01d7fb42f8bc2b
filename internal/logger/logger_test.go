package logger

import (
	"context"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Fatal("New() returned nil")
			}
			// Must not panic at any level
			ctx := context.Background()
			log.Debug(ctx, "debug %s", "msg")
			log.Info(ctx, "info %s", "msg")
			log.Warn(ctx, "warn %s", "msg")
			log.Error(ctx, "error %s", "msg")
		})
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    bool
	}{
		{"debug logs at debug", "debug", "debug", true},
		{"debug suppressed at info", "info", "debug", false},
		{"warn logs at info", "info", "warn", true},
		{"info suppressed at error", "error", "info", false},
		{"unknown current defaults to info", "bogus", "info", true},
		{"unknown target always logs", "error", "trace", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.current).(*implLogger)
			if got := l.shouldLog(tt.target); got != tt.want {
				t.Errorf("shouldLog(%q) with level %q = %v, want %v", tt.target, tt.current, got, tt.want)
			}
		})
	}
}
