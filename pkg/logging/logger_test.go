// pkg/logging/logger_test.go
package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestGetLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected slog.Level
	}{
		{"debug", "DEBUG", slog.LevelDebug},
		{"info", "INFO", slog.LevelInfo},
		{"warn", "WARN", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "ERROR", slog.LevelError},
		{"lowercase", "debug", slog.LevelDebug},
		{"unset defaults to info", "", slog.LevelInfo},
		{"garbage defaults to info", "VERBOSE", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STEER_LOG_LEVEL", tt.value)
			if got := getLogLevelFromEnv(); got != tt.expected {
				t.Errorf("getLogLevelFromEnv() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCorrelationID_RoundTrip(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "tick-42")
	if got := GetCorrelationID(ctx); got != "tick-42" {
		t.Errorf("GetCorrelationID() = %q, expected tick-42", got)
	}
}

func TestCorrelationID_GeneratedWhenEmpty(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "")
	id := GetCorrelationID(ctx)
	if id == "" {
		t.Fatal("expected a generated correlation ID")
	}
	if len(id) != 16 {
		t.Errorf("generated ID %q has length %d, expected 16 hex chars", id, len(id))
	}
}

func TestCorrelationID_AbsentFromBareContext(t *testing.T) {
	if got := GetCorrelationID(context.Background()); got != "" {
		t.Errorf("GetCorrelationID() = %q, expected empty", got)
	}
}

func TestGenerateCorrelationID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateCorrelationID()
		if seen[id] {
			t.Fatalf("duplicate correlation ID %q", id)
		}
		seen[id] = true
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("connection refused")

	wrapped := WrapError(base, "dialing bridge %s", "localhost:4566")
	if wrapped == nil {
		t.Fatal("WrapError returned nil for a non-nil error")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost the original")
	}
	expected := "dialing bridge localhost:4566: connection refused"
	if wrapped.Error() != expected {
		t.Errorf("wrapped message = %q, expected %q", wrapped.Error(), expected)
	}

	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}
