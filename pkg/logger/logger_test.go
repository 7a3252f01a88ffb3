package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestLogBeforeInit(t *testing.T) {
	saved := Log
	Log = nil
	defer func() { Log = saved }()

	// Every level must degrade to a no-op instead of dereferencing a nil
	// logger.
	Debug("debug before init")
	Info("info before init", zap.String("k", "v"))
	Warn("warn before init")
	Error("error before init")
	Sync()
}

func TestInitRejectsUnwritableFile(t *testing.T) {
	if err := Init("info", "/nonexistent-dir/agent.log"); err == nil {
		t.Error("Expected error for unwritable log file")
	}
}

func TestInitFallsBackToInfoLevel(t *testing.T) {
	if err := Init("not-a-level", ""); err != nil {
		t.Fatalf("Expected unknown level to fall back, got %v", err)
	}
	if Log == nil {
		t.Fatal("Expected logger to be initialized")
	}
	if !Log.Core().Enabled(zap.InfoLevel) {
		t.Error("Expected info level enabled after fallback")
	}
}
