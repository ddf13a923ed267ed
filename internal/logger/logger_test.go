package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"info":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	} {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConsoleLevelFilter(t *testing.T) {
	var b bytes.Buffer
	log := New("warn", FileConfig{}, &b)
	log.Info("hidden")
	log.Warn("shown", zap.Int("detail", 120))
	_ = log.Sync()
	out := b.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message written at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "detail") {
		t.Errorf("warn message missing from output: %q", out)
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lampshade.log")
	cfg := DefaultFileConfig(path)
	cfg.Compress = false
	log := New("debug", cfg, nil)
	log.Debug("mesh built", zap.Int("triangles", 58080))
	_ = log.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"triangles":58080`) {
		t.Errorf("log file missing structured field: %s", data)
	}
}

func TestNopWithoutOutputs(t *testing.T) {
	log := New("debug", FileConfig{}, nil)
	if log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without outputs should be a no-op")
	}
}
