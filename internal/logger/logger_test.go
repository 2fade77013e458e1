// ABOUTME: Tests for the singleton logger
// ABOUTME: Verifies level filtering and file output

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_WritesToOutput(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})

	log.Info().Str("op", "login").Msg("test message")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain message, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"op":"login"`) {
		t.Errorf("expected structured field in output, got %q", buf.String())
	}
}

func TestInit_LevelFiltering(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})

	log.Debug().Msg("dropped")
	log.Warn().Msg("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Error("debug message should have been filtered")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Error("warn message should have been written")
	}
}

func TestGet_BeforeInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	// No Init with a destination: Get must hand back a usable no-op logger.
	log := Get()
	log.Info().Msg("goes nowhere")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
