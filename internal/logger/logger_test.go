package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		env  string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
		{"nonsense", zerolog.WarnLevel},
	}

	for _, tc := range tests {
		t.Setenv("LOG_LEVEL", tc.env)
		if got := getLogLevel(); got != tc.want {
			t.Errorf("LOG_LEVEL=%q: got %v, want %v", tc.env, got, tc.want)
		}
	}
}

func TestInitWritesComponentField(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENVIRONMENT", "production")
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Init(&buf)
	SysInfo.Warn().Msg("probe")

	out := buf.String()
	if !strings.Contains(out, `"component":"sysinfo"`) {
		t.Fatalf("missing component field in %q", out)
	}
	if !strings.Contains(out, `"message":"probe"`) {
		t.Fatalf("missing message in %q", out)
	}
}
