package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerTimestamps(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, LogInfo).Info("planned", "tiles", 12)

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("log line = %q, want a HH:MM:SS.cc prefix", buf.String())
	}
	if !strings.Contains(buf.String(), "tiles=12") {
		t.Errorf("log line = %q, want key/value pair", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		wantLog bool
	}{
		{"debug hidden at info", LogInfo, false},
		{"debug shown at debug", LogDebug, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := New(&buf, LogInfo)
			c.SetLogLevel(tt.level)
			c.Logger.Debug("resolved scale")

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, LogInfo)).done("Planned 12 tiles")

	if !regexp.MustCompile(`Planned 12 tiles \([\d.]+m?s\)`).MatchString(buf.String()) {
		t.Errorf("progress output = %q, want message with elapsed time", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should return log.Default()")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, LogInfo)
	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestCalculateLogsStages(t *testing.T) {
	t.Setenv(cacheDirEnv, t.TempDir())
	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"--verbose", "calculate", studio})

	prev := out
	out = &bytes.Buffer{}
	defer func() { out = prev }()

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"validated outline", "resolved scale", "generated pattern", "Planned 12 tiles"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs missing %q:\n%s", want, logs.String())
		}
	}
}
