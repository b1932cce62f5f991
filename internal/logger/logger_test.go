package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestForAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := For(New(&buf, zerolog.DebugLevel), "store")
	l.Info().Int("records", 3).Msg("fetched")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["component"] != "store" {
		t.Errorf("Expected component 'store', got %v", entry["component"])
	}
	if entry["message"] != "fetched" {
		t.Errorf("Expected message 'fetched', got %v", entry["message"])
	}
	if entry["records"] != float64(3) {
		t.Errorf("Expected records 3, got %v", entry["records"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.WarnLevel)
	l.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("Info should be filtered at warn level, got %s", buf.String())
	}
	l.Warn().Msg("shown")
	if buf.Len() == 0 {
		t.Error("Warn should be written at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, test := range tests {
		if got := ParseLevel(test.name); got != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.name, got, test.expected)
		}
	}
}
