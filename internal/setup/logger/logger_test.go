package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_LevelParsing(t *testing.T) {
	if got := New("debug").GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %s", got)
	}
	if got := New("").GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("Expected info fallback for empty level, got %s", got)
	}
	if got := New("verbose").GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("Expected info fallback for unknown level, got %s", got)
	}
}
