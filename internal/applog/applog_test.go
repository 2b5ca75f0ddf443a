package applog_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/maxmatch/internal/applog"
)

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	l := applog.New(applog.Config{Level: "warn", Writer: &buf})

	l.Info("should not appear")
	l.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("Info line leaked through at Warn level: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("Warn line missing: %q", out)
	}
}

func TestWithComponentTagsLines(t *testing.T) {
	var buf strings.Builder
	l := applog.New(applog.Config{Level: "debug", Writer: &buf}).WithComponent("blossomfull")

	l.Debug("phase1 seeded %d roots", 3)

	out := buf.String()
	if !strings.Contains(out, "[blossomfull]") {
		t.Errorf("missing component tag: %q", out)
	}
	if !strings.Contains(out, "phase1 seeded 3 roots") {
		t.Errorf("missing formatted message: %q", out)
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := applog.ParseLevel("bogus"); got != applog.LevelInfo {
		t.Errorf("ParseLevel(bogus) = %v; want LevelInfo", got)
	}
	if got := applog.ParseLevel("ERROR"); got != applog.LevelError {
		t.Errorf("ParseLevel(ERROR) = %v; want LevelError", got)
	}
}
