package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/williamc15/Project3Final/internal/runstore"
)

func TestGenerateProducesAPDF(t *testing.T) {
	finished := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	run := &runstore.Run{
		ID:         "run-1",
		Source:     "LET X 5\nPRINT X\n.",
		StartedAt:  finished.Add(-time.Second),
		FinishedAt: &finished,
		Status:     "ok",
	}
	events := []runstore.IOEvent{
		{Line: 2, Kind: "print", Text: "5"},
	}

	var buf bytes.Buffer
	if err := Generate(&buf, run, events); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if buf.Len() < 4 {
		t.Fatal("PDF output too small")
	}
	if string(buf.Bytes()[:4]) != "%PDF" {
		t.Error("PDF output does not start with %PDF magic bytes")
	}
}

func TestGenerateHandlesRunWithNoIOEvents(t *testing.T) {
	run := &runstore.Run{
		ID:        "run-2",
		Source:    ".",
		StartedAt: time.Now().UTC(),
		Status:    "running",
	}

	var buf bytes.Buffer
	if err := Generate(&buf, run, nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if string(buf.Bytes()[:4]) != "%PDF" {
		t.Error("PDF output does not start with %PDF magic bytes")
	}
}

func TestGenerateIncludesErrorMessageWhenRunFailed(t *testing.T) {
	run := &runstore.Run{
		ID:        "run-3",
		Source:    `LET X "a"` + "\n" + "ADD X 1\n.",
		StartedAt: time.Now().UTC(),
		Status:    "error",
		ErrorMsg:  "Error during execution: Line 2: Type mismatch in ADD",
	}

	var buf bytes.Buffer
	if err := Generate(&buf, run, nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
}

func TestTruncateLeavesShortStringsUntouched(t *testing.T) {
	if got, want := truncate("short", 80), "short"; got != want {
		t.Errorf("truncate(%q, 80) = %q, want %q", "short", got, want)
	}
}

func TestTruncateShortensLongStrings(t *testing.T) {
	long := "0123456789012345678901234567890123456789"
	got := truncate(long, 10)
	if len(got) != 10 {
		t.Fatalf("truncate result length = %d, want 10", len(got))
	}
	if got != "0123456..." {
		t.Errorf("got %q, want %q", got, "0123456...")
	}
}
