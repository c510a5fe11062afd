package cli

import (
	"testing"

	"stint/internal/config"
)

func resetFlags(t *testing.T) {
	t.Helper()
	oldSettings, oldStart, oldEnd := settings, startFlag, endFlag
	t.Cleanup(func() {
		settings, startFlag, endFlag = oldSettings, oldStart, oldEnd
	})
	settings = config.DefaultSettings()
}

func TestSeedRangeFromFlags(t *testing.T) {
	resetFlags(t)

	startFlag, endFlag = "2025-06-01", "2025-06-07"
	r, ok, err := seedRange()
	if err != nil {
		t.Fatalf("seedRange() error: %v", err)
	}
	if !ok {
		t.Fatal("Expected a seeded range")
	}

	start, _ := r.Start.Time()
	end, _ := r.End.Time()
	if start.Day() != 1 || end.Day() != 7 {
		t.Errorf("Expected 01..07, got %v..%v", start, end)
	}
}

func TestSeedRangeHalfOpen(t *testing.T) {
	resetFlags(t)

	startFlag, endFlag = "2025-06-01", ""
	r, ok, err := seedRange()
	if err != nil || !ok {
		t.Fatalf("seedRange() = %v, %v", ok, err)
	}
	if !r.End.IsUnset() {
		t.Error("Expected the end bound to stay unset")
	}
}

func TestSeedRangeRejectsReversedPair(t *testing.T) {
	resetFlags(t)

	startFlag, endFlag = "2025-06-07", "2025-06-01"
	if _, _, err := seedRange(); err == nil {
		t.Error("Expected an error for start after end")
	}
}

func TestSeedRangeRejectsGarbage(t *testing.T) {
	resetFlags(t)

	startFlag, endFlag = "not a date", ""
	if _, _, err := seedRange(); err == nil {
		t.Error("Expected an error for unparsable input")
	}
}

func TestSeedRangeRelativeInput(t *testing.T) {
	resetFlags(t)

	startFlag, endFlag = "-7d", "today"
	r, ok, err := seedRange()
	if err != nil || !ok {
		t.Fatalf("seedRange() = %v, %v", ok, err)
	}
	if !r.Start.IsValid() || !r.End.IsValid() {
		t.Error("Expected relative forms to parse to valid dates")
	}
}

func TestSeedRangeNoFlags(t *testing.T) {
	resetFlags(t)

	startFlag, endFlag = "", ""
	if _, ok, _ := seedRange(); ok {
		t.Error("Expected no seed without flags")
	}
}
