package intent

import (
	"testing"
	"time"
)

func TestParseDueSpecClockTime(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.Local)

	got, err := ParseDueSpec("18:00", now)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2026, 8, 25, 18, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// A clock time earlier than now still resolves to today; the reminder
	// is simply due immediately.
	got, err = ParseDueSpec("09:30", now)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want = time.Date(2026, 8, 25, 9, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDueSpecAbsolute(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.Local)

	tests := []struct {
		spec string
		want time.Time
	}{
		{"2026-12-31 09:15", time.Date(2026, 12, 31, 9, 15, 0, 0, time.Local)},
		{"2026-12-31", time.Date(2026, 12, 31, 0, 0, 0, 0, time.Local)},
		{"31.12.2026", time.Date(2026, 12, 31, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		got, err := ParseDueSpec(tt.spec, now)
		if err != nil {
			t.Errorf("ParseDueSpec(%q): %v", tt.spec, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDueSpec(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestParseDueSpecRelative(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		spec string
		want time.Time
	}{
		{"in 5 minutes", now.Add(5 * time.Minute)},
		{"in 1 minute", now.Add(time.Minute)},
		{"in 2 hours", now.Add(2 * time.Hour)},
		{"in 3 days", now.Add(72 * time.Hour)},
		{"IN 10 MIN", now.Add(10 * time.Minute)},
	}

	for _, tt := range tests {
		got, err := ParseDueSpec(tt.spec, now)
		if err != nil {
			t.Errorf("ParseDueSpec(%q): %v", tt.spec, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDueSpec(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestParseDueSpecRejectsGarbage(t *testing.T) {
	now := time.Now()

	for _, spec := range []string{
		"",
		"whenever",
		"in five minutes",
		"in 5",
		"in 5 fortnights",
		"25:99",
	} {
		if _, err := ParseDueSpec(spec, now); err == nil {
			t.Errorf("ParseDueSpec(%q): expected error", spec)
		}
	}
}
