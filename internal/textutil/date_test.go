package textutil

import (
	"testing"
	"time"
)

func TestSplitDatePrefixed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantDate string
		wantRest string
		wantOK   bool
	}{
		{"stamped name", "2025-08-26-hello", "2025-08-26", "hello", true},
		{"plain name", "foo", "", "", false},
		{"hyphens only checked", "2025-08-2x-hello", "2025-08-2x", "hello", true},
		{"too short", "2025-08-26", "", "", false},
		{"empty rest", "2025-08-26-", "2025-08-26", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, rest, ok := SplitDatePrefixed(tt.input)
			if ok != tt.wantOK || date != tt.wantDate || rest != tt.wantRest {
				t.Fatalf("SplitDatePrefixed(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.input, date, rest, ok, tt.wantDate, tt.wantRest, tt.wantOK)
			}
		})
	}
}

func TestDatePrefix(t *testing.T) {
	now := time.Date(2025, 8, 26, 23, 59, 0, 0, time.FixedZone("UTC+2", 2*3600))
	if got := DatePrefix(now); got != "2025-08-26" {
		t.Fatalf("DatePrefix() = %q, want %q (UTC date)", got, "2025-08-26")
	}
}

func TestStampName(t *testing.T) {
	now := time.Date(2025, 8, 26, 12, 0, 0, 0, time.UTC)
	if got := StampName(now, "new thing"); got != "2025-08-26-new-thing" {
		t.Fatalf("StampName() = %q", got)
	}
}
