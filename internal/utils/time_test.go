package utils

import (
	"errors"
	"testing"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"07:00", 420},
		{"9:05", 545},
		{" 12:30 ", 750},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if err != nil {
			t.Errorf("ParseClock(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "24:00", "12:60", "12", "12:3", "123:00", "aa:bb", "12:00:00", "-1:00", "+9:30", "-0:30", "09:+5", "+1:00", "1:-5"} {
		_, err := ParseClock(in)
		var tpe *domain.TimeParseError
		if !errors.As(err, &tpe) {
			t.Errorf("ParseClock(%q): expected TimeParseError, got %v", in, err)
			continue
		}
		if tpe.Value != in {
			t.Errorf("ParseClock(%q): error carries value %q", in, tpe.Value)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(545); got != "09:05" {
		t.Fatalf("expected 09:05, got %s", got)
	}
	if got := FormatClock(24 * 60); got != "24:00" {
		t.Fatalf("expected 24:00, got %s", got)
	}
}

func TestOverlaps(t *testing.T) {
	if !Overlaps(600, 660, 630, 700) {
		t.Error("expected overlap")
	}
	if Overlaps(600, 660, 660, 700) {
		t.Error("touching intervals must not overlap")
	}
}
