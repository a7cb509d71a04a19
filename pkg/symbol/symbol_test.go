package symbol_test

import (
	"testing"

	"github.com/jmerrifield20/spacetraders/pkg/symbol"
)

func TestParse_valid(t *testing.T) {
	cases := []struct {
		input    string
		sector   string
		system   string
		waypoint string
	}{
		{
			input:    "X1-DF55-20250Z",
			sector:   "X1",
			system:   "DF55",
			waypoint: "20250Z",
		},
		{
			input:  "X1-DF55",
			sector: "X1",
			system: "DF55",
		},
		{
			input:  "X1",
			sector: "X1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			s, err := symbol.Parse(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Sector != tc.sector {
				t.Errorf("Sector: got %q, want %q", s.Sector, tc.sector)
			}
			if s.System != tc.system {
				t.Errorf("System: got %q, want %q", s.System, tc.system)
			}
			if s.Waypoint != tc.waypoint {
				t.Errorf("Waypoint: got %q, want %q", s.Waypoint, tc.waypoint)
			}
			if s.String() != tc.input {
				t.Errorf("String: got %q, want %q", s.String(), tc.input)
			}
		})
	}
}

func TestParse_invalid(t *testing.T) {
	cases := []string{
		"",                 // empty
		"X1-DF55-20250Z-A", // too many segments
		"X1--20250Z",       // empty system
		"x1-df55",          // lower case
		"X1-DF 55",         // space
		"-DF55",            // empty sector
		"X1-DF55-",         // trailing separator
	}

	for _, tc := range cases {
		t.Run(tc, func(t *testing.T) {
			_, err := symbol.Parse(tc)
			if err == nil {
				t.Errorf("expected error for %q but got nil", tc)
			}
		})
	}
}

func TestSystemOf(t *testing.T) {
	got, err := symbol.SystemOf("X1-DF55-20250Z")
	if err != nil {
		t.Fatal(err)
	}
	if got != "X1-DF55" {
		t.Errorf("got %q, want %q", got, "X1-DF55")
	}
	if _, err := symbol.SystemOf("X1-DF55"); err == nil {
		t.Error("expected error for a system symbol")
	}
}

func TestSymbol_kinds(t *testing.T) {
	sys := symbol.MustParse("X1-DF55")
	if !sys.IsSystem() || sys.IsWaypoint() {
		t.Errorf("X1-DF55: IsSystem=%v IsWaypoint=%v", sys.IsSystem(), sys.IsWaypoint())
	}
	sector := symbol.MustParse("X1")
	if sector.IsSystem() || sector.SystemSymbol() != "" {
		t.Errorf("X1: IsSystem=%v SystemSymbol=%q", sector.IsSystem(), sector.SystemSymbol())
	}
}

func TestMustParse_panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	symbol.MustParse("not a symbol")
}
