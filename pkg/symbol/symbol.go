// Package symbol parses SpaceTraders location symbols.
//
// Symbol format: [sector]-[system]-[waypoint]
//
// Examples:
//
//	X1                 (sector)
//	X1-DF55            (system)
//	X1-DF55-20250Z     (waypoint)
//
// The API only ever refers to locations by these strings. A waypoint symbol
// embeds the symbol of its system, which is what the /systems/{system}
// endpoints need.
package symbol

import (
	"fmt"
	"strings"
)

const sep = "-"

// Symbol is a parsed location symbol. System and Waypoint are the bare
// segments, not the joined forms.
type Symbol struct {
	Sector   string // e.g. "X1"
	System   string // e.g. "DF55"; empty for a sector symbol
	Waypoint string // e.g. "20250Z"; empty for sector and system symbols
}

// Parse parses a sector, system or waypoint symbol.
func Parse(raw string) (*Symbol, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty symbol")
	}
	parts := strings.Split(raw, sep)
	if len(parts) > 3 {
		return nil, fmt.Errorf("symbol %q has %d segments, want at most 3", raw, len(parts))
	}

	names := []string{"sector", "system", "waypoint"}
	for i, p := range parts {
		if err := validateSegment(names[i], p); err != nil {
			return nil, fmt.Errorf("symbol %q: %w", raw, err)
		}
	}

	s := &Symbol{Sector: parts[0]}
	if len(parts) > 1 {
		s.System = parts[1]
	}
	if len(parts) > 2 {
		s.Waypoint = parts[2]
	}
	return s, nil
}

// ParseWaypoint parses raw and requires it to name a waypoint.
func ParseWaypoint(raw string) (*Symbol, error) {
	s, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if !s.IsWaypoint() {
		return nil, fmt.Errorf("symbol %q is not a waypoint", raw)
	}
	return s, nil
}

// MustParse parses a symbol and panics on error. Useful in tests and init blocks.
func MustParse(raw string) *Symbol {
	s, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// SystemOf returns the system symbol containing the waypoint raw, e.g.
// "X1-DF55" for "X1-DF55-20250Z".
func SystemOf(raw string) (string, error) {
	s, err := ParseWaypoint(raw)
	if err != nil {
		return "", err
	}
	return s.SystemSymbol(), nil
}

// IsWaypoint reports whether s names a waypoint.
func (s *Symbol) IsWaypoint() bool { return s.Waypoint != "" }

// IsSystem reports whether s names a system, not one of its waypoints.
func (s *Symbol) IsSystem() bool { return s.System != "" && s.Waypoint == "" }

// SystemSymbol returns the joined system symbol, or "" for a sector.
func (s *Symbol) SystemSymbol() string {
	if s.System == "" {
		return ""
	}
	return s.Sector + sep + s.System
}

// String returns the canonical joined symbol.
func (s *Symbol) String() string {
	switch {
	case s.Waypoint != "":
		return s.SystemSymbol() + sep + s.Waypoint
	case s.System != "":
		return s.SystemSymbol()
	}
	return s.Sector
}

// validateSegment checks that a segment is non-empty upper-case alphanumeric.
func validateSegment(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", name)
	}
	for _, r := range value {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return fmt.Errorf("%s %q contains invalid characters", name, value)
		}
	}
	return nil
}
