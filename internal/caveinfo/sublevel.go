package caveinfo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Sublevel names one floor of one cave, e.g. "SCx7" or "SH-2".
type Sublevel struct {
	Cave string
	// Floor is 1-indexed, as shown to players.
	Floor uint32
}

var sublevelPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z_]*?)-?([0-9]+)$`)

// ParseSublevel parses a sublevel identifier. The cave prefix and floor number
// may be separated by a hyphen.
//
// Postcondition: returns an error wrapping ErrInvalidSublevel if s is malformed or the floor is 0.
func ParseSublevel(s string) (Sublevel, error) {
	m := sublevelPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Sublevel{}, fmt.Errorf("%w: %q", ErrInvalidSublevel, s)
	}
	floor, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil || floor == 0 {
		return Sublevel{}, fmt.Errorf("%w: %q: floor must be a positive number", ErrInvalidSublevel, s)
	}
	return Sublevel{Cave: m[1], Floor: uint32(floor)}, nil
}

// Key returns the normalized lookup key, e.g. "scx7".
func (s Sublevel) Key() string {
	return strings.ToLower(fmt.Sprintf("%s%d", s.Cave, s.Floor))
}

// String returns the display form, e.g. "SCx7".
func (s Sublevel) String() string {
	return fmt.Sprintf("%s%d", s.Cave, s.Floor)
}

// FloorKey returns the normalized lookup key for f.
//
// Postcondition: returns ErrNoCaveName when f has no cave name.
func FloorKey(f *FloorInfo) (string, error) {
	name, err := f.Name()
	if err != nil {
		return "", err
	}
	return strings.ToLower(name), nil
}
