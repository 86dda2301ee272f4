package caveinfo

import "fmt"

// Prepare returns a copy of floor ready for layout generation: door links are
// computed on each base unit, then the units are expanded into all rotations
// and ordered with SortCaveUnits.
//
// Precondition: every unit in floor is at rotation 0.
// Postcondition: floor is unchanged; len(result.CaveUnits) == 4*len(floor.CaveUnits).
func Prepare(floor *FloorInfo) *FloorInfo {
	out := floor.Clone()
	for _, u := range out.CaveUnits {
		ComputeDoorLinks(u)
	}
	out.CaveUnits = SortCaveUnits(ExpandRotations(out.CaveUnits))
	return out
}

// UnitKey identifies one rotation of one unit in an ordering.
type UnitKey struct {
	UnitFolderName string
	Rotation       uint16
}

// String returns "folder@rotation".
func (k UnitKey) String() string {
	return fmt.Sprintf("%s@%d", k.UnitFolderName, k.Rotation)
}

// Keys returns the UnitKey of each unit, in order.
func Keys(units []*CaveUnit) []UnitKey {
	keys := make([]UnitKey, len(units))
	for i, u := range units {
		keys[i] = UnitKey{UnitFolderName: u.UnitFolderName, Rotation: u.Rotation}
	}
	return keys
}

// OrderingMismatchError reports the first position at which a unit ordering
// diverges from a recorded reference.
type OrderingMismatchError struct {
	Position int
	Want     UnitKey
	Got      UnitKey
	WantLen  int
	GotLen   int
}

func (e *OrderingMismatchError) Error() string {
	if e.Position >= e.WantLen || e.Position >= e.GotLen {
		return fmt.Sprintf("ordering length mismatch: want %d units, got %d", e.WantLen, e.GotLen)
	}
	return fmt.Sprintf("ordering diverges at position %d: want %s, got %s", e.Position, e.Want, e.Got)
}

// VerifyOrdering compares got against the reference ordering want.
//
// Postcondition: returns nil iff both have the same length and identical keys
// at every position; otherwise an *OrderingMismatchError.
func VerifyOrdering(want []UnitKey, got []*CaveUnit) error {
	gotKeys := Keys(got)
	n := min(len(want), len(gotKeys))
	for i := 0; i < n; i++ {
		if want[i] != gotKeys[i] {
			return &OrderingMismatchError{Position: i, Want: want[i], Got: gotKeys[i], WantLen: len(want), GotLen: len(gotKeys)}
		}
	}
	if len(want) != len(gotKeys) {
		return &OrderingMismatchError{Position: n, WantLen: len(want), GotLen: len(gotKeys)}
	}
	return nil
}
