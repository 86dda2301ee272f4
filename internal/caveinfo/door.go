package caveinfo

import (
	"fmt"
	"math"
)

// CellSize is the width of one cave grid cell, and of every door, in game units.
const CellSize = 170

// Door is an open spot on a unit's edge where another unit may be attached.
//
// Directions are 0 (up, -z), 1 (right, +x), 2 (down, +z) and 3 (left, -x).
// SideLateralOffset counts cells along the facing side: along x for directions
// 0 and 2, along z for directions 1 and 3.
type Door struct {
	Direction         uint16
	SideLateralOffset uint16
	// WaypointIndex is the index of the waypoint this door connects to.
	WaypointIndex int
	NumLinks      int
	Links         []DoorLink
}

// DoorLink is a straight line between two doors of the same unit. It may cross
// out-of-bounds space; it is not a path.
type DoorLink struct {
	Distance float32
	// DoorID is the index of the partner door within the unit.
	DoorID int
	// TekiFlag marks that a teki should spawn in the seam of the origin door.
	TekiFlag bool
}

// Facing reports whether d and other face opposite directions.
func (d Door) Facing(other Door) bool {
	diff := int(d.Direction) - int(other.Direction)
	return diff == 2 || diff == -2
}

// DoorPosition returns the effective unit-local position of door i in game
// units: the midpoint of the cell edge the door opens through, with the unit's
// top-left corner at the origin.
//
// Precondition: 0 <= i < len(u.Doors).
func (u *CaveUnit) DoorPosition(i int) (x, z float32) {
	d := u.Doors[i]
	lateral := (float32(d.SideLateralOffset) + 0.5) * CellSize
	switch d.Direction % 4 {
	case 0:
		return lateral, 0
	case 1:
		return float32(u.Width) * CellSize, lateral
	case 2:
		return lateral, float32(u.Height) * CellSize
	default:
		return 0, lateral
	}
}

// ComputeDoorLinks replaces the links of every door in u with one link per
// other door, holding the straight-line distance between the two doors.
//
// Postcondition: for every link A->B there is a link B->A with equal distance;
// every door's NumLinks == len(Links); all TekiFlags are false.
func ComputeDoorLinks(u *CaveUnit) {
	n := len(u.Doors)
	for i := range u.Doors {
		u.Doors[i].Links = make([]DoorLink, 0, max(n-1, 0))
	}
	for a := 0; a < n; a++ {
		ax, az := u.DoorPosition(a)
		for b := a + 1; b < n; b++ {
			bx, bz := u.DoorPosition(b)
			dist := float32(math.Hypot(float64(ax-bx), float64(az-bz)))
			u.Doors[a].Links = append(u.Doors[a].Links, DoorLink{Distance: dist, DoorID: b})
			u.Doors[b].Links = append(u.Doors[b].Links, DoorLink{Distance: dist, DoorID: a})
		}
	}
	for i := range u.Doors {
		u.Doors[i].NumLinks = len(u.Doors[i].Links)
	}
}

// LinkTo returns the link from door a to door b.
//
// Postcondition: ok is false when either index is out of range or no such link exists.
func (u *CaveUnit) LinkTo(a, b int) (DoorLink, bool) {
	if a < 0 || a >= len(u.Doors) {
		return DoorLink{}, false
	}
	for _, l := range u.Doors[a].Links {
		if l.DoorID == b {
			return l, true
		}
	}
	return DoorLink{}, false
}

// SetSeamTeki sets the teki flag on link l of door d. This is the only field
// placement may change after preparation; callers running generations
// concurrently must do so on a Clone.
//
// Postcondition: returns an error wrapping ErrDoorIndex if d or l is out of range.
func (u *CaveUnit) SetSeamTeki(d, l int, v bool) error {
	if d < 0 || d >= len(u.Doors) {
		return fmt.Errorf("%w: door %d of %d in %q", ErrDoorIndex, d, len(u.Doors), u.UnitFolderName)
	}
	links := u.Doors[d].Links
	if l < 0 || l >= len(links) {
		return fmt.Errorf("%w: link %d of %d on door %d in %q", ErrDoorIndex, l, len(links), d, u.UnitFolderName)
	}
	links[l].TekiFlag = v
	return nil
}

// DoorsFacing counts the doors of u facing direction dir.
func (u *CaveUnit) DoorsFacing(dir uint16) int {
	n := 0
	for _, d := range u.Doors {
		if d.Direction == dir {
			n++
		}
	}
	return n
}
