package caveinfo

// CaveUnit is one map tile that may be placed on a sublevel.
//
// Invariant: NumDoors == len(Doors) for units built by the loader.
type CaveUnit struct {
	UnitFolderName string
	// Width and Height are in cave grid cells, not in-game units.
	Width       uint16
	Height      uint16
	RoomType    RoomType
	NumDoors    int
	Doors       []Door
	Rotation    uint16
	SpawnPoints []SpawnPoint
}

// Clone returns a structurally independent copy of u, including door links.
func (u *CaveUnit) Clone() *CaveUnit {
	out := *u
	out.Doors = make([]Door, len(u.Doors))
	for i, d := range u.Doors {
		d.Links = append([]DoorLink(nil), d.Links...)
		out.Doors[i] = d
	}
	out.SpawnPoints = append([]SpawnPoint(nil), u.SpawnPoints...)
	return &out
}

// Footprint returns the unit's area in grid cells.
func (u *CaveUnit) Footprint() int {
	return int(u.Width) * int(u.Height)
}

// CompareUnits orders units by footprint, breaking ties by door count.
// Two structurally different units may compare equal.
//
// Postcondition: returns -1, 0, or +1.
func CompareUnits(a, b *CaveUnit) int {
	sa, sb := a.Footprint(), b.Footprint()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	case a.NumDoors < b.NumDoors:
		return -1
	case a.NumDoors > b.NumDoors:
		return 1
	}
	return 0
}

// OrderEqual reports whether u and other have the same footprint and door count.
func (u *CaveUnit) OrderEqual(other *CaveUnit) bool {
	return CompareUnits(u, other) == 0
}

// HasStartSpawnPoint reports whether any spawn point is in the start group.
func (u *CaveUnit) HasStartSpawnPoint() bool {
	for _, sp := range u.SpawnPoints {
		if sp.Group == StartGroup {
			return true
		}
	}
	return false
}

// CopyAndRotateTo copies u and turns the copy by delta quarter turns.
//
// Door offsets flip against the unit's original dimensions: doors facing 0 or 2
// flip for delta 2 and 3, doors facing 1 or 3 flip for delta 1 and 2. The
// asymmetry matches the game and must not be "fixed".
//
// Precondition: delta is in [0, 3].
// Postcondition: u is unchanged; result.Rotation == (u.Rotation+delta)%4.
func (u *CaveUnit) CopyAndRotateTo(delta uint16) *CaveUnit {
	out := u.Clone()
	out.Rotation = (u.Rotation + delta) % 4
	if delta%2 == 1 {
		out.Width = u.Height
		out.Height = u.Width
	}

	for i := range out.Doors {
		door := &out.Doors[i]
		switch door.Direction {
		case 0, 2:
			if delta == 2 || delta == 3 {
				door.SideLateralOffset = u.Width - 1 - door.SideLateralOffset
			}
		case 1, 3:
			if delta == 1 || delta == 2 {
				door.SideLateralOffset = u.Height - 1 - door.SideLateralOffset
			}
		}
		door.Direction = (door.Direction + delta) % 4
	}
	return out
}
