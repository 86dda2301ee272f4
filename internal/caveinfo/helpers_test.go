package caveinfo

import "pgregory.net/rapid"

// testUnit builds a unit whose door count matches its door list.
func testUnit(name string, w, h uint16, doors ...Door) *CaveUnit {
	return &CaveUnit{
		UnitFolderName: name,
		Width:          w,
		Height:         h,
		RoomType:       RoomTypeRoom,
		NumDoors:       len(doors),
		Doors:          doors,
	}
}

// withDoors builds a unit with n doors, all on side 0.
func withDoors(name string, w, h uint16, n int) *CaveUnit {
	doors := make([]Door, n)
	return testUnit(name, w, h, doors...)
}

func names(units []*CaveUnit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.UnitFolderName
	}
	return out
}

// genUnit draws a geometrically valid rotation-0 unit.
func genUnit(t *rapid.T, label string) *CaveUnit {
	w := rapid.Uint16Range(1, 6).Draw(t, label+"_w")
	h := rapid.Uint16Range(1, 6).Draw(t, label+"_h")
	n := rapid.IntRange(0, 5).Draw(t, label+"_doors")
	doors := make([]Door, n)
	for i := range doors {
		dir := rapid.Uint16Range(0, 3).Draw(t, label+"_dir")
		side := w
		if dir == 1 || dir == 3 {
			side = h
		}
		doors[i] = Door{
			Direction:         dir,
			SideLateralOffset: rapid.Uint16Range(0, side-1).Draw(t, label+"_offset"),
			WaypointIndex:     i,
		}
	}
	return testUnit(rapid.StringMatching(`unit_[a-z]{3}`).Draw(t, label+"_name"), w, h, doors...)
}

func genUnits(t *rapid.T) []*CaveUnit {
	n := rapid.IntRange(0, 12).Draw(t, "num_units")
	units := make([]*CaveUnit, n)
	for i := range units {
		units[i] = genUnit(t, "unit")
	}
	return units
}
