package caveinfo

// ExpandRotations returns every unit in all four rotations. For each input unit,
// in order, the 0, 1, 2 and 3 quarter-turn copies are emitted consecutively.
//
// Postcondition: len(result) == 4*len(units); units is not modified.
func ExpandRotations(units []*CaveUnit) []*CaveUnit {
	out := make([]*CaveUnit, 0, 4*len(units))
	for _, u := range units {
		for delta := uint16(0); delta < 4; delta++ {
			out = append(out, u.CopyAndRotateTo(delta))
		}
	}
	return out
}
