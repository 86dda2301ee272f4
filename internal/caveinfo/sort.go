package caveinfo

// SortCaveUnits orders units the way the game does before layout generation.
//
// This is not a conventional sort. Each anchor is compared against the whole
// remaining suffix; on the first unit it is greater than, the anchor is moved
// to the tail and the same index is examined again. The relative order of
// units that compare equal depends on this exact relocation sequence, so it
// must never be replaced with a library sort.
//
// Postcondition: the result is non-decreasing under CompareUnits; units is not modified.
func SortCaveUnits(units []*CaveUnit) []*CaveUnit {
	out := make([]*CaveUnit, len(units))
	copy(out, units)

	i := 0
	for i < len(out) {
		relocated := false
		for j := i + 1; j < len(out); j++ {
			if CompareUnits(out[i], out[j]) > 0 {
				anchor := out[i]
				copy(out[i:], out[i+1:])
				out[len(out)-1] = anchor
				relocated = true
				break
			}
		}
		if !relocated {
			i++
		}
	}
	return out
}
