package caveinfo

import (
	"fmt"
	"iter"

	"github.com/zyedidia/generic/mapset"
)

// TekiGroup yields every teki in spawn group group, in declaration order.
// The sequence is lazy and may be ranged over any number of times.
func (f *FloorInfo) TekiGroup(group uint32) iter.Seq[*TekiInfo] {
	return func(yield func(*TekiInfo) bool) {
		for i := range f.TekiInfo {
			if f.TekiInfo[i].Group != group {
				continue
			}
			if !yield(&f.TekiInfo[i]) {
				return
			}
		}
	}
}

// TekiGroups returns the set of spawn groups used by at least one teki.
func (f *FloorInfo) TekiGroups() mapset.Set[uint32] {
	groups := mapset.New[uint32]()
	for _, t := range f.TekiInfo {
		groups.Put(t.Group)
	}
	return groups
}

// MaxNumDoorsSingleUnit returns the highest door count of any unit on the floor.
//
// Postcondition: returns 0 when the floor has no units.
func (f *FloorInfo) MaxNumDoorsSingleUnit() int {
	best := 0
	for _, u := range f.CaveUnits {
		best = max(best, u.NumDoors)
	}
	return best
}

// StartUnits yields the units that carry a start spawn point.
func (f *FloorInfo) StartUnits() iter.Seq[*CaveUnit] {
	return func(yield func(*CaveUnit) bool) {
		for _, u := range f.CaveUnits {
			if u.HasStartSpawnPoint() && !yield(u) {
				return
			}
		}
	}
}

// UnitsOfType yields the units classified as rt.
func (f *FloorInfo) UnitsOfType(rt RoomType) iter.Seq[*CaveUnit] {
	return func(yield func(*CaveUnit) bool) {
		for _, u := range f.CaveUnits {
			if u.RoomType == rt && !yield(u) {
				return
			}
		}
	}
}

// Name returns the human-readable sublevel name, e.g. "SCx7".
//
// Postcondition: returns ErrNoCaveName when CaveName is empty.
func (f *FloorInfo) Name() (string, error) {
	if f.CaveName == "" {
		return "", fmt.Errorf("%w (sublevel index %d)", ErrNoCaveName, f.Sublevel)
	}
	return fmt.Sprintf("%s%d", f.CaveName, f.Sublevel+1), nil
}
