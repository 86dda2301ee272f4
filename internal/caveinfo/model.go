// Package caveinfo models the generation parameters of a cave sublevel and the
// deterministic pre-placement steps applied to them before layout generation:
// unit ordering, rotation expansion, and door linking.
package caveinfo

import (
	"strings"
)

// StartGroup is the spawn group reserved for the ship/start spawn point.
const StartGroup = 7

// FloorInfo holds everything required to generate one sublevel: the floor
// parameters plus every teki, item, gate, and cap definition that applies to it.
type FloorInfo struct {
	// CaveName is not part of the generation parameters. Empty means unknown.
	CaveName string
	// Sublevel is 0-indexed.
	Sublevel       uint32
	MaxMainObjects uint32
	MaxTreasures   uint32
	MaxGates       uint32
	// NumRooms excludes corridors and caps/alcoves.
	NumRooms uint32
	// CorridorProbability is in [0, 1]; a relative corridor:room scale.
	CorridorProbability float32
	// CapProbability is in [0, 1]; chance of a cap instead of an alcove.
	CapProbability float32
	HasGeyser      bool
	ExitPlugged    bool
	CaveUnits      []*CaveUnit
	TekiInfo       []TekiInfo
	ItemInfo       []ItemInfo
	GateInfo       []GateInfo
	CapInfo        []CapInfo
	IsFinalFloor   bool
}

// Clone returns a deep copy of f. Units are cloned individually.
//
// Postcondition: mutating the result never affects f.
func (f *FloorInfo) Clone() *FloorInfo {
	out := *f
	out.CaveUnits = make([]*CaveUnit, len(f.CaveUnits))
	for i, u := range f.CaveUnits {
		out.CaveUnits[i] = u.Clone()
	}
	out.TekiInfo = append([]TekiInfo(nil), f.TekiInfo...)
	out.ItemInfo = append([]ItemInfo(nil), f.ItemInfo...)
	out.GateInfo = append([]GateInfo(nil), f.GateInfo...)
	out.CapInfo = append([]CapInfo(nil), f.CapInfo...)
	return &out
}

// TekiInfo defines an enemy, hazard, plant, or other non-treasure object.
// Treasures carried by an enemy are declared here through Carrying.
type TekiInfo struct {
	InternalName string
	// Carrying is the held object's internal name; empty when nothing is held.
	Carrying                 string
	MinimumAmount            uint32
	FillerDistributionWeight uint32
	// Group selects the spawn point category this teki may occupy.
	Group uint32
	// SpawnMethod is empty for grounded teki.
	SpawnMethod string
}

// HasCarrying reports whether this teki holds a treasure.
func (t TekiInfo) HasCarrying() bool { return t.Carrying != "" }

// IsFalling reports whether this teki uses a falling spawn method.
func (t TekiInfo) IsFalling() bool { return t.SpawnMethod != "" }

// ItemInfo defines a loose treasure, i.e. one not held by a teki.
type ItemInfo struct {
	InternalName             string
	MinAmount                uint8
	FillerDistributionWeight uint32
}

// GateInfo defines a gate.
type GateInfo struct {
	Health                  float32
	SpawnDistributionWeight uint32
}

// CapInfo defines objects spawned in alcove spawn points. Unlike TekiInfo,
// Group controls the amount spawned rather than where; the location is always
// the single spawn point of the enclosing dead end.
type CapInfo struct {
	InternalName             string
	Carrying                 string
	MinimumAmount            uint32
	FillerDistributionWeight uint32
	Group                    uint8
	SpawnMethod              string
}

// candypopMarker identifies Candypop Buds by internal name.
const candypopMarker = "pom"

// IsCandypop reports whether this cap teki is a Candypop Bud, which receives
// special treatment for falling cap teki and gate spawning.
func (c CapInfo) IsCandypop() bool {
	return strings.Contains(strings.ToLower(c.InternalName), candypopMarker)
}

// IsFalling reports whether this cap teki falls. Every spawn method except
// the empty one is a falling method.
func (c CapInfo) IsFalling() bool { return c.SpawnMethod != "" }

// SpawnPoint is a location inside a unit where objects may be placed.
// Positions are relative to the owning unit's origin, not global.
type SpawnPoint struct {
	Group        uint16
	PosX         float32
	PosY         float32
	PosZ         float32
	AngleDegrees float32
	Radius       float32
	MinNum       uint16
	MaxNum       uint16
}
