package caveinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDoor_Facing(t *testing.T) {
	assert.True(t, Door{Direction: 0}.Facing(Door{Direction: 2}))
	assert.True(t, Door{Direction: 3}.Facing(Door{Direction: 1}))
	assert.False(t, Door{Direction: 0}.Facing(Door{Direction: 1}))
	assert.False(t, Door{Direction: 0}.Facing(Door{Direction: 3}))
	assert.False(t, Door{Direction: 2}.Facing(Door{Direction: 2}))
}

func TestPropertyFacingSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := Door{Direction: rapid.Uint16Range(0, 3).Draw(t, "a")}
		b := Door{Direction: rapid.Uint16Range(0, 3).Draw(t, "b")}
		if a.Facing(b) != b.Facing(a) {
			t.Fatalf("Facing not symmetric for %d and %d", a.Direction, b.Direction)
		}
		if a.Direction == b.Direction && a.Facing(b) {
			t.Fatalf("door facing itself at direction %d", a.Direction)
		}
	})
}

func TestDoorPosition(t *testing.T) {
	u := testUnit("u", 2, 3,
		Door{Direction: 0, SideLateralOffset: 1},
		Door{Direction: 1, SideLateralOffset: 2},
		Door{Direction: 2, SideLateralOffset: 0},
		Door{Direction: 3, SideLateralOffset: 0},
	)
	cases := []struct{ x, z float32 }{
		{1.5 * CellSize, 0},
		{2 * CellSize, 2.5 * CellSize},
		{0.5 * CellSize, 3 * CellSize},
		{0, 0.5 * CellSize},
	}
	for i, want := range cases {
		x, z := u.DoorPosition(i)
		assert.InDelta(t, want.x, x, 1e-3, "door %d x", i)
		assert.InDelta(t, want.z, z, 1e-3, "door %d z", i)
	}
}

func TestComputeDoorLinks_Distances(t *testing.T) {
	u := testUnit("u", 2, 2,
		Door{Direction: 0, SideLateralOffset: 0},
		Door{Direction: 2, SideLateralOffset: 0},
		Door{Direction: 1, SideLateralOffset: 1},
	)
	ComputeDoorLinks(u)

	for _, d := range u.Doors {
		assert.Equal(t, 2, d.NumLinks)
		assert.Len(t, d.Links, 2)
	}

	l, ok := u.LinkTo(0, 1)
	require.True(t, ok)
	assert.InDelta(t, 340, l.Distance, 1e-3)
	assert.Equal(t, 1, l.DoorID)
	assert.False(t, l.TekiFlag)

	l, ok = u.LinkTo(0, 2)
	require.True(t, ok)
	assert.InDelta(t, 360.624, l.Distance, 1e-2)

	_, ok = u.LinkTo(0, 0)
	assert.False(t, ok, "doors never link to themselves")
	_, ok = u.LinkTo(5, 0)
	assert.False(t, ok)
}

func TestComputeDoorLinks_SingleDoor(t *testing.T) {
	u := withDoors("cap", 1, 1, 1)
	ComputeDoorLinks(u)
	assert.Empty(t, u.Doors[0].Links)
	assert.Equal(t, 0, u.Doors[0].NumLinks)
}

func TestPropertyDoorLinksSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := genUnit(t, "u")
		ComputeDoorLinks(u)
		for a, door := range u.Doors {
			if len(door.Links) != len(u.Doors)-1 {
				t.Fatalf("door %d has %d links, want %d", a, len(door.Links), len(u.Doors)-1)
			}
			for _, l := range door.Links {
				back, ok := u.LinkTo(l.DoorID, a)
				if !ok {
					t.Fatalf("no link back from %d to %d", l.DoorID, a)
				}
				if back.Distance != l.Distance {
					t.Fatalf("link %d->%d is %v but %d->%d is %v", a, l.DoorID, l.Distance, l.DoorID, a, back.Distance)
				}
			}
		}
	})
}

func TestSetSeamTeki(t *testing.T) {
	u := testUnit("u", 2, 2, Door{Direction: 0}, Door{Direction: 2})
	ComputeDoorLinks(u)

	require.NoError(t, u.SetSeamTeki(1, 0, true))
	assert.True(t, u.Doors[1].Links[0].TekiFlag)
	assert.False(t, u.Doors[0].Links[0].TekiFlag)

	assert.ErrorIs(t, u.SetSeamTeki(2, 0, true), ErrDoorIndex)
	assert.ErrorIs(t, u.SetSeamTeki(0, 1, true), ErrDoorIndex)
	assert.ErrorIs(t, u.SetSeamTeki(-1, 0, true), ErrDoorIndex)
}

func TestSetSeamTeki_OnCloneLeavesSharedUnit(t *testing.T) {
	u := testUnit("u", 2, 2, Door{Direction: 0}, Door{Direction: 2})
	ComputeDoorLinks(u)
	c := u.Clone()
	require.NoError(t, c.SetSeamTeki(0, 0, true))
	assert.False(t, u.Doors[0].Links[0].TekiFlag)
}

func TestDoorsFacing(t *testing.T) {
	u := testUnit("u", 3, 3, Door{Direction: 0}, Door{Direction: 0, SideLateralOffset: 2}, Door{Direction: 3})
	assert.Equal(t, 2, u.DoorsFacing(0))
	assert.Equal(t, 1, u.DoorsFacing(3))
	assert.Equal(t, 0, u.DoorsFacing(1))
}
