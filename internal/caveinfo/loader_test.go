package caveinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCaveYAML = `
cave:
  name: SCx
  floors:
    - max_main_objects: 4
      max_treasures: 2
      max_gates: 1
      num_rooms: 3
      corridor_probability: 0.5
      cap_probability: 0.25
      has_geyser: true
      units:
        - folder: room_4x4_start
          width: 2
          height: 2
          room_type: 1
          doors:
            - direction: 0
              offset: 1
              waypoint: 0
          spawn_points:
            - group: 7
              x: 170
              z: 170
              radius: 10
              min: 1
              max: 1
        - folder: way_1x1
          width: 1
          height: 1
          room_type: 2
          doors:
            - direction: 0
            - direction: 2
              waypoint: 1
      teki:
        - name: Chappy
          carrying: bell
          min: 1
          weight: 2
          group: 0
        - name: Egg
          group: 6
          spawn_method: "$1"
      items:
        - name: coin
          min: 1
          weight: 3
      gates:
        - health: 1000
          weight: 1
      caps:
        - name: BluePom
          group: 1
    - corridor_probability: 0.1
      exit_plugged: true
      units:
        - folder: cap_1x1
          width: 1
          height: 1
          room_type: 0
          doors:
            - direction: 2
`

func TestLoadCaveFromBytes_Valid(t *testing.T) {
	floors, err := LoadCaveFromBytes([]byte(validCaveYAML))
	require.NoError(t, err)
	require.Len(t, floors, 2)

	f := floors[0]
	assert.Equal(t, "SCx", f.CaveName)
	assert.Equal(t, uint32(0), f.Sublevel)
	assert.Equal(t, uint32(4), f.MaxMainObjects)
	assert.Equal(t, uint32(3), f.NumRooms)
	assert.InDelta(t, 0.25, f.CapProbability, 1e-6)
	assert.True(t, f.HasGeyser)
	assert.False(t, f.IsFinalFloor)

	require.Len(t, f.CaveUnits, 2)
	start := f.CaveUnits[0]
	assert.Equal(t, "room_4x4_start", start.UnitFolderName)
	assert.Equal(t, RoomTypeRoom, start.RoomType)
	assert.Equal(t, 1, start.NumDoors)
	assert.Equal(t, uint16(1), start.Doors[0].SideLateralOffset)
	assert.True(t, start.HasStartSpawnPoint())
	assert.InDelta(t, 170, start.SpawnPoints[0].PosZ, 1e-6)

	hall := f.CaveUnits[1]
	assert.Equal(t, RoomTypeHallway, hall.RoomType)
	assert.Equal(t, 2, hall.NumDoors)
	assert.Equal(t, 1, hall.Doors[1].WaypointIndex)

	require.Len(t, f.TekiInfo, 2)
	assert.True(t, f.TekiInfo[0].HasCarrying())
	assert.True(t, f.TekiInfo[1].IsFalling())
	assert.Equal(t, "coin", f.ItemInfo[0].InternalName)
	assert.InDelta(t, 1000, f.GateInfo[0].Health, 1e-6)
	assert.True(t, f.CapInfo[0].IsCandypop())
	assert.Equal(t, uint8(1), f.CapInfo[0].Group)

	last := floors[1]
	assert.Equal(t, uint32(1), last.Sublevel)
	assert.True(t, last.IsFinalFloor)
	assert.True(t, last.ExitPlugged)
	assert.Equal(t, RoomTypeDeadEnd, last.CaveUnits[0].RoomType)
}

func TestLoadCaveFromBytes_InvalidRoomType(t *testing.T) {
	data := `
cave:
  name: BK
  floors:
    - units:
        - folder: weird
          width: 1
          height: 1
          room_type: 3
`
	_, err := LoadCaveFromBytes([]byte(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRoomType)
	assert.Contains(t, err.Error(), "weird")
}

func TestLoadCaveFromBytes_DoorCountMismatch(t *testing.T) {
	data := `
cave:
  name: BK
  floors:
    - units:
        - folder: liar
          width: 1
          height: 1
          room_type: 1
          num_doors: 2
          doors:
            - direction: 0
`
	_, err := LoadCaveFromBytes([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "num_doors")
}

func TestLoadCaveFromBytes_Errors(t *testing.T) {
	_, err := LoadCaveFromBytes([]byte("not: [valid yaml"))
	assert.Error(t, err)

	_, err = LoadCaveFromBytes([]byte("cave:\n  floors: []\n"))
	assert.Error(t, err)

	_, err = LoadCaveFromBytes([]byte("cave:\n  name: GK\n"))
	assert.Error(t, err)

	_, err = LoadCaveFromBytes([]byte("cave:\n  name: GK\n  floors:\n    - corridor_probability: 2\n"))
	assert.Error(t, err)
}

func TestLoadCaveFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCaveYAML), 0644))

	floors, err := LoadCaveFromFile(path)
	require.NoError(t, err)
	assert.Len(t, floors, 2)

	_, err = LoadCaveFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadCavesFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scx.yaml"), []byte(validCaveYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gk.yml"), []byte(`
cave:
  name: GK
  floors:
    - units:
        - folder: cap
          width: 1
          height: 1
          room_type: 0
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0644))

	floors, err := LoadCavesFromDir(dir)
	require.NoError(t, err)
	assert.Len(t, floors, 3)
}

func TestLoadCavesFromDir_Empty(t *testing.T) {
	_, err := LoadCavesFromDir(t.TempDir())
	assert.Error(t, err)
}
