package caveinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlCaveFile is the top-level YAML structure for cave files.
type yamlCaveFile struct {
	Cave yamlCave `yaml:"cave"`
}

// yamlCave lists a cave's floors in sublevel order.
type yamlCave struct {
	Name   string      `yaml:"name"`
	Floors []yamlFloor `yaml:"floors"`
}

type yamlFloor struct {
	MaxMainObjects      uint32     `yaml:"max_main_objects"`
	MaxTreasures        uint32     `yaml:"max_treasures"`
	MaxGates            uint32     `yaml:"max_gates"`
	NumRooms            uint32     `yaml:"num_rooms"`
	CorridorProbability float32    `yaml:"corridor_probability"`
	CapProbability      float32    `yaml:"cap_probability"`
	HasGeyser           bool       `yaml:"has_geyser"`
	ExitPlugged         bool       `yaml:"exit_plugged"`
	Units               []yamlUnit `yaml:"units"`
	Teki                []yamlTeki `yaml:"teki"`
	Items               []yamlItem `yaml:"items"`
	Gates               []yamlGate `yaml:"gates"`
	Caps                []yamlTeki `yaml:"caps"`
}

type yamlUnit struct {
	Folder      string           `yaml:"folder"`
	Width       uint16           `yaml:"width"`
	Height      uint16           `yaml:"height"`
	RoomType    int              `yaml:"room_type"`
	NumDoors    *int             `yaml:"num_doors"`
	Doors       []yamlDoor       `yaml:"doors"`
	SpawnPoints []yamlSpawnPoint `yaml:"spawn_points"`
}

type yamlDoor struct {
	Direction uint16 `yaml:"direction"`
	Offset    uint16 `yaml:"offset"`
	Waypoint  int    `yaml:"waypoint"`
}

type yamlSpawnPoint struct {
	Group  uint16  `yaml:"group"`
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Z      float32 `yaml:"z"`
	Angle  float32 `yaml:"angle"`
	Radius float32 `yaml:"radius"`
	Min    uint16  `yaml:"min"`
	Max    uint16  `yaml:"max"`
}

// yamlTeki serves both teki and cap entries.
type yamlTeki struct {
	Name        string `yaml:"name"`
	Carrying    string `yaml:"carrying"`
	Min         uint32 `yaml:"min"`
	Weight      uint32 `yaml:"weight"`
	Group       uint32 `yaml:"group"`
	SpawnMethod string `yaml:"spawn_method"`
}

type yamlItem struct {
	Name   string `yaml:"name"`
	Min    uint8  `yaml:"min"`
	Weight uint32 `yaml:"weight"`
}

type yamlGate struct {
	Health float32 `yaml:"health"`
	Weight uint32  `yaml:"weight"`
}

// LoadCaveFromFile reads and validates a single cave YAML file.
//
// Precondition: path must point to a YAML cave file.
// Postcondition: Returns one validated FloorInfo per floor, or a non-nil error.
func LoadCaveFromFile(path string) ([]*FloorInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cave file %s: %w", path, err)
	}
	return LoadCaveFromBytes(data)
}

// LoadCaveFromBytes parses and validates a cave from YAML bytes. Floors take
// their sublevel index from their position; the last floor is the final floor.
//
// Postcondition: Returns one validated FloorInfo per floor, or a non-nil error.
// A room type outside {0, 1, 2} yields an error wrapping ErrInvalidRoomType.
func LoadCaveFromBytes(data []byte) ([]*FloorInfo, error) {
	var file yamlCaveFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing cave YAML: %w", err)
	}
	if file.Cave.Name == "" {
		return nil, fmt.Errorf("cave name must not be empty")
	}
	if len(file.Cave.Floors) == 0 {
		return nil, fmt.Errorf("cave %q: must contain at least one floor", file.Cave.Name)
	}

	floors := make([]*FloorInfo, 0, len(file.Cave.Floors))
	for i, yf := range file.Cave.Floors {
		floor, err := convertYAMLFloor(file.Cave.Name, uint32(i), yf)
		if err != nil {
			return nil, fmt.Errorf("cave %q: floor %d: %w", file.Cave.Name, i+1, err)
		}
		floor.IsFinalFloor = i == len(file.Cave.Floors)-1
		if err := floor.Validate(); err != nil {
			return nil, fmt.Errorf("cave %q: floor %d: validating: %w", file.Cave.Name, i+1, err)
		}
		floors = append(floors, floor)
	}
	return floors, nil
}

// LoadCavesFromDir loads every YAML file in dir as a cave.
//
// Precondition: dir must be a valid directory path.
// Postcondition: Returns the floors of all caves or the first error encountered.
func LoadCavesFromDir(dir string) ([]*FloorInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading cave directory %s: %w", dir, err)
	}

	var floors []*FloorInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		cave, err := LoadCaveFromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("loading cave from %s: %w", name, err)
		}
		floors = append(floors, cave...)
	}

	if len(floors) == 0 {
		return nil, fmt.Errorf("no cave files found in %s", dir)
	}
	return floors, nil
}

func convertYAMLFloor(caveName string, sublevel uint32, yf yamlFloor) (*FloorInfo, error) {
	floor := &FloorInfo{
		CaveName:            caveName,
		Sublevel:            sublevel,
		MaxMainObjects:      yf.MaxMainObjects,
		MaxTreasures:        yf.MaxTreasures,
		MaxGates:            yf.MaxGates,
		NumRooms:            yf.NumRooms,
		CorridorProbability: yf.CorridorProbability,
		CapProbability:      yf.CapProbability,
		HasGeyser:           yf.HasGeyser,
		ExitPlugged:         yf.ExitPlugged,
	}

	for _, yu := range yf.Units {
		unit, err := convertYAMLUnit(yu)
		if err != nil {
			return nil, err
		}
		floor.CaveUnits = append(floor.CaveUnits, unit)
	}
	for _, yt := range yf.Teki {
		floor.TekiInfo = append(floor.TekiInfo, TekiInfo{
			InternalName:             yt.Name,
			Carrying:                 yt.Carrying,
			MinimumAmount:            yt.Min,
			FillerDistributionWeight: yt.Weight,
			Group:                    yt.Group,
			SpawnMethod:              yt.SpawnMethod,
		})
	}
	for _, yi := range yf.Items {
		floor.ItemInfo = append(floor.ItemInfo, ItemInfo{
			InternalName:             yi.Name,
			MinAmount:                yi.Min,
			FillerDistributionWeight: yi.Weight,
		})
	}
	for _, yg := range yf.Gates {
		floor.GateInfo = append(floor.GateInfo, GateInfo{
			Health:                  yg.Health,
			SpawnDistributionWeight: yg.Weight,
		})
	}
	for _, yc := range yf.Caps {
		if yc.Group > 255 {
			return nil, fmt.Errorf("cap %q: group must be 0-255, got %d", yc.Name, yc.Group)
		}
		floor.CapInfo = append(floor.CapInfo, CapInfo{
			InternalName:             yc.Name,
			Carrying:                 yc.Carrying,
			MinimumAmount:            yc.Min,
			FillerDistributionWeight: yc.Weight,
			Group:                    uint8(yc.Group),
			SpawnMethod:              yc.SpawnMethod,
		})
	}
	return floor, nil
}

func convertYAMLUnit(yu yamlUnit) (*CaveUnit, error) {
	rt, err := RoomTypeFromIndex(yu.RoomType)
	if err != nil {
		return nil, fmt.Errorf("unit %q: %w", yu.Folder, err)
	}
	unit := &CaveUnit{
		UnitFolderName: yu.Folder,
		Width:          yu.Width,
		Height:         yu.Height,
		RoomType:       rt,
		NumDoors:       len(yu.Doors),
	}
	if yu.NumDoors != nil {
		unit.NumDoors = *yu.NumDoors
	}
	for _, yd := range yu.Doors {
		unit.Doors = append(unit.Doors, Door{
			Direction:         yd.Direction,
			SideLateralOffset: yd.Offset,
			WaypointIndex:     yd.Waypoint,
		})
	}
	for _, ys := range yu.SpawnPoints {
		unit.SpawnPoints = append(unit.SpawnPoints, SpawnPoint{
			Group:        ys.Group,
			PosX:         ys.X,
			PosY:         ys.Y,
			PosZ:         ys.Z,
			AngleDegrees: ys.Angle,
			Radius:       ys.Radius,
			MinNum:       ys.Min,
			MaxNum:       ys.Max,
		})
	}
	return unit, nil
}
