package sublevel

import "github.com/cory-johannsen/cavegen/internal/caveinfo"

// Source produces the floors a Registry serves.
type Source interface {
	// Load returns every known floor. Each must carry a cave name.
	Load() ([]*caveinfo.FloorInfo, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() ([]*caveinfo.FloorInfo, error)

// Load calls f.
func (f SourceFunc) Load() ([]*caveinfo.FloorInfo, error) { return f() }

// DirSource loads every cave YAML file in a directory.
type DirSource struct {
	Dir string
}

// Load reads all caves in s.Dir.
//
// Precondition: s.Dir must be a readable directory.
// Postcondition: Returns the floors of every cave, or a non-nil error.
func (s DirSource) Load() ([]*caveinfo.FloorInfo, error) {
	return caveinfo.LoadCavesFromDir(s.Dir)
}
