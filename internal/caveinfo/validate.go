package caveinfo

import (
	"errors"
	"fmt"
)

// Validate checks floor invariants that the pre-placement steps rely on.
// The presence of a start unit is not checked here; see StartUnits.
//
// Postcondition: Returns nil if valid, or an error joining every violation.
func (f *FloorInfo) Validate() error {
	var errs []error
	if f.CorridorProbability < 0 || f.CorridorProbability > 1 {
		errs = append(errs, fmt.Errorf("corridor_probability must be in [0, 1], got %v", f.CorridorProbability))
	}
	if f.CapProbability < 0 || f.CapProbability > 1 {
		errs = append(errs, fmt.Errorf("cap_probability must be in [0, 1], got %v", f.CapProbability))
	}
	for _, u := range f.CaveUnits {
		if err := u.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Validate checks unit geometry.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (u *CaveUnit) Validate() error {
	if u.UnitFolderName == "" {
		return errors.New("unit folder name must not be empty")
	}
	if u.Width == 0 || u.Height == 0 {
		return fmt.Errorf("unit %q: dimensions must be positive, got %dx%d", u.UnitFolderName, u.Width, u.Height)
	}
	if u.Rotation > 3 {
		return fmt.Errorf("unit %q: rotation must be 0-3, got %d", u.UnitFolderName, u.Rotation)
	}
	if u.NumDoors != len(u.Doors) {
		return fmt.Errorf("unit %q: num_doors %d does not match %d doors", u.UnitFolderName, u.NumDoors, len(u.Doors))
	}
	for i, d := range u.Doors {
		if d.Direction > 3 {
			return fmt.Errorf("unit %q: door %d: direction must be 0-3, got %d", u.UnitFolderName, i, d.Direction)
		}
		side := u.Width
		if d.Direction == 1 || d.Direction == 3 {
			side = u.Height
		}
		if d.SideLateralOffset >= side {
			return fmt.Errorf("unit %q: door %d: offset %d outside side of length %d", u.UnitFolderName, i, d.SideLateralOffset, side)
		}
	}
	return nil
}
