package caveinfo

import "errors"

// ErrInvalidRoomType is returned when a room type index is outside the known set.
var ErrInvalidRoomType = errors.New("invalid room type")

// ErrInvalidSublevel is returned when a sublevel identifier cannot be parsed.
var ErrInvalidSublevel = errors.New("invalid sublevel identifier")

// ErrNoCaveName is returned when a floor has no cave name to derive a sublevel name from.
var ErrNoCaveName = errors.New("floor has no cave name")

// ErrDoorIndex is returned when a door or door link index is out of range.
var ErrDoorIndex = errors.New("door index out of range")
