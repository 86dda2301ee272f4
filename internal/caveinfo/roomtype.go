package caveinfo

import "fmt"

// RoomType classifies a cave unit.
type RoomType int

// Room types, numbered as in cave unit definition files.
const (
	RoomTypeDeadEnd RoomType = 0
	RoomTypeRoom    RoomType = 1
	RoomTypeHallway RoomType = 2
)

// RoomTypeFromIndex converts a file-encoded room type.
//
// Postcondition: returns an error wrapping ErrInvalidRoomType for any index outside {0, 1, 2}.
func RoomTypeFromIndex(index int) (RoomType, error) {
	switch RoomType(index) {
	case RoomTypeDeadEnd, RoomTypeRoom, RoomTypeHallway:
		return RoomType(index), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidRoomType, index)
}

// String returns the room type name.
func (r RoomType) String() string {
	switch r {
	case RoomTypeDeadEnd:
		return "dead_end"
	case RoomTypeRoom:
		return "room"
	case RoomTypeHallway:
		return "hallway"
	default:
		return fmt.Sprintf("room_type(%d)", int(r))
	}
}
