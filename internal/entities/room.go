package entities

// Point is a tile coordinate
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// RoomInstance is a placed room: a set of tile coordinates ("slabs") forming
// one functional room, owned by a single player at a time.
type RoomInstance struct {
	ID           string     `json:"id"`
	RoomID       RoomTypeID `json:"room_id"`
	Coordinates  []Point    `json:"coordinates"`
	Center       Point      `json:"center"`
	DungeonHeart bool       `json:"dungeon_heart"`
}

// SlabCount returns the number of tiles the room occupies
func (r *RoomInstance) SlabCount() int {
	return len(r.Coordinates)
}
