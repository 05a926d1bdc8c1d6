package entities

// ObjectFlag is a capability flag on an object definition
type ObjectFlag uint32

// Object capability flags
const (
	ObjectFlagGold ObjectFlag = 1 << iota
	ObjectFlagSpellBook
	ObjectFlagHighlightable
	ObjectFlagCanBeSlapped
	ObjectFlagCanBePickedUp
	ObjectFlagCanBeDroppedOnAnyLand
)

// Has reports whether all the given flags are set
func (f ObjectFlag) Has(flag ObjectFlag) bool {
	return f&flag == flag
}

// ObjectDefinition is an immutable, table-driven definition of an object
// type's capabilities. Loaded once from the game rule tables.
type ObjectDefinition struct {
	ObjectID ObjectTypeID `json:"object_id"`
	Name     string       `json:"name"`
	Flags    ObjectFlag   `json:"flags"`
}

// RoomFlag is a capability flag on a room definition
type RoomFlag uint32

// Room capability flags
const (
	RoomFlagBuildable RoomFlag = 1 << iota
	RoomFlagPlaceableOnLand
	RoomFlagDungeonHeart
)

// Has reports whether all the given flags are set
func (f RoomFlag) Has(flag RoomFlag) bool {
	return f&flag == flag
}

// RoomDefinition is an immutable, table-driven definition of a room type
type RoomDefinition struct {
	RoomID RoomTypeID `json:"room_id"`
	Name   string     `json:"name"`
	Flags  RoomFlag   `json:"flags"`
}
