// Package entities provides core data structures for the simulation core.
package entities

// EntityID identifies an entity in the entity-component store. An entity has
// no inherent type; its behavior is the union of its attached components.
type EntityID int64

// PlayerID identifies a player (keeper)
type PlayerID int16

// Reserved player ids. The good and neutral factions never accumulate or
// spend mana.
const (
	GoodPlayerID    PlayerID = 1
	NeutralPlayerID PlayerID = 2
	Keeper1ID       PlayerID = 3
)

// ObjectTypeID identifies an object type in the game rule tables
type ObjectTypeID int16

// RoomTypeID identifies a room type in the game rule tables
type RoomTypeID int16

// SpellID identifies a keeper spell
type SpellID int16

// TriggerID references a scripted trigger
type TriggerID int32

// CreatureTypeID identifies a creature type in the game rule tables
type CreatureTypeID int16
