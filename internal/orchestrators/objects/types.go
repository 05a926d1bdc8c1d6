package objects

import (
	"github.com/keeperforge/keeper-core/internal/entities"
)

// Built-in object type ids, fixed by the original map format
const (
	ObjectGoldID      entities.ObjectTypeID = 1
	ObjectGoldPileID  entities.ObjectTypeID = 3
	ObjectSpellBookID entities.ObjectTypeID = 4
)

// FloorHeight is the fixed vertical coordinate objects sit at
const FloorHeight = 0.25

// CreateObjectInput defines the request for creating a world object.
// Optional payloads are pointers; absent means "not supplied".
type CreateObjectInput struct {
	ObjectID entities.ObjectTypeID
	OwnerID  entities.PlayerID
	X        int
	Y        int
	Rotation float64

	Money     *int
	SpellID   *entities.SpellID
	TriggerID *entities.TriggerID
	MaxMoney  *int
}

// CreateObjectOutput defines the response for creating a world object
type CreateObjectOutput struct {
	EntityID entities.EntityID
}

// AddRoomGoldInput defines the request for creating a room-tied gold pile
type AddRoomGoldInput struct {
	OwnerID  entities.PlayerID
	X        int
	Y        int
	Money    int
	MaxMoney int
}

// AddRoomGoldOutput defines the response for creating a room-tied gold pile
type AddRoomGoldOutput struct {
	EntityID entities.EntityID
}

// AddLooseGoldInput defines the request for creating a freestanding gold pile
type AddLooseGoldInput struct {
	OwnerID  entities.PlayerID
	X        int
	Y        int
	Money    int
	MaxMoney int
}

// AddLooseGoldOutput defines the response for creating a freestanding gold pile
type AddLooseGoldOutput struct {
	EntityID entities.EntityID
}

// AddRoomSpellBookInput defines the request for placing a spell book in a room
type AddRoomSpellBookInput struct {
	OwnerID entities.PlayerID
	X       int
	Y       int

	// SpellID is accepted but not bound at placement; see BindSpellbook
	SpellID *entities.SpellID
}

// AddRoomSpellBookOutput defines the response for placing a spell book
type AddRoomSpellBookOutput struct {
	EntityID entities.EntityID
}

// BindSpellbookInput defines the request for binding a spell to a placed book
type BindSpellbookInput struct {
	EntityID entities.EntityID
	SpellID  entities.SpellID
}

// BindSpellbookOutput defines the response for binding a spell
type BindSpellbookOutput struct {
	Success bool
}

// LoadFromMapThingsInput defines the request for batch-loading map things
type LoadFromMapThingsInput struct {
	Things []entities.Thing
}

// LoadFromMapThingsOutput defines the response for batch-loading map things
type LoadFromMapThingsOutput struct {
	EntityIDs []entities.EntityID

	// Failed counts things that could not be loaded and were skipped
	Failed int
}
