package player

import (
	"github.com/keeperforge/keeper-core/internal/entities"
)

// CreatureControl tracks the creatures a player owns, by creature type
type CreatureControl struct {
	keeper *entities.Keeper
	types  map[entities.CreatureTypeID][]entities.EntityID
	count  int
}

// NewCreatureControl creates a creature control for the keeper
func NewCreatureControl(keeper *entities.Keeper) *CreatureControl {
	return &CreatureControl{
		keeper: keeper,
		types:  make(map[entities.CreatureTypeID][]entities.EntityID),
	}
}

// OnSpawn records a creature joining the player's roster
func (c *CreatureControl) OnSpawn(creatureType entities.CreatureTypeID, entityID entities.EntityID) {
	c.types[creatureType] = append(c.types[creatureType], entityID)
	c.count++
}

// OnDie removes a creature from the roster. Unknown creatures are ignored.
func (c *CreatureControl) OnDie(creatureType entities.CreatureTypeID, entityID entities.EntityID) {
	roster := c.types[creatureType]
	for i, id := range roster {
		if id == entityID {
			c.types[creatureType] = append(roster[:i], roster[i+1:]...)
			c.count--
			return
		}
	}
}

// CreatureCount returns the total roster size
func (c *CreatureControl) CreatureCount() int {
	return c.count
}

// TypeCount returns the roster size for one creature type
func (c *CreatureControl) TypeCount(creatureType entities.CreatureTypeID) int {
	return len(c.types[creatureType])
}

// Creatures returns a copy of the roster for one creature type, in
// insertion order
func (c *CreatureControl) Creatures(creatureType entities.CreatureTypeID) []entities.EntityID {
	roster := c.types[creatureType]
	out := make([]entities.EntityID, len(roster))
	copy(out, roster)
	return out
}
