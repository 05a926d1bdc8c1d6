package player

import (
	"github.com/keeperforge/keeper-core/internal/entities"
)

// RoomControl is the room ownership ledger: it tracks, per room type, the
// set of room instances the player owns. From its point of view a room goes
// unowned -> owned (OnBuild/OnCaptured) -> unowned (OnSold/OnCapturedByEnemy)
// and nothing else.
//
// All mutations run on the simulation goroutine; aggregate queries snapshot
// the tracked sets before iterating because a callback fired mid-iteration
// may mutate the ledger reentrantly.
type RoomControl struct {
	keeper *entities.Keeper

	// insertion-ordered set per room type
	roomsByType map[entities.RoomTypeID][]*entities.RoomInstance
	typeOrder   []entities.RoomTypeID

	roomCount    int
	portalsOpen  bool
	dungeonHeart *entities.RoomInstance

	availability          map[entities.RoomTypeID]bool
	availabilityListeners []AvailabilityListener
}

var _ RoomListener = (*RoomControl)(nil)

// NewRoomControl creates a room control for the keeper
func NewRoomControl(keeper *entities.Keeper) *RoomControl {
	return &RoomControl{
		keeper:       keeper,
		roomsByType:  make(map[entities.RoomTypeID][]*entities.RoomInstance),
		portalsOpen:  true,
		availability: make(map[entities.RoomTypeID]bool),
	}
}

// Init seeds the ledger with rooms the player already owns at game start
func (c *RoomControl) Init(rooms []*entities.RoomInstance) {
	for _, room := range rooms {
		c.OnBuild(room)
	}
}

// SetTypeAvailable records whether the room type can be built and notifies
// availability listeners. Non-buildable types are skipped entirely; they are
// tracked for count purposes but never toggled.
func (c *RoomControl) SetTypeAvailable(roomType *entities.RoomDefinition, available bool) {
	if !roomType.Flags.Has(entities.RoomFlagBuildable) {
		return
	}

	c.availability[roomType.RoomID] = available

	for _, listener := range c.availabilityListeners {
		listener.OnChange()
	}
}

// IsTypeAvailable reports whether the room type can currently be built
func (c *RoomControl) IsTypeAvailable(roomID entities.RoomTypeID) bool {
	return c.availability[roomID]
}

// OnBuild inserts the room into its type's set and bumps the aggregate
// count. The count goes up on every call, even for an instance the set
// already tracks; only set membership dedupes. The first dungeon-heart room
// observed is recorded permanently.
func (c *RoomControl) OnBuild(room *entities.RoomInstance) {
	set, ok := c.roomsByType[room.RoomID]
	if !ok {
		c.typeOrder = append(c.typeOrder, room.RoomID)
	}
	if !containsRoom(set, room) {
		c.roomsByType[room.RoomID] = append(set, room)
	}
	c.roomCount++

	if c.dungeonHeart == nil && room.DungeonHeart {
		c.dungeonHeart = room
		c.keeper.SetDungeonHeartLocation(room.Center)
	}
}

func containsRoom(set []*entities.RoomInstance, room *entities.RoomInstance) bool {
	for _, existing := range set {
		if existing == room {
			return true
		}
	}
	return false
}

// OnCaptured is indistinguishable from building, from the ledger's view
func (c *RoomControl) OnCaptured(room *entities.RoomInstance) {
	c.OnBuild(room)
}

// OnCapturedByEnemy is indistinguishable from selling, from the ledger's view
func (c *RoomControl) OnCapturedByEnemy(room *entities.RoomInstance) {
	c.OnSold(room)
}

// OnSold removes the room from its type's set if tracked. A sell event for
// a room that was never registered is a silent no-op.
func (c *RoomControl) OnSold(room *entities.RoomInstance) {
	set, ok := c.roomsByType[room.RoomID]
	if !ok {
		return
	}
	for i, existing := range set {
		if existing == room {
			c.roomsByType[room.RoomID] = append(set[:i], set[i+1:]...)
			c.roomCount--
			return
		}
	}
}

// GetTypeCount returns the aggregate room count, non-buildables included
func (c *RoomControl) GetTypeCount() int {
	return c.roomCount
}

// Rooms returns a copy of the tracked set for one room type, in insertion
// order
func (c *RoomControl) Rooms(roomID entities.RoomTypeID) []*entities.RoomInstance {
	set := c.roomsByType[roomID]
	out := make([]*entities.RoomInstance, len(set))
	copy(out, set)
	return out
}

// GetRoomSlabsCount sums the occupied tiles of every owned room
func (c *RoomControl) GetRoomSlabsCount() int {
	count := 0
	types := make([]entities.RoomTypeID, len(c.typeOrder))
	copy(types, c.typeOrder)
	for _, roomID := range types {
		count += c.GetRoomSlabsCountByType(roomID)
	}
	return count
}

// GetRoomSlabsCountByType sums the occupied tiles of the owned rooms of one
// type
func (c *RoomControl) GetRoomSlabsCountByType(roomID entities.RoomTypeID) int {
	count := 0
	for _, room := range c.Rooms(roomID) {
		count += room.SlabCount()
	}
	return count
}

// IsPortalsOpen reports whether the player's portals admit creatures
func (c *RoomControl) IsPortalsOpen() bool {
	return c.portalsOpen
}

// SetPortalsOpen toggles the portal latch
func (c *RoomControl) SetPortalsOpen(open bool) {
	c.portalsOpen = open
}

// GetDungeonHeart returns the player's dungeon heart, or false if none has
// been observed yet
func (c *RoomControl) GetDungeonHeart() (*entities.RoomInstance, bool) {
	if c.dungeonHeart == nil {
		return nil, false
	}
	return c.dungeonHeart, true
}

// AddAvailabilityListener registers a listener for room availability changes
func (c *RoomControl) AddAvailabilityListener(listener AvailabilityListener) {
	c.availabilityListeners = append(c.availabilityListeners, listener)
}
