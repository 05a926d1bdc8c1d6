package player

import (
	"github.com/keeperforge/keeper-core/internal/entities"
)

// Listener receives player resource change notifications
type Listener interface {
	// OnGoldChange fires when the player's gold total changes
	OnGoldChange(playerID entities.PlayerID, gold int)

	// OnManaChange fires when the player's mana total changes
	OnManaChange(playerID entities.PlayerID, mana int, manaLoose int, manaGain int)
}

// RoomListener receives room ownership change events from the world layer
type RoomListener interface {
	// OnBuild fires when the player builds a room
	OnBuild(room *entities.RoomInstance)

	// OnCaptured fires when the player captures an enemy room
	OnCaptured(room *entities.RoomInstance)

	// OnCapturedByEnemy fires when an enemy captures the player's room
	OnCapturedByEnemy(room *entities.RoomInstance)

	// OnSold fires when the player sells a room
	OnSold(room *entities.RoomInstance)
}

// AvailabilityListener gets notified about room availability changes. There
// is no payload; listeners re-query the state they care about.
type AvailabilityListener interface {
	OnChange()
}
