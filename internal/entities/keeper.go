package entities

// Keeper is a player's identity record
type Keeper struct {
	ID                   PlayerID `json:"id"`
	AI                   bool     `json:"ai"`
	DungeonHeartLocation *Point   `json:"dungeon_heart_location,omitempty"`
}

// SetDungeonHeartLocation records where the player's dungeon heart sits
func (k *Keeper) SetDungeonHeartLocation(p Point) {
	k.DungeonHeartLocation = &p
}
