package entities

// Thing is a map-authored placement. The map file holds a mixed list of
// things; each consumer filters to the kinds it loads.
type Thing interface {
	thing()
}

// ObjectThing is a map-authored object placement
type ObjectThing struct {
	ObjectID      ObjectTypeID `json:"object_id" yaml:"object_id"`
	PlayerID      PlayerID     `json:"player_id" yaml:"player_id"`
	X             int          `json:"x" yaml:"x"`
	Y             int          `json:"y" yaml:"y"`
	MoneyAmount   int          `json:"money_amount" yaml:"money_amount"`
	KeeperSpellID *SpellID     `json:"keeper_spell_id,omitempty" yaml:"keeper_spell_id,omitempty"`
	TriggerID     *TriggerID   `json:"trigger_id,omitempty" yaml:"trigger_id,omitempty"`
}

func (ObjectThing) thing() {}

// CreatureThing is a map-authored creature placement. Loaded by the creature
// spawning collaborator, not by this core.
type CreatureThing struct {
	CreatureID CreatureTypeID `json:"creature_id" yaml:"creature_id"`
	PlayerID   PlayerID       `json:"player_id" yaml:"player_id"`
	X          int            `json:"x" yaml:"x"`
	Y          int            `json:"y" yaml:"y"`
}

func (CreatureThing) thing() {}
