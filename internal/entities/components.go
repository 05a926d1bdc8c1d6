package entities

// ObjectType tags an entity with the object type it was created from
type ObjectType struct {
	ObjectID ObjectTypeID
}

// Owner holds the owning player of an entity. Set once at creation; changed
// only by explicit ownership-transfer operations in collaborating systems.
type Owner struct {
	OwnerID PlayerID
}

// Position holds an entity's rotation and continuous world coordinate.
// Tile coordinates are converted to tile-centered coordinates with a fixed
// floor height at creation time and never renormalized afterwards.
type Position struct {
	Rotation float64
	X        float64
	Y        float64
	Z        float64
}

// Gold holds a monetary amount and its capacity. Amount never exceeds
// MaxGold; keeping it so is the hauling systems' concern.
type Gold struct {
	Gold    int
	MaxGold int
}

// Spellbook references the spell bound to a spell book object. SpellID is
// nil for a book placed by the map but not yet assigned.
type Spellbook struct {
	SpellID *SpellID
}

// Interaction holds the UI interaction capabilities of an object, copied
// from its definition flags at creation
type Interaction struct {
	Highlightable      bool
	Slappable          bool
	PickUpable         bool
	DroppableOnAnyLand bool
}

// Trigger references the scripted trigger attached to an entity
type Trigger struct {
	TriggerID TriggerID
}

// ObjectViewState carries the presentation state consumed by the rendering
// collaborator. Opaque to the simulation beyond the type id.
type ObjectViewState struct {
	ObjectID ObjectTypeID
	State    string
}

// CreatureAI holds the creature's current AI state. Transitions are driven
// by the AI engine; the core only reads the value.
type CreatureAI struct {
	State AIState
}

// TaskComponent is the active assignment of a working creature. Present only
// while the creature is in AIStateWork.
type TaskComponent struct {
	Type           TaskType
	TargetLocation Point
}
