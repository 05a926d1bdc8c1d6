package entities

// AIState enumerates the creature AI states. Exactly one is active per
// creature at a time.
type AIState int

// Creature AI states
const (
	AIStateIdle AIState = iota
	AIStateWork
	AIStateWander
	AIStateDead
	AIStateFlee
	AIStateFight
	AIStateDragged
	AIStateUnconscious
	AIStateStunned
	AIStateFollow
	AIStateImprisoned
	AIStateTortured
	AIStateSleeping
	AIStateRecuperating
)

var aiStateNames = map[AIState]string{
	AIStateIdle:         "IDLE",
	AIStateWork:         "WORK",
	AIStateWander:       "WANDER",
	AIStateDead:         "DEAD",
	AIStateFlee:         "FLEE",
	AIStateFight:        "FIGHT",
	AIStateDragged:      "DRAGGED",
	AIStateUnconscious:  "UNCONSCIOUS",
	AIStateStunned:      "STUNNED",
	AIStateFollow:       "FOLLOW",
	AIStateImprisoned:   "IMPRISONED",
	AIStateTortured:     "TORTURED",
	AIStateSleeping:     "SLEEPING",
	AIStateRecuperating: "RECUPERATING",
}

// String returns the state name
func (s AIState) String() string {
	if name, ok := aiStateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}
