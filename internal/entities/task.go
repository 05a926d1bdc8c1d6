package entities

// TaskType enumerates the work assignments a creature can hold
type TaskType int

// Task types
const (
	TaskClaimLair TaskType = iota
	TaskCaptureEnemyCreature
	TaskCarryCreatureToJail
	TaskCarryCreatureToLair
	TaskCarryGoldToTreasury
	TaskClaimRoom
	TaskClaimTile
	TaskClaimWall
	TaskDigTile
	TaskFetchObject
	TaskGoToLocation
	TaskGoToSleep
	TaskKillPlayer
	TaskRepairWall
	TaskRescueCreature
	TaskResearchSpell
)

var taskTypeNames = map[TaskType]string{
	TaskClaimLair:            "CLAIM_LAIR",
	TaskCaptureEnemyCreature: "CAPTURE_ENEMY_CREATURE",
	TaskCarryCreatureToJail:  "CARRY_CREATURE_TO_JAIL",
	TaskCarryCreatureToLair:  "CARRY_CREATURE_TO_LAIR",
	TaskCarryGoldToTreasury:  "CARRY_GOLD_TO_TREASURY",
	TaskClaimRoom:            "CLAIM_ROOM",
	TaskClaimTile:            "CLAIM_TILE",
	TaskClaimWall:            "CLAIM_WALL",
	TaskDigTile:              "DIG_TILE",
	TaskFetchObject:          "FETCH_OBJECT",
	TaskGoToLocation:         "GO_TO_LOCATION",
	TaskGoToSleep:            "GO_TO_SLEEP",
	TaskKillPlayer:           "KILL_PLAYER",
	TaskRepairWall:           "REPAIR_WALL",
	TaskRescueCreature:       "RESCUE_CREATURE",
	TaskResearchSpell:        "RESEARCH_SPELL",
}

// String returns the task type name
func (t TaskType) String() string {
	if name, ok := taskTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}
