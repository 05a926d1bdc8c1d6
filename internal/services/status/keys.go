package status

// Localization keys for creature AI states. The keys are the original
// string table ids; the text rendering collaborator resolves them to
// localized display text.
const (
	TextIdle         = "2599"
	TextWandering    = "2628"
	TextDead         = "2598"
	TextFleeing      = "2658"
	TextFighting     = "2651"
	TextBeingDragged = "2655" // dragged and unconscious share one key
	TextStunned      = "2597"
	TextFollowing    = "2675"
	TextImprisoned   = "2674"
	TextTortured     = "2635"
	TextSleeping     = "2672"
	TextRecuperating = "2667"
)

// Localization keys for task tooltips
const (
	TextClaimingLair     = "2627"
	TextCapturing        = "2621"
	TextCarryingCreature = "2619" // jail and lair escorts share one key
	TextCarryingGold     = "2786"
	TextClaimingRoom     = "2602"
	TextClaimingTile     = "2601"
	TextClaimingWall     = "2603"
	TextDiggingGold      = "2605"
	TextDigging          = "2600"
	TextFetchingObject   = "546"
	TextGoingToLocation  = "2670"
	TextGoingToSleep     = "2671"
	TextKillingPlayer    = "2645"
	TextRepairingWall    = "2604"
	TextRescuing         = "2617"
	TextResearching      = "2625"
)
