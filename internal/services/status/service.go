// Package status resolves a creature's AI state and active task into the
// localization key the tooltip renderer shows. Pure read path, invoked on
// every UI refresh; it never errors on missing data.
package status

//go:generate mockgen -destination=mock/mock_service.go -package=statusmock github.com/keeperforge/keeper-core/internal/services/status Service,MapInformation

import (
	"context"

	"github.com/keeperforge/keeper-core/internal/engine"
	"github.com/keeperforge/keeper-core/internal/entities"
	"github.com/keeperforge/keeper-core/internal/errors"
)

// MapInformation is the world-map collaborator. Tile gold is queried at
// resolution time, never cached.
type MapInformation interface {
	// TileGold returns the gold remaining in the tile at p
	TileGold(p entities.Point) int
}

// Service defines the status text resolution interface
type Service interface {
	// ResolveStatusText maps the creature's AI state and task to a
	// localization key. Missing components resolve to empty text.
	ResolveStatusText(ctx context.Context, input *ResolveStatusTextInput) (*ResolveStatusTextOutput, error)
}

// ResolveStatusTextInput defines the request for resolving status text
type ResolveStatusTextInput struct {
	EntityID entities.EntityID
}

// ResolveStatusTextOutput defines the response for resolving status text
type ResolveStatusTextOutput struct {
	TextKey string
}

// Config holds the dependencies for the status service
type Config struct {
	EntityStore engine.EntityStore
	MapInfo     MapInformation
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EntityStore == nil {
		vb.RequiredField("EntityStore")
	}
	if c.MapInfo == nil {
		vb.RequiredField("MapInfo")
	}

	return vb.Build()
}

type service struct {
	store   engine.EntityStore
	mapInfo MapInformation
}

// NewService creates a new status service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		store:   cfg.EntityStore,
		mapInfo: cfg.MapInfo,
	}, nil
}

// ResolveStatusText maps the creature's AI state and task to a localization
// key. This runs concurrently with simulation mutations; every component
// fetch tolerates the component having vanished since the last one.
func (s *service) ResolveStatusText(ctx context.Context, input *ResolveStatusTextInput) (*ResolveStatusTextOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ai, ok, err := engine.Get[entities.CreatureAI](ctx, s.store, input.EntityID)
	if err != nil || !ok {
		// No behavior yet (mid-creation) or a store hiccup; the tooltip
		// just stays empty
		return &ResolveStatusTextOutput{}, nil
	}

	return &ResolveStatusTextOutput{TextKey: s.statusText(ctx, input.EntityID, ai.State)}, nil
}

func (s *service) statusText(ctx context.Context, entityID entities.EntityID, state entities.AIState) string {
	switch state {
	case entities.AIStateIdle:
		return TextIdle
	case entities.AIStateWork:
		task, ok, _ := engine.Get[entities.TaskComponent](ctx, s.store, entityID)
		if ok {
			return s.taskTooltip(task)
		}
		// A working creature without a task shows the wander text
		fallthrough
	case entities.AIStateWander:
		return TextWandering
	case entities.AIStateDead:
		return TextDead
	case entities.AIStateFlee:
		return TextFleeing
	case entities.AIStateFight:
		return TextFighting
	case entities.AIStateDragged, entities.AIStateUnconscious:
		return TextBeingDragged
	case entities.AIStateStunned:
		return TextStunned
	case entities.AIStateFollow:
		return TextFollowing
	case entities.AIStateImprisoned:
		return TextImprisoned
	case entities.AIStateTortured:
		return TextTortured
	case entities.AIStateSleeping:
		return TextSleeping
	case entities.AIStateRecuperating:
		return TextRecuperating
	}

	return ""
}

func (s *service) taskTooltip(task *entities.TaskComponent) string {
	switch task.Type {
	case entities.TaskClaimLair:
		return TextClaimingLair
	case entities.TaskCaptureEnemyCreature:
		return TextCapturing
	case entities.TaskCarryCreatureToJail, entities.TaskCarryCreatureToLair:
		return TextCarryingCreature
	case entities.TaskCarryGoldToTreasury:
		return TextCarryingGold
	case entities.TaskClaimRoom:
		return TextClaimingRoom
	case entities.TaskClaimTile:
		return TextClaimingTile
	case entities.TaskClaimWall:
		return TextClaimingWall
	case entities.TaskDigTile:
		if s.mapInfo.TileGold(task.TargetLocation) > 0 {
			return TextDiggingGold
		}
		return TextDigging
	case entities.TaskFetchObject:
		return TextFetchingObject
	case entities.TaskGoToLocation:
		return TextGoingToLocation
	case entities.TaskGoToSleep:
		return TextGoingToSleep
	case entities.TaskKillPlayer:
		return TextKillingPlayer
	case entities.TaskRepairWall:
		return TextRepairingWall
	case entities.TaskRescueCreature:
		return TextRescuing
	case entities.TaskResearchSpell:
		return TextResearching
	}

	// Unrecognized task types render nothing; the task taxonomy grows
	// elsewhere in the system
	return ""
}
