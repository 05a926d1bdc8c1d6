// Package objects implements the object lifecycle orchestrator: it turns a
// (type id, owner, position, payload) tuple into a fully composed entity.
package objects

//go:generate mockgen -destination=mock/mock_service.go -package=objectsmock github.com/keeperforge/keeper-core/internal/orchestrators/objects Service

import (
	"context"
	"log/slog"

	"github.com/keeperforge/keeper-core/internal/config"
	"github.com/keeperforge/keeper-core/internal/engine"
	"github.com/keeperforge/keeper-core/internal/entities"
	"github.com/keeperforge/keeper-core/internal/errors"
	"github.com/keeperforge/keeper-core/internal/repositories/rules"
)

// Service defines the interface for object lifecycle operations
type Service interface {
	// CreateObject creates a world object entity with the components its
	// definition calls for
	CreateObject(ctx context.Context, input *CreateObjectInput) (*CreateObjectOutput, error)

	// AddRoomGold creates a room-tied gold pile
	AddRoomGold(ctx context.Context, input *AddRoomGoldInput) (*AddRoomGoldOutput, error)

	// AddLooseGold creates a freestanding gold pile
	AddLooseGold(ctx context.Context, input *AddLooseGoldInput) (*AddLooseGoldOutput, error)

	// AddRoomSpellBook places a spell book object in a room
	AddRoomSpellBook(ctx context.Context, input *AddRoomSpellBookInput) (*AddRoomSpellBookOutput, error)

	// BindSpellbook binds a spell to an already placed spell book
	BindSpellbook(ctx context.Context, input *BindSpellbookInput) (*BindSpellbookOutput, error)

	// LoadFromMapThings creates entities for every object thing in the
	// map-authored thing list, skipping things that fail to load
	LoadFromMapThings(ctx context.Context, input *LoadFromMapThingsInput) (*LoadFromMapThingsOutput, error)
}

// Config holds the dependencies for the objects orchestrator
type Config struct {
	EntityStore engine.EntityStore
	Rules       rules.Repository
	Settings    *config.Settings
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EntityStore == nil {
		vb.RequiredField("EntityStore")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}

	return vb.Build()
}

type orchestrator struct {
	store    engine.EntityStore
	rules    rules.Repository
	settings *config.Settings
}

// NewOrchestrator creates a new objects orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		store:    cfg.EntityStore,
		rules:    cfg.Rules,
		settings: cfg.Settings,
	}, nil
}

// CreateObject creates a world object entity
func (o *orchestrator) CreateObject(ctx context.Context, input *CreateObjectInput) (*CreateObjectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	// Unknown type id is a caller contract violation, surfaced before any
	// entity is created
	defOut, err := o.rules.GetObject(ctx, &rules.GetObjectInput{ObjectID: input.ObjectID})
	if err != nil {
		return nil, errors.Wrapf(err, "missing game rule data for object %d", input.ObjectID)
	}
	def := defOut.Object

	entity, err := o.store.CreateEntity(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create entity")
	}

	if err := o.store.SetComponent(ctx, entity, entities.ObjectType{ObjectID: input.ObjectID}); err != nil {
		return nil, err
	}
	if err := o.store.SetComponent(ctx, entity, entities.Owner{OwnerID: input.OwnerID}); err != nil {
		return nil, err
	}

	// Move to the center of the tile, at floor height
	pos := entities.Position{
		Rotation: input.Rotation,
		X:        float64(input.X) + 0.5,
		Y:        FloorHeight,
		Z:        float64(input.Y) + 0.5,
	}
	if err := o.store.SetComponent(ctx, entity, pos); err != nil {
		return nil, err
	}

	if def.Flags.Has(entities.ObjectFlagGold) {
		money := 0
		if input.Money != nil {
			money = *input.Money
		}
		maxMoney := o.settings.MaxGoldPileOutsideTreasury
		if input.MaxMoney != nil {
			maxMoney = *input.MaxMoney
		}
		if err := o.store.SetComponent(ctx, entity, entities.Gold{Gold: money, MaxGold: maxMoney}); err != nil {
			return nil, err
		}
	}
	if def.Flags.Has(entities.ObjectFlagSpellBook) {
		if err := o.store.SetComponent(ctx, entity, entities.Spellbook{SpellID: input.SpellID}); err != nil {
			return nil, err
		}
	}

	if input.TriggerID != nil {
		if err := o.store.SetComponent(ctx, entity, entities.Trigger{TriggerID: *input.TriggerID}); err != nil {
			return nil, err
		}
	}

	// Interaction is attached only for objects that can be slapped or
	// picked up; drop-on-any-land alone does not qualify
	if def.Flags.Has(entities.ObjectFlagCanBeSlapped) || def.Flags.Has(entities.ObjectFlagCanBePickedUp) {
		interaction := entities.Interaction{
			Highlightable:      def.Flags.Has(entities.ObjectFlagHighlightable),
			Slappable:          def.Flags.Has(entities.ObjectFlagCanBeSlapped),
			PickUpable:         def.Flags.Has(entities.ObjectFlagCanBePickedUp),
			DroppableOnAnyLand: def.Flags.Has(entities.ObjectFlagCanBeDroppedOnAnyLand),
		}
		if err := o.store.SetComponent(ctx, entity, interaction); err != nil {
			return nil, err
		}
	}

	if err := o.store.SetComponent(ctx, entity, entities.ObjectViewState{ObjectID: input.ObjectID}); err != nil {
		return nil, err
	}

	return &CreateObjectOutput{EntityID: entity}, nil
}

// AddRoomGold creates a room-tied gold pile
func (o *orchestrator) AddRoomGold(ctx context.Context, input *AddRoomGoldInput) (*AddRoomGoldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.CreateObject(ctx, &CreateObjectInput{
		ObjectID: ObjectGoldPileID,
		OwnerID:  input.OwnerID,
		X:        input.X,
		Y:        input.Y,
		Money:    &input.Money,
		MaxMoney: &input.MaxMoney,
	})
	if err != nil {
		return nil, err
	}

	return &AddRoomGoldOutput{EntityID: out.EntityID}, nil
}

// AddLooseGold creates a freestanding gold pile
func (o *orchestrator) AddLooseGold(ctx context.Context, input *AddLooseGoldInput) (*AddLooseGoldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.CreateObject(ctx, &CreateObjectInput{
		ObjectID: ObjectGoldID,
		OwnerID:  input.OwnerID,
		X:        input.X,
		Y:        input.Y,
		Money:    &input.Money,
		MaxMoney: &input.MaxMoney,
	})
	if err != nil {
		return nil, err
	}

	return &AddLooseGoldOutput{EntityID: out.EntityID}, nil
}

// AddRoomSpellBook places a spell book object in a room. The spell is not
// bound at placement; research completion binds it via BindSpellbook.
func (o *orchestrator) AddRoomSpellBook(ctx context.Context, input *AddRoomSpellBookInput) (*AddRoomSpellBookOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.CreateObject(ctx, &CreateObjectInput{
		ObjectID: ObjectSpellBookID,
		OwnerID:  input.OwnerID,
		X:        input.X,
		Y:        input.Y,
	})
	if err != nil {
		return nil, err
	}

	return &AddRoomSpellBookOutput{EntityID: out.EntityID}, nil
}

// BindSpellbook binds a spell to an already placed spell book
func (o *orchestrator) BindSpellbook(ctx context.Context, input *BindSpellbookInput) (*BindSpellbookOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, ok, err := engine.Get[entities.Spellbook](ctx, o.store, input.EntityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.FailedPreconditionf("entity %d is not a spell book", input.EntityID)
	}

	spellID := input.SpellID
	if err := o.store.SetComponent(ctx, input.EntityID, entities.Spellbook{SpellID: &spellID}); err != nil {
		return nil, err
	}

	return &BindSpellbookOutput{Success: true}, nil
}

// LoadFromMapThings creates entities for every object thing in the list.
// A thing that fails to load is logged and skipped; the rest of the batch
// continues.
func (o *orchestrator) LoadFromMapThings(ctx context.Context, input *LoadFromMapThingsInput) (*LoadFromMapThingsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &LoadFromMapThingsOutput{}
	for _, thing := range input.Things {
		objectThing, ok := thing.(entities.ObjectThing)
		if !ok {
			continue
		}

		created, err := o.CreateObject(ctx, &CreateObjectInput{
			ObjectID:  objectThing.ObjectID,
			OwnerID:   objectThing.PlayerID,
			X:         objectThing.X,
			Y:         objectThing.Y,
			Money:     &objectThing.MoneyAmount,
			SpellID:   objectThing.KeeperSpellID,
			TriggerID: objectThing.TriggerID,
		})
		if err != nil {
			slog.Warn("Could not load thing",
				"object_id", objectThing.ObjectID,
				"player_id", objectThing.PlayerID,
				"error", err,
			)
			out.Failed++
			continue
		}

		out.EntityIDs = append(out.EntityIDs, created.EntityID)
	}

	slog.Info("Loaded map objects",
		"created", len(out.EntityIDs),
		"failed", out.Failed,
	)

	return out, nil
}
