package objects_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/keeperforge/keeper-core/internal/config"
	"github.com/keeperforge/keeper-core/internal/engine"
	"github.com/keeperforge/keeper-core/internal/engine/memstore"
	"github.com/keeperforge/keeper-core/internal/entities"
	"github.com/keeperforge/keeper-core/internal/errors"
	"github.com/keeperforge/keeper-core/internal/orchestrators/objects"
	"github.com/keeperforge/keeper-core/internal/repositories/rules"
)

const (
	typeStatue entities.ObjectTypeID = 10
	typeCrate  entities.ObjectTypeID = 11
	typeChick  entities.ObjectTypeID = 12
)

type OrchestratorTestSuite struct {
	suite.Suite
	orchestrator objects.Service
	store        *memstore.Store
	ctx          context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.store = memstore.New()
	s.ctx = context.Background()

	repo := rules.NewInMemory()
	defs := []entities.ObjectDefinition{
		{ObjectID: objects.ObjectGoldID, Name: "Gold", Flags: entities.ObjectFlagGold},
		{ObjectID: objects.ObjectGoldPileID, Name: "Gold Pile", Flags: entities.ObjectFlagGold},
		{
			ObjectID: objects.ObjectSpellBookID,
			Name:     "Spell Book",
			Flags:    entities.ObjectFlagSpellBook | entities.ObjectFlagHighlightable | entities.ObjectFlagCanBeSlapped,
		},
		// Plain decoration, no capabilities at all
		{ObjectID: typeStatue, Name: "Statue"},
		// Droppable-on-any-land only; must not get an interaction component
		{ObjectID: typeCrate, Name: "Crate", Flags: entities.ObjectFlagCanBeDroppedOnAnyLand},
		{
			ObjectID: typeChick,
			Name:     "Chicken",
			Flags:    entities.ObjectFlagCanBePickedUp | entities.ObjectFlagCanBeDroppedOnAnyLand,
		},
	}
	for i := range defs {
		_, err := repo.SaveObject(s.ctx, &rules.SaveObjectInput{Object: &defs[i]})
		s.Require().NoError(err)
	}

	orch, err := objects.NewOrchestrator(&objects.Config{
		EntityStore: s.store,
		Rules:       repo,
		Settings:    config.Default(),
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) component(id entities.EntityID, out any) bool {
	ok, err := s.store.GetComponent(s.ctx, id, out)
	s.Require().NoError(err)
	return ok
}

func (s *OrchestratorTestSuite) TestCreateObject_BaseComponents() {
	out, err := s.orchestrator.CreateObject(s.ctx, &objects.CreateObjectInput{
		ObjectID: typeStatue,
		OwnerID:  entities.Keeper1ID,
		X:        5,
		Y:        7,
		Rotation: 1.5,
	})
	s.Require().NoError(err)

	var objectType entities.ObjectType
	s.Require().True(s.component(out.EntityID, &objectType))
	s.Equal(typeStatue, objectType.ObjectID)

	var owner entities.Owner
	s.Require().True(s.component(out.EntityID, &owner))
	s.Equal(entities.Keeper1ID, owner.OwnerID)

	var pos entities.Position
	s.Require().True(s.component(out.EntityID, &pos))
	s.InDelta(5.5, pos.X, 1e-9)
	s.InDelta(objects.FloorHeight, pos.Y, 1e-9)
	s.InDelta(7.5, pos.Z, 1e-9)
	s.InDelta(1.5, pos.Rotation, 1e-9)

	var view entities.ObjectViewState
	s.Require().True(s.component(out.EntityID, &view))
	s.Equal(typeStatue, view.ObjectID)

	// No capability flags, no capability components
	var gold entities.Gold
	s.False(s.component(out.EntityID, &gold))
	var book entities.Spellbook
	s.False(s.component(out.EntityID, &book))
	var interaction entities.Interaction
	s.False(s.component(out.EntityID, &interaction))
}

func (s *OrchestratorTestSuite) TestCreateObject_GoldDefaultCapacity() {
	money := 150
	out, err := s.orchestrator.CreateObject(s.ctx, &objects.CreateObjectInput{
		ObjectID: objects.ObjectGoldID,
		OwnerID:  entities.Keeper1ID,
		Money:    &money,
	})
	s.Require().NoError(err)

	var gold entities.Gold
	s.Require().True(s.component(out.EntityID, &gold))
	s.Equal(150, gold.Gold)
	s.Equal(config.Default().MaxGoldPileOutsideTreasury, gold.MaxGold)
}

func (s *OrchestratorTestSuite) TestCreateObject_GoldNoMoneyDefaultsToZero() {
	out, err := s.orchestrator.CreateObject(s.ctx, &objects.CreateObjectInput{
		ObjectID: objects.ObjectGoldID,
		OwnerID:  entities.Keeper1ID,
	})
	s.Require().NoError(err)

	var gold entities.Gold
	s.Require().True(s.component(out.EntityID, &gold))
	s.Equal(0, gold.Gold)
}

func (s *OrchestratorTestSuite) TestCreateObject_UnknownType() {
	_, err := s.orchestrator.CreateObject(s.ctx, &objects.CreateObjectInput{
		ObjectID: 99,
		OwnerID:  entities.Keeper1ID,
	})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCreateObject_InteractionFlagsCopied() {
	out, err := s.orchestrator.CreateObject(s.ctx, &objects.CreateObjectInput{
		ObjectID: typeChick,
		OwnerID:  entities.NeutralPlayerID,
	})
	s.Require().NoError(err)

	var interaction entities.Interaction
	s.Require().True(s.component(out.EntityID, &interaction))
	s.False(interaction.Highlightable)
	s.False(interaction.Slappable)
	s.True(interaction.PickUpable)
	s.True(interaction.DroppableOnAnyLand)
}

func (s *OrchestratorTestSuite) TestCreateObject_DroppableOnlyGetsNoInteraction() {
	out, err := s.orchestrator.CreateObject(s.ctx, &objects.CreateObjectInput{
		ObjectID: typeCrate,
		OwnerID:  entities.Keeper1ID,
	})
	s.Require().NoError(err)

	var interaction entities.Interaction
	s.False(s.component(out.EntityID, &interaction))
}

func (s *OrchestratorTestSuite) TestCreateObject_Trigger() {
	triggerID := entities.TriggerID(42)
	out, err := s.orchestrator.CreateObject(s.ctx, &objects.CreateObjectInput{
		ObjectID:  typeStatue,
		OwnerID:   entities.Keeper1ID,
		TriggerID: &triggerID,
	})
	s.Require().NoError(err)

	var trigger entities.Trigger
	s.Require().True(s.component(out.EntityID, &trigger))
	s.Equal(entities.TriggerID(42), trigger.TriggerID)
}

func (s *OrchestratorTestSuite) TestAddLooseGold_EndToEnd() {
	out, err := s.orchestrator.AddLooseGold(s.ctx, &objects.AddLooseGoldInput{
		OwnerID:  2,
		X:        5,
		Y:        7,
		Money:    300,
		MaxMoney: 500,
	})
	s.Require().NoError(err)

	var owner entities.Owner
	s.Require().True(s.component(out.EntityID, &owner))
	s.Equal(entities.PlayerID(2), owner.OwnerID)

	var gold entities.Gold
	s.Require().True(s.component(out.EntityID, &gold))
	s.Equal(300, gold.Gold)
	s.Equal(500, gold.MaxGold)

	var pos entities.Position
	s.Require().True(s.component(out.EntityID, &pos))
	s.InDelta(5.5, pos.X, 1e-9)
	s.InDelta(objects.FloorHeight, pos.Y, 1e-9)
	s.InDelta(7.5, pos.Z, 1e-9)

	var interaction entities.Interaction
	s.False(s.component(out.EntityID, &interaction))
}

func (s *OrchestratorTestSuite) TestAddRoomGold_UsesGoldPileType() {
	out, err := s.orchestrator.AddRoomGold(s.ctx, &objects.AddRoomGoldInput{
		OwnerID:  entities.Keeper1ID,
		X:        1,
		Y:        1,
		Money:    50,
		MaxMoney: 2400,
	})
	s.Require().NoError(err)

	var objectType entities.ObjectType
	s.Require().True(s.component(out.EntityID, &objectType))
	s.Equal(objects.ObjectGoldPileID, objectType.ObjectID)

	var gold entities.Gold
	s.Require().True(s.component(out.EntityID, &gold))
	s.Equal(2400, gold.MaxGold)
}

func (s *OrchestratorTestSuite) TestAddRoomSpellBook_SpellNotBoundAtPlacement() {
	spellID := entities.SpellID(7)
	out, err := s.orchestrator.AddRoomSpellBook(s.ctx, &objects.AddRoomSpellBookInput{
		OwnerID: entities.Keeper1ID,
		X:       3,
		Y:       3,
		SpellID: &spellID,
	})
	s.Require().NoError(err)

	var book entities.Spellbook
	s.Require().True(s.component(out.EntityID, &book))
	s.Nil(book.SpellID)

	// Spell book definition is slappable, so it is interactable
	var interaction entities.Interaction
	s.Require().True(s.component(out.EntityID, &interaction))
	s.True(interaction.Highlightable)
	s.True(interaction.Slappable)
}

func (s *OrchestratorTestSuite) TestBindSpellbook() {
	out, err := s.orchestrator.AddRoomSpellBook(s.ctx, &objects.AddRoomSpellBookInput{
		OwnerID: entities.Keeper1ID,
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.BindSpellbook(s.ctx, &objects.BindSpellbookInput{
		EntityID: out.EntityID,
		SpellID:  7,
	})
	s.Require().NoError(err)

	book, ok, err := engine.Get[entities.Spellbook](s.ctx, s.store, out.EntityID)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Require().NotNil(book.SpellID)
	s.Equal(entities.SpellID(7), *book.SpellID)
}

func (s *OrchestratorTestSuite) TestBindSpellbook_NotABook() {
	out, err := s.orchestrator.CreateObject(s.ctx, &objects.CreateObjectInput{
		ObjectID: typeStatue,
		OwnerID:  entities.Keeper1ID,
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.BindSpellbook(s.ctx, &objects.BindSpellbookInput{
		EntityID: out.EntityID,
		SpellID:  7,
	})

	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestLoadFromMapThings_PartialFailure() {
	things := make([]entities.Thing, 0, 11)
	for i := 0; i < 9; i++ {
		things = append(things, entities.ObjectThing{
			ObjectID:    typeStatue,
			PlayerID:    entities.Keeper1ID,
			X:           i,
			Y:           i,
			MoneyAmount: 0,
		})
	}
	// One thing with an unknown type id fails and is skipped
	things = append(things, entities.ObjectThing{ObjectID: 99, PlayerID: entities.Keeper1ID})
	// Creature things are not this loader's concern
	things = append(things, entities.CreatureThing{CreatureID: 1, PlayerID: entities.Keeper1ID})

	out, err := s.orchestrator.LoadFromMapThings(s.ctx, &objects.LoadFromMapThingsInput{Things: things})
	s.Require().NoError(err)

	s.Len(out.EntityIDs, 9)
	s.Equal(1, out.Failed)
}

func (s *OrchestratorTestSuite) TestLoadFromMapThings_ForwardsPayload() {
	spellID := entities.SpellID(3)
	triggerID := entities.TriggerID(8)
	things := []entities.Thing{
		entities.ObjectThing{
			ObjectID:      objects.ObjectGoldID,
			PlayerID:      entities.Keeper1ID,
			X:             2,
			Y:             2,
			MoneyAmount:   75,
			KeeperSpellID: &spellID,
			TriggerID:     &triggerID,
		},
	}

	out, err := s.orchestrator.LoadFromMapThings(s.ctx, &objects.LoadFromMapThingsInput{Things: things})
	s.Require().NoError(err)
	s.Require().Len(out.EntityIDs, 1)

	var gold entities.Gold
	s.Require().True(s.component(out.EntityIDs[0], &gold))
	s.Equal(75, gold.Gold)

	var trigger entities.Trigger
	s.Require().True(s.component(out.EntityIDs[0], &trigger))
	s.Equal(entities.TriggerID(8), trigger.TriggerID)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestNewOrchestrator_MissingDependencies(t *testing.T) {
	_, err := objects.NewOrchestrator(&objects.Config{})
	if err == nil {
		t.Fatal("expected error for empty config")
	}
}
