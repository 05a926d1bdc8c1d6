// Package player implements the player domain controller: one bundle of
// gold, creature, room, spell, and mana sub-controllers per player.
package player

import (
	"github.com/keeperforge/keeper-core/internal/config"
	"github.com/keeperforge/keeper-core/internal/entities"
	"github.com/keeperforge/keeper-core/internal/errors"
)

// Controller hosts and provides one player's sub-controllers
type Controller struct {
	keeper    *entities.Keeper
	gold      *GoldControl
	creatures *CreatureControl
	rooms     *RoomControl
	spells    *SpellControl

	// nil for the good and neutral factions
	mana *ManaControl
}

// Config holds the dependencies for a player controller
type Config struct {
	Keeper   *entities.Keeper
	Settings *config.Settings
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Keeper == nil {
		vb.RequiredField("Keeper")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}

	return vb.Build()
}

// NewController creates a controller with all sub-controllers for the keeper
func NewController(cfg *Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ctrl := &Controller{
		keeper:    cfg.Keeper,
		gold:      NewGoldControl(cfg.Keeper),
		creatures: NewCreatureControl(cfg.Keeper),
		rooms:     NewRoomControl(cfg.Keeper),
		spells:    NewSpellControl(cfg.Keeper),
	}

	// The good and neutral factions do not accumulate or spend mana
	if cfg.Keeper.ID != entities.GoodPlayerID && cfg.Keeper.ID != entities.NeutralPlayerID {
		ctrl.mana = NewManaControl(cfg.Keeper, cfg.Settings)
	}

	return ctrl, nil
}

// Keeper returns the owning player's identity record
func (c *Controller) Keeper() *entities.Keeper {
	return c.keeper
}

// GoldControl returns the player's gold control
func (c *Controller) GoldControl() *GoldControl {
	return c.gold
}

// CreatureControl returns the player's creature control
func (c *Controller) CreatureControl() *CreatureControl {
	return c.creatures
}

// RoomControl returns the player's room ownership ledger
func (c *Controller) RoomControl() *RoomControl {
	return c.rooms
}

// SpellControl returns the player's spell control
func (c *Controller) SpellControl() *SpellControl {
	return c.spells
}

// ManaControl returns the player's mana control. The second return is false
// for factions that have no mana system, which callers must distinguish
// from zero mana.
func (c *Controller) ManaControl() (*ManaControl, bool) {
	if c.mana == nil {
		return nil, false
	}
	return c.mana, true
}

// AddListener registers the listener with every sub-controller that
// supports listeners: gold and, when present, mana
func (c *Controller) AddListener(listener Listener) {
	c.gold.AddListener(listener)
	if c.mana != nil {
		c.mana.AddListener(listener)
	}
}

// RemoveListener unregisters the listener from the same sub-controllers
func (c *Controller) RemoveListener(listener Listener) {
	c.gold.RemoveListener(listener)
	if c.mana != nil {
		c.mana.RemoveListener(listener)
	}
}
