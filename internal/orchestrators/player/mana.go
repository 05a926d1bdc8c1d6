package player

import (
	"github.com/keeperforge/keeper-core/internal/config"
	"github.com/keeperforge/keeper-core/internal/entities"
)

// ManaControl tracks a player's mana pool. The good and neutral factions
// never get one.
type ManaControl struct {
	keeper    *entities.Keeper
	settings  *config.Settings
	mana      int
	manaGain  int
	manaLoose int
	listeners []Listener
}

// NewManaControl creates a mana control for the keeper
func NewManaControl(keeper *entities.Keeper, settings *config.Settings) *ManaControl {
	return &ManaControl{
		keeper:   keeper,
		settings: settings,
		manaGain: settings.ManaGainBase,
	}
}

// Mana returns the current mana total
func (c *ManaControl) Mana() int {
	return c.mana
}

// ManaGain returns the per-tick mana income
func (c *ManaControl) ManaGain() int {
	return c.manaGain
}

// ManaLoose returns the per-tick mana drain
func (c *ManaControl) ManaLoose() int {
	return c.manaLoose
}

// AddGain adjusts the per-tick mana income, e.g. for claimed tiles
func (c *ManaControl) AddGain(delta int) {
	c.manaGain += delta
}

// AddLoose adjusts the per-tick mana drain, e.g. for active spells
func (c *ManaControl) AddLoose(delta int) {
	c.manaLoose += delta
}

// Tick applies one tick of mana income and drain and notifies listeners
func (c *ManaControl) Tick() {
	c.mana += c.manaGain - c.manaLoose
	if c.mana < 0 {
		c.mana = 0
	}
	c.notify()
}

// AddListener registers a listener for mana changes
func (c *ManaControl) AddListener(listener Listener) {
	c.listeners = append(c.listeners, listener)
}

// RemoveListener unregisters a listener
func (c *ManaControl) RemoveListener(listener Listener) {
	for i, l := range c.listeners {
		if l == listener {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

func (c *ManaControl) notify() {
	for _, l := range c.listeners {
		l.OnManaChange(c.keeper.ID, c.mana, c.manaLoose, c.manaGain)
	}
}
