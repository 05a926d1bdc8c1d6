package player

import (
	"github.com/keeperforge/keeper-core/internal/entities"
)

// GoldControl tracks a player's gold total. Stored gold lives in treasury
// room entities; this is the aggregate the UI and AI read.
type GoldControl struct {
	keeper    *entities.Keeper
	gold      int
	listeners []Listener
}

// NewGoldControl creates a gold control for the keeper
func NewGoldControl(keeper *entities.Keeper) *GoldControl {
	return &GoldControl{keeper: keeper}
}

// Gold returns the current gold total
func (c *GoldControl) Gold() int {
	return c.gold
}

// AddGold credits gold and notifies listeners
func (c *GoldControl) AddGold(amount int) {
	if amount == 0 {
		return
	}
	c.gold += amount
	c.notify()
}

// SubGold debits gold if the player can afford it and notifies listeners.
// Returns false and leaves the total untouched otherwise.
func (c *GoldControl) SubGold(amount int) bool {
	if amount > c.gold {
		return false
	}
	c.gold -= amount
	c.notify()
	return true
}

// AddListener registers a listener for gold changes
func (c *GoldControl) AddListener(listener Listener) {
	c.listeners = append(c.listeners, listener)
}

// RemoveListener unregisters a listener
func (c *GoldControl) RemoveListener(listener Listener) {
	for i, l := range c.listeners {
		if l == listener {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

func (c *GoldControl) notify() {
	for _, l := range c.listeners {
		l.OnGoldChange(c.keeper.ID, c.gold)
	}
}
