package player

import (
	"github.com/keeperforge/keeper-core/internal/entities"
)

// SpellControl tracks which keeper spells a player has available and which
// have been fully researched
type SpellControl struct {
	keeper     *entities.Keeper
	available  map[entities.SpellID]bool
	discovered map[entities.SpellID]bool
}

// NewSpellControl creates a spell control for the keeper
func NewSpellControl(keeper *entities.Keeper) *SpellControl {
	return &SpellControl{
		keeper:     keeper,
		available:  make(map[entities.SpellID]bool),
		discovered: make(map[entities.SpellID]bool),
	}
}

// SetTypeAvailable records whether the spell can be researched
func (c *SpellControl) SetTypeAvailable(spellID entities.SpellID, available bool) {
	c.available[spellID] = available
}

// IsTypeAvailable reports whether the spell can be researched
func (c *SpellControl) IsTypeAvailable(spellID entities.SpellID) bool {
	return c.available[spellID]
}

// OnResearchComplete marks the spell as discovered. The caller binds the
// spell to its book object via the object lifecycle orchestrator.
func (c *SpellControl) OnResearchComplete(spellID entities.SpellID) {
	c.discovered[spellID] = true
}

// IsDiscovered reports whether the spell has been researched
func (c *SpellControl) IsDiscovered(spellID entities.SpellID) bool {
	return c.discovered[spellID]
}
