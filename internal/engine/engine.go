// Package engine holds the game state and the rules that change it.
//
// All mutation goes through GameState.Update, one intent at a time. Invalid
// intents (unaffordable, unknown, sold out, locked) are ignored.
package engine

import (
	"github.com/tatianab/kudos-clicker/internal/config"
	"github.com/tatianab/kudos-clicker/internal/models"
)

// CloneUpgrade is the upgrade whose stacks each upload once per tick.
const CloneUpgrade = "Clone"

// UnlockedTag is a purchased tag and whether it currently counts toward
// the tag bonus.
type UnlockedTag struct {
	models.Tag
	Active bool
}

// OwnedUpgrade tracks how many stacks of a catalog upgrade the player has.
type OwnedUpgrade struct {
	Name  string
	Count int
}

type GameState struct {
	catalog *models.Catalog
	balance config.Balance

	unlockedTags []UnlockedTag
	upgrades     []OwnedUpgrade

	kudos        float64
	highestKudos float64
}

func New(catalog *models.Catalog, balance config.Balance) *GameState {
	return &GameState{
		catalog: catalog,
		balance: balance,
	}
}

func (g *GameState) Catalog() *models.Catalog { return g.catalog }
func (g *GameState) Balance() config.Balance  { return g.balance }
func (g *GameState) Kudos() float64           { return g.kudos }
func (g *GameState) HighestKudos() float64    { return g.highestKudos }

// UnlockedTags returns a copy of the owned tags in purchase order.
func (g *GameState) UnlockedTags() []UnlockedTag {
	out := make([]UnlockedTag, len(g.unlockedTags))
	copy(out, g.unlockedTags)
	return out
}

// Upgrades returns a copy of the owned upgrades in purchase order.
func (g *GameState) Upgrades() []OwnedUpgrade {
	out := make([]OwnedUpgrade, len(g.upgrades))
	copy(out, g.upgrades)
	return out
}

// IsUnlocked reports whether a tag with the given name has been bought.
func (g *GameState) IsUnlocked(name string) bool {
	return g.findTag(name) >= 0
}

// UpgradeCount returns the number of stacks owned, zero if none.
func (g *GameState) UpgradeCount(name string) int {
	if i := g.findUpgrade(name); i >= 0 {
		return g.upgrades[i].Count
	}
	return 0
}

// AutomationActive reports whether timer intents should be delivered.
func (g *GameState) AutomationActive() bool {
	return g.UpgradeCount(CloneUpgrade) > 0
}

func (g *GameState) findTag(name string) int {
	for i, t := range g.unlockedTags {
		if t.Name == name {
			return i
		}
	}
	return -1
}

func (g *GameState) findUpgrade(name string) int {
	for i, u := range g.upgrades {
		if u.Name == name {
			return i
		}
	}
	return -1
}
