package engine

import "github.com/tatianab/kudos-clicker/internal/models"

// TagSlot is one row of the tag shop. A slot is either revealed and carries
// a catalog tag, or locked and carries nothing. The zero value is locked.
type TagSlot struct {
	tag *models.Tag
}

func (s TagSlot) Locked() bool { return s.tag == nil }

// Tag returns the slot's tag, or false for a locked slot.
func (s TagSlot) Tag() (models.Tag, bool) {
	if s.tag == nil {
		return models.Tag{}, false
	}
	return *s.tag, true
}

// UpgradeSlot is one row of the upgrade shop. The zero value is locked.
type UpgradeSlot struct {
	upgrade *models.Upgrade
}

func (s UpgradeSlot) Locked() bool { return s.upgrade == nil }

// Upgrade returns the slot's upgrade, or false for a locked slot.
func (s UpgradeSlot) Upgrade() (models.Upgrade, bool) {
	if s.upgrade == nil {
		return models.Upgrade{}, false
	}
	return *s.upgrade, true
}

func (g *GameState) revealed(cost int) bool {
	return g.highestKudos >= float64(cost)
}

// TagShop lists catalog tags not yet unlocked, in catalog order. Tags whose
// cost is above the best kudos total reached so far come back locked.
func (g *GameState) TagShop() []TagSlot {
	var slots []TagSlot
	for i := range g.catalog.Tags {
		t := &g.catalog.Tags[i]
		if g.IsUnlocked(t.Name) {
			continue
		}
		if !g.revealed(t.Cost) {
			slots = append(slots, TagSlot{})
			continue
		}
		slots = append(slots, TagSlot{tag: t})
	}
	return slots
}

// UpgradeShop lists every catalog upgrade in catalog order, locked until
// the best kudos total reaches its base cost. Sold-out upgrades stay listed.
func (g *GameState) UpgradeShop() []UpgradeSlot {
	slots := make([]UpgradeSlot, 0, len(g.catalog.Upgrades))
	for i := range g.catalog.Upgrades {
		u := &g.catalog.Upgrades[i]
		if !g.revealed(u.BaseCost) {
			slots = append(slots, UpgradeSlot{})
			continue
		}
		slots = append(slots, UpgradeSlot{upgrade: u})
	}
	return slots
}
