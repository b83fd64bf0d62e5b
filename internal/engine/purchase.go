package engine

// BuyTag unlocks the tag in slot if the player can afford it. The tag starts
// inactive. Locked slots are ignored. There is no duplicate check here; the
// listing only offers tags that are not yet unlocked.
func (g *GameState) BuyTag(slot TagSlot) {
	tag, ok := slot.Tag()
	if !ok {
		return
	}
	cost := float64(tag.Cost)
	if g.kudos < cost {
		return
	}
	g.kudos -= cost
	g.unlockedTags = append(g.unlockedTags, UnlockedTag{Tag: tag})
}

// ToggleTag flips the active flag of an unlocked tag.
func (g *GameState) ToggleTag(name string) {
	if i := g.findTag(name); i >= 0 {
		g.unlockedTags[i].Active = !g.unlockedTags[i].Active
	}
}

// NextUpgradeCost is the price of the next stack of the named upgrade:
// the base cost plus CostStep for every stack already owned.
func (g *GameState) NextUpgradeCost(name string) (int, bool) {
	entry, ok := g.catalog.FindUpgrade(name)
	if !ok {
		return 0, false
	}
	return entry.BaseCost + g.balance.CostStep*g.UpgradeCount(name), true
}

// SoldOut reports whether every stack of the named upgrade has been bought.
func (g *GameState) SoldOut(name string) bool {
	entry, ok := g.catalog.FindUpgrade(name)
	if !ok {
		return false
	}
	return g.UpgradeCount(name) >= entry.MaxCount
}

// BuyUpgrade buys one more stack of the upgrade in slot. Nothing happens
// when the slot is locked, the player is short, or the upgrade is sold out.
func (g *GameState) BuyUpgrade(slot UpgradeSlot) {
	entry, ok := slot.Upgrade()
	if !ok {
		return
	}

	if i := g.findUpgrade(entry.Name); i >= 0 {
		owned := &g.upgrades[i]
		cost := float64(entry.BaseCost + g.balance.CostStep*owned.Count)
		if g.kudos >= cost && owned.Count < entry.MaxCount {
			owned.Count++
			g.kudos -= cost
		}
		return
	}

	cost := float64(entry.BaseCost)
	if g.kudos < cost {
		return
	}
	g.kudos -= cost
	g.upgrades = append(g.upgrades, OwnedUpgrade{Name: entry.Name, Count: 1})
}
