package engine

import "github.com/tatianab/kudos-clicker/internal/models"

type categoryCount struct {
	category models.Category
	n        int
}

// countCategories tallies the categories of every active tag, in order of
// first appearance.
func (g *GameState) countCategories() []categoryCount {
	var counts []categoryCount
	for _, t := range g.unlockedTags {
		if !t.Active {
			continue
		}
	next:
		for _, c := range t.Categories {
			for i := range counts {
				if counts[i].category == c {
					counts[i].n++
					continue next
				}
			}
			counts = append(counts, categoryCount{category: c, n: 1})
		}
	}
	return counts
}

// TagBonus is the per-upload bonus from active tags.
func (g *GameState) TagBonus() float64 {
	b := g.balance
	sum := 0
	for _, cc := range g.countCategories() {
		if b.AUSpecialCase && cc.category == models.AU {
			sum += max(b.AUCeiling-b.AUPenalty*cc.n, 0)
			continue
		}
		sum += cc.n
	}
	return float64(sum)*b.CategoryWeight + b.TagBase
}

// UpgradeBonus is the per-upload bonus from owned upgrades.
func (g *GameState) UpgradeBonus() float64 {
	bonus := g.balance.UpgradeBase
	for _, u := range g.upgrades {
		entry, ok := g.catalog.FindUpgrade(u.Name)
		if !ok {
			continue
		}
		bonus += entry.Multiplier * float64(u.Count)
	}
	return bonus
}

// UploadReward is what the next upload would grant.
func (g *GameState) UploadReward() float64 {
	return g.balance.UploadCoefficient * (g.TagBonus() + g.UpgradeBonus())
}

// UploadStory grants one upload's worth of kudos. It is the only way kudos
// are earned and the only place the high-water mark moves.
func (g *GameState) UploadStory() {
	g.kudos += g.UploadReward()
	if g.kudos > g.highestKudos {
		g.highestKudos = g.kudos
	}
}

// Tick runs one automation cycle: every owned Clone stack uploads once,
// each upload recomputing its reward. It returns the number of uploads.
func (g *GameState) Tick() int {
	uploads := 0
	for _, u := range g.upgrades {
		if u.Name != CloneUpgrade {
			continue
		}
		for n := 0; n < u.Count; n++ {
			g.UploadStory()
			uploads++
		}
	}
	return uploads
}
