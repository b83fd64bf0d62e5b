package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tatianab/kudos-clicker/internal/config"
	"github.com/tatianab/kudos-clicker/internal/engine"
	"github.com/tatianab/kudos-clicker/internal/models"
)

// A greedy player: uploads a fixed number of times per timer period, buys
// the cheapest revealed thing it can afford and turns on every tag.
func main() {
	ticks := flag.Int("ticks", 60, "number of timer periods to simulate")
	clicks := flag.Int("clicks", 10, "manual uploads per timer period")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	catalog, err := models.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	state := engine.New(catalog, cfg.Balance)
	now := time.Unix(0, 0)

	for tick := 1; tick <= *ticks; tick++ {
		for n, c := 0, *clicks; n < c; n++ {
			state.Update(engine.Upload{})
		}
		for buyCheapest(state) {
		}
		for _, t := range state.UnlockedTags() {
			if !t.Active {
				state.Update(engine.ToggleTag{Name: t.Name})
			}
		}

		now = now.Add(cfg.Balance.TickPeriod)
		if state.AutomationActive() {
			state.Update(engine.Tick{At: now})
		}

		if tick%10 == 0 || tick == *ticks {
			fmt.Printf("--- Tick %d (%s) ---\n", tick, now.Sub(time.Unix(0, 0)))
			fmt.Printf("Kudos: %.1f (best %.1f), next upload +%.2f\n",
				state.Kudos(), state.HighestKudos(), state.UploadReward())
			fmt.Printf("Tags: %d, Upgrades: %v\n\n", len(state.UnlockedTags()), state.Upgrades())
		}
	}
}

// buyCheapest makes one purchase and reports whether it bought anything.
func buyCheapest(state *engine.GameState) bool {
	var intent engine.Intent
	best := -1

	for _, slot := range state.TagShop() {
		tag, ok := slot.Tag()
		if !ok || float64(tag.Cost) > state.Kudos() {
			continue
		}
		if best < 0 || tag.Cost < best {
			best, intent = tag.Cost, engine.BuyTag{Slot: slot}
		}
	}
	for _, slot := range state.UpgradeShop() {
		up, ok := slot.Upgrade()
		if !ok || state.SoldOut(up.Name) {
			continue
		}
		cost, _ := state.NextUpgradeCost(up.Name)
		if float64(cost) > state.Kudos() {
			continue
		}
		if best < 0 || cost < best {
			best, intent = cost, engine.BuyUpgrade{Slot: slot}
		}
	}

	if intent == nil {
		return false
	}
	before := state.Kudos()
	state.Update(intent)
	return state.Kudos() < before
}
