package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/kudos-clicker/internal/blurb"
	"github.com/tatianab/kudos-clicker/internal/config"
	"github.com/tatianab/kudos-clicker/internal/engine"
	"github.com/tatianab/kudos-clicker/internal/models"
	"github.com/tatianab/kudos-clicker/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so log lines go to a file or nowhere.
	if cfg.DebugLogPath != "" {
		f, err := tea.LogToFile(cfg.DebugLogPath, "kudos")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	catalog, err := models.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		fmt.Printf("Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	var blurber tui.Blurber
	if cfg.GeminiAPIKey != "" {
		w, err := blurb.NewWriter(ctx, cfg.GeminiAPIKey)
		if err != nil {
			fmt.Printf("Error creating blurb writer: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()
		blurber = w
	}

	state := engine.New(catalog, cfg.Balance)
	log.Printf("starting with %d tags, %d upgrades, tick every %s",
		len(catalog.Tags), len(catalog.Upgrades), cfg.Balance.TickPeriod)

	if err := tui.Run(state, blurber); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
