package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string
	CatalogPath  string
	Balance      Balance
	DebugLogPath string
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		CatalogPath:  os.Getenv("KUDOS_CATALOG"),
		DebugLogPath: os.Getenv("KUDOS_DEBUG_LOG"),
	}

	switch name := os.Getenv("KUDOS_BALANCE"); name {
	case "", "default":
		cfg.Balance = Default()
	case "classic":
		cfg.Balance = Classic()
	default:
		return nil, fmt.Errorf("KUDOS_BALANCE must be \"default\" or \"classic\", got %q", name)
	}

	if tick := os.Getenv("KUDOS_TICK"); tick != "" {
		d, err := time.ParseDuration(tick)
		if err != nil {
			return nil, fmt.Errorf("parsing KUDOS_TICK: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("KUDOS_TICK must be positive, got %s", d)
		}
		cfg.Balance.TickPeriod = d
	}

	return cfg, nil
}
