package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("KUDOS_CATALOG", "")
	t.Setenv("KUDOS_BALANCE", "")
	t.Setenv("KUDOS_TICK", "")
	t.Setenv("KUDOS_DEBUG_LOG", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Balance != Default() {
		t.Errorf("Expected default balance, got %+v", cfg.Balance)
	}
	if cfg.Balance.TickPeriod != 5*time.Second {
		t.Errorf("Expected 5s tick, got %s", cfg.Balance.TickPeriod)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("Expected no API key, got %q", cfg.GeminiAPIKey)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("KUDOS_CATALOG", "/tmp/catalog.yaml")
	t.Setenv("KUDOS_BALANCE", "classic")
	t.Setenv("KUDOS_TICK", "250ms")
	t.Setenv("KUDOS_DEBUG_LOG", "debug.log")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.GeminiAPIKey != "key" || cfg.CatalogPath != "/tmp/catalog.yaml" || cfg.DebugLogPath != "debug.log" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Balance.AUSpecialCase || cfg.Balance.TagBase != 0 {
		t.Errorf("Expected classic balance, got %+v", cfg.Balance)
	}
	if cfg.Balance.TickPeriod != 250*time.Millisecond {
		t.Errorf("Expected 250ms tick, got %s", cfg.Balance.TickPeriod)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		tick    string
	}{
		{"unknown balance", "hard", ""},
		{"bad duration", "", "soon"},
		{"zero duration", "", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KUDOS_BALANCE", tt.balance)
			t.Setenv("KUDOS_TICK", tt.tick)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("Expected error for balance=%q tick=%q", tt.balance, tt.tick)
			}
		})
	}
}
