package models

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// DefaultCatalog returns the catalog shipped with the game.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog from a YAML file. An empty path yields the
// default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks that names are present and unique and that costs and
// stack limits make sense.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, t := range c.Tags {
		if t.Name == "" {
			return fmt.Errorf("tag with empty name")
		}
		if seen["tag/"+t.Name] {
			return fmt.Errorf("duplicate tag %q", t.Name)
		}
		seen["tag/"+t.Name] = true
		if t.Cost < 0 {
			return fmt.Errorf("tag %q: negative cost", t.Name)
		}
	}
	for _, u := range c.Upgrades {
		if u.Name == "" {
			return fmt.Errorf("upgrade with empty name")
		}
		if seen["upgrade/"+u.Name] {
			return fmt.Errorf("duplicate upgrade %q", u.Name)
		}
		seen["upgrade/"+u.Name] = true
		if u.BaseCost < 0 {
			return fmt.Errorf("upgrade %q: negative cost", u.Name)
		}
		if u.MaxCount < 1 {
			return fmt.Errorf("upgrade %q: max_count must be at least 1", u.Name)
		}
	}
	return nil
}
