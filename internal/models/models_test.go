package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestCatalogYAML(t *testing.T) {
	cat := &Catalog{
		Tags: []Tag{
			{Name: "Coffee Shop AU", Categories: []Category{AU, Fluff}, Cost: 25},
		},
		Upgrades: []Upgrade{
			{Name: "Clone", FlavorText: "Two of you.", Desc: "Uploads on a timer.", MaxCount: 3, BaseCost: 50},
		},
	}

	data, err := yaml.Marshal(cat)
	if err != nil {
		t.Fatalf("Failed to marshal catalog: %v", err)
	}
	if !strings.Contains(string(data), "- AU") {
		t.Errorf("Expected categories to be written by name, got:\n%s", data)
	}

	cat2, err := ParseCatalog(data)
	if err != nil {
		t.Fatalf("Failed to parse catalog: %v", err)
	}
	if len(cat2.Tags) != 1 || len(cat2.Tags[0].Categories) != 2 || cat2.Tags[0].Categories[0] != AU {
		t.Errorf("Expected tag categories [AU Fluff], got %v", cat2.Tags)
	}
	if cat2.Upgrades[0].MaxCount != 3 {
		t.Errorf("Expected max count 3, got %d", cat2.Upgrades[0].MaxCount)
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("Default catalog does not load: %v", err)
	}
	if len(cat.Tags) == 0 || len(cat.Upgrades) == 0 {
		t.Fatalf("Default catalog is empty: %+v", cat)
	}
	if _, ok := cat.FindUpgrade("Clone"); !ok {
		t.Errorf("Default catalog has no Clone upgrade")
	}
}

func TestParseCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown category", "tags:\n  - name: X\n    categories: [Sci-Fi]\n", "unknown category"},
		{"empty tag name", "tags:\n  - cost: 3\n", "empty name"},
		{"duplicate tag", "tags:\n  - name: A\n  - name: A\n", "duplicate tag"},
		{"zero max count", "upgrades:\n  - name: U\n    base_cost: 1\n", "max_count"},
		{"negative cost", "upgrades:\n  - name: U\n    max_count: 1\n    base_cost: -1\n", "negative cost"},
		{"bad yaml", "tags: [", "parse catalog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "tags:\n  - name: Angst\n    categories: [Angst]\n    cost: 1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if tag, ok := cat.FindTag("Angst"); !ok || tag.Cost != 1 {
		t.Errorf("Expected Angst tag with cost 1, got %+v (found=%v)", tag, ok)
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected error for missing file")
	}
}
