package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Category is a narrative grouping used when computing the tag bonus.
type Category int

const (
	Fluff Category = iota
	Angst
	AU
	Horror
	Romance
)

var categoryNames = map[Category]string{
	Fluff:   "Fluff",
	Angst:   "Angst",
	AU:      "AU",
	Horror:  "Horror",
	Romance: "Romance",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory maps a catalog name ("Fluff", "AU", ...) back to a Category.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Tag is a catalog entry for an unlockable passive modifier.
// Tags are identified by name.
type Tag struct {
	Name       string     `yaml:"name"`
	Categories []Category `yaml:"categories"`
	Cost       int        `yaml:"cost"`
}

// Upgrade is a catalog entry for a stackable purchase. MaxCount is the most
// stacks a player may own and BaseCost is the price of the first one.
type Upgrade struct {
	Name       string  `yaml:"name"`
	FlavorText string  `yaml:"flavor_text"`
	Desc       string  `yaml:"desc"`
	Multiplier float64 `yaml:"multiplier"`
	MaxCount   int     `yaml:"max_count"`
	BaseCost   int     `yaml:"base_cost"`
}

// Catalog holds every tag and upgrade the game offers, in display order.
type Catalog struct {
	Tags     []Tag     `yaml:"tags"`
	Upgrades []Upgrade `yaml:"upgrades"`
}

// FindTag looks up a catalog tag by name.
func (c *Catalog) FindTag(name string) (Tag, bool) {
	for _, t := range c.Tags {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

// FindUpgrade looks up a catalog upgrade by name.
func (c *Catalog) FindUpgrade(name string) (Upgrade, bool) {
	for _, u := range c.Upgrades {
		if u.Name == name {
			return u, true
		}
	}
	return Upgrade{}, false
}
