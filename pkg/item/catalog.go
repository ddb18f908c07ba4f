package item

import (
	"fmt"
	"strings"
)

// UnknownDescription is given to items the catalog has never heard of.
const UnknownDescription = "A mysterious item."

// Definition is the catalog entry for one kind of item.
type Definition struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Use         Effect `yaml:"use,omitempty"`
	Heal        int    `yaml:"heal,omitempty"`       // eat / risky_food heal amount
	Damage      int    `yaml:"damage,omitempty"`     // risky_food damage amount
	RiskPercent int    `yaml:"risk,omitempty"`       // risky_food chance of damage
	Consumable  bool   `yaml:"consumable,omitempty"` // removed from inventory once used
	Value       int    `yaml:"value,omitempty"`      // gold a merchant pays for it
	Price       int    `yaml:"price,omitempty"`      // village shop price, 0 if not sold
}

// Catalog resolves item names to definitions. It replaces any global item
// table: build one at startup and pass it to whoever creates items.
type Catalog struct {
	defs  map[string]Definition
	order []string
}

// NewCatalog validates the definitions and indexes them by lowercase name.
func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		key := strings.ToLower(strings.TrimSpace(d.Name))
		if key == "" {
			return nil, fmt.Errorf("item definition with empty name")
		}
		if _, dup := c.defs[key]; dup {
			return nil, fmt.Errorf("duplicate item definition %q", d.Name)
		}
		if d.Use == EffectRiskyFood && (d.RiskPercent < 0 || d.RiskPercent > 100) {
			return nil, fmt.Errorf("item %q: risk must be within 0-100, got %d", d.Name, d.RiskPercent)
		}
		if d.Price < 0 || d.Value < 0 {
			return nil, fmt.Errorf("item %q: price and value must not be negative", d.Name)
		}
		c.defs[key] = d
		c.order = append(c.order, d.Name)
	}
	return c, nil
}

// Lookup finds a definition by name, ignoring case.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	d, ok := c.defs[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Create returns a fresh item with the catalog description and use tag.
func (c *Catalog) Create(name string) Item {
	d, ok := c.Lookup(name)
	if !ok {
		return Item{Name: name, Description: UnknownDescription}
	}
	return Item{Name: d.Name, Description: d.Description, Effect: d.Use}
}

// Rebind rebuilds an item read from a save. The stored description wins; the
// use tag always comes from the catalog since behavior is never persisted.
func (c *Catalog) Rebind(name, description string) Item {
	it := c.Create(name)
	it.Name = name
	if description != "" {
		it.Description = description
	}
	return it
}

// ShopItems returns the definitions with a shop price, in catalog order.
func (c *Catalog) ShopItems() []Definition {
	var out []Definition
	for _, name := range c.order {
		d := c.defs[strings.ToLower(name)]
		if d.Price > 0 {
			out = append(out, d)
		}
	}
	return out
}

// Names lists every catalog item in declaration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
