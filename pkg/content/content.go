// Package content holds the canonical world definition and builds new games
// from it.
package content

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/item"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

//go:embed world.yaml
var defaultWorld []byte

// LocationDef describes a location as authored.
type LocationDef struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Connections []string `yaml:"connections"`
	Items       []string `yaml:"items"`
}

// Definition is the parsed content file.
type Definition struct {
	Start     string            `yaml:"start"`
	Items     []item.Definition `yaml:"items"`
	Locations []LocationDef     `yaml:"locations"`
}

// Pack is validated content plus its item catalog.
type Pack struct {
	Def     Definition
	Catalog *item.Catalog
}

// Default parses the embedded world definition.
func Default() (*Pack, error) {
	return Parse(defaultWorld)
}

// MustDefault is Default for callers that cannot recover from broken
// embedded content, such as tests and program startup.
func MustDefault() *Pack {
	p, err := Default()
	if err != nil {
		panic(fmt.Sprintf("content: embedded world is invalid: %v", err))
	}
	return p
}

// Parse decodes and validates a YAML content file.
func Parse(data []byte) (*Pack, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	catalog, err := item.NewCatalog(def.Items)
	if err != nil {
		return nil, fmt.Errorf("invalid item catalog: %w", err)
	}

	p := &Pack{Def: def, Catalog: catalog}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that the start location exists and that every connection
// and starting item refers to something defined.
func (p *Pack) Validate() error {
	names := make([]string, 0, len(p.Def.Locations))
	for _, loc := range p.Def.Locations {
		if loc.Name == "" {
			return fmt.Errorf("location with empty name")
		}
		if slices.Contains(names, loc.Name) {
			return fmt.Errorf("duplicate location %q", loc.Name)
		}
		names = append(names, loc.Name)
	}

	if !slices.Contains(names, p.Def.Start) {
		return fmt.Errorf("start location %q is not defined", p.Def.Start)
	}

	for _, loc := range p.Def.Locations {
		for _, c := range loc.Connections {
			if !slices.Contains(names, c) {
				return fmt.Errorf("location %q connects to unknown location %q", loc.Name, c)
			}
		}
		for _, it := range loc.Items {
			if _, ok := p.Catalog.Lookup(it); !ok {
				return fmt.Errorf("location %q starts with unknown item %q", loc.Name, it)
			}
		}
	}
	return nil
}

// NewWorld builds a fresh world from the definition.
func (p *Pack) NewWorld() *world.World {
	w := world.New()
	for _, def := range p.Def.Locations {
		loc := world.NewLocation(def.Name, def.Description, def.Connections...)
		for _, name := range def.Items {
			loc.AddItem(p.Catalog.Create(name))
		}
		w.AddLocation(loc)
	}
	w.CurrentLocation = p.Def.Start
	return w
}

// NewGame creates a player and world together, with the player standing at
// the start location.
func (p *Pack) NewGame(playerName string) (*actor.Player, *world.World) {
	w := p.NewWorld()
	return actor.NewPlayer(playerName, w.CurrentLocation), w
}
