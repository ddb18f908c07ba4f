// Package save converts a game to and from a plain JSON document and keeps
// those documents in a Store.
package save

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/item"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

var (
	ErrSaveIO      = errors.New("save i/o failed")
	ErrCorruptSave = errors.New("corrupt save")
	ErrNotFound    = errors.New("save not found")
)

// Document is the persisted shape of a game. It holds plain data only;
// location behavior is resolved by name when the game is played.
type Document struct {
	Player PlayerDoc `json:"player"`
	World  WorldDoc  `json:"world"`
}

type PlayerDoc struct {
	Name       string         `json:"name"`
	Health     int            `json:"health"`
	Inventory  []string       `json:"inventory"`
	Location   string         `json:"location"`
	Gold       int            `json:"gold"`
	Attributes map[string]int `json:"attributes"`
}

type WorldDoc struct {
	CurrentLocation string                 `json:"currentLocation"`
	Weather         string                 `json:"weather"`
	State           map[string]bool        `json:"state"`
	Locations       map[string]LocationDoc `json:"locations"`
}

type LocationDoc struct {
	Description string    `json:"description"`
	Connections []string  `json:"connections"`
	Items       []ItemDoc `json:"items"`
}

type ItemDoc struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Serialize snapshots the player and world. Transient location flags such
// as Lit are not part of the document.
func Serialize(p *actor.Player, w *world.World) Document {
	doc := Document{
		Player: PlayerDoc{
			Name:       p.Name,
			Health:     p.Health(),
			Inventory:  item.Names(p.Inventory),
			Location:   p.Location,
			Gold:       p.Gold,
			Attributes: p.Attributes(),
		},
		World: WorldDoc{
			CurrentLocation: w.CurrentLocation,
			Weather:         string(w.Weather),
			State:           w.StateSnapshot(),
			Locations:       make(map[string]LocationDoc, len(w.Locations)),
		},
	}
	if doc.Player.Attributes == nil {
		doc.Player.Attributes = map[string]int{}
	}
	if doc.World.State == nil {
		doc.World.State = map[string]bool{}
	}
	for name, loc := range w.Locations {
		items := make([]ItemDoc, 0, len(loc.Items))
		for _, it := range loc.Items {
			items = append(items, ItemDoc{Name: it.Name, Description: it.Description})
		}
		conns := slices.Clone(loc.Connections)
		if conns == nil {
			conns = []string{}
		}
		doc.World.Locations[name] = LocationDoc{
			Description: loc.Description,
			Connections: conns,
			Items:       items,
		}
	}
	return doc
}

// Validate checks the invariants a loaded game relies on. All problems are
// reported together, wrapped in ErrCorruptSave.
func (d Document) Validate() error {
	var errs []error
	p, w := d.Player, d.World

	if p.Name == "" {
		errs = append(errs, errors.New("player name is empty"))
	}
	if p.Health < 0 || p.Health > actor.MaxHealth {
		errs = append(errs, fmt.Errorf("player health %d outside 0-%d", p.Health, actor.MaxHealth))
	}
	if p.Gold < 0 {
		errs = append(errs, fmt.Errorf("player gold %d is negative", p.Gold))
	}
	if len(w.Locations) == 0 {
		errs = append(errs, errors.New("world has no locations"))
	}
	if _, ok := w.Locations[w.CurrentLocation]; !ok {
		errs = append(errs, fmt.Errorf("current location %q is not a known location", w.CurrentLocation))
	}
	if p.Location != "" && p.Location != w.CurrentLocation {
		errs = append(errs, fmt.Errorf("player location %q does not match current location %q", p.Location, w.CurrentLocation))
	}
	if w.Weather != "" {
		if _, err := world.ParseWeather(w.Weather); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(w.Locations)) {
		for _, c := range w.Locations[name].Connections {
			if _, ok := w.Locations[c]; !ok {
				errs = append(errs, fmt.Errorf("location %q connects to unknown location %q", name, c))
			}
		}
		for i, it := range w.Locations[name].Items {
			if it.Name == "" {
				errs = append(errs, fmt.Errorf("location %q item %d has no name", name, i))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrCorruptSave, errors.Join(errs...))
}

// Deserialize rebuilds a player and world from a document. Items get their
// use effect from the catalog; the stored description is kept. Locations are
// added in name order since the document does not record insertion order.
func Deserialize(doc Document, catalog *item.Catalog) (*actor.Player, *world.World, error) {
	if err := doc.Validate(); err != nil {
		return nil, nil, err
	}

	w := world.New()
	w.CurrentLocation = doc.World.CurrentLocation
	if doc.World.Weather != "" {
		w.Weather = world.Weather(doc.World.Weather)
	}
	maps.Copy(w.State, doc.World.State)

	for _, name := range slices.Sorted(maps.Keys(doc.World.Locations)) {
		ld := doc.World.Locations[name]
		loc := world.NewLocation(name, ld.Description, ld.Connections...)
		for _, it := range ld.Items {
			loc.AddItem(catalog.Rebind(it.Name, it.Description))
		}
		w.AddLocation(loc)
	}

	attrs := actor.DefaultAttributes()
	maps.Copy(attrs, doc.Player.Attributes)
	p, err := actor.Restore(doc.Player.Name, w.CurrentLocation, doc.Player.Health, doc.Player.Gold, attrs)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCorruptSave, err)
	}
	for _, name := range doc.Player.Inventory {
		p.AddItem(catalog.Create(name))
	}
	return p, w, nil
}
