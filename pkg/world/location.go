package world

import (
	"slices"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/item"
)

// Location is a node in the location graph.
type Location struct {
	Name        string      // Also the key in the world's location map.
	Description string      // Mutable; some interactions append to it.
	Connections []string    // One-directional exits, in authored order.
	Items       []item.Item // Items lying here.

	// Lit is transient and never persisted.
	Lit bool
}

// NewLocation creates a location with the given exits.
func NewLocation(name, description string, connections ...string) *Location {
	return &Location{
		Name:        name,
		Description: description,
		Connections: slices.Clone(connections),
		Items:       make([]item.Item, 0),
	}
}

// ConnectsTo reports whether name is one of this location's exits.
func (l *Location) ConnectsTo(name string) bool {
	return slices.Contains(l.Connections, name)
}

// AddConnection adds an exit if it is not already present.
func (l *Location) AddConnection(name string) {
	if !l.ConnectsTo(name) {
		l.Connections = append(l.Connections, name)
	}
}

// RemoveConnection removes an exit and reports whether it existed.
func (l *Location) RemoveConnection(name string) bool {
	i := slices.Index(l.Connections, name)
	if i < 0 {
		return false
	}
	l.Connections = slices.Delete(l.Connections, i, i+1)
	return true
}

func (l *Location) AddItem(it item.Item) {
	l.Items = append(l.Items, it)
}

// RemoveItem takes the first item matching name, ignoring case.
func (l *Location) RemoveItem(name string) (item.Item, bool) {
	i := item.Index(l.Items, name)
	if i < 0 {
		return item.Item{}, false
	}
	removed := l.Items[i]
	l.Items = slices.Delete(l.Items, i, i+1)
	return removed, true
}

func (l *Location) Item(name string) (item.Item, bool) {
	i := item.Index(l.Items, name)
	if i < 0 {
		return item.Item{}, false
	}
	return l.Items[i], true
}

func (l *Location) HasItem(name string) bool {
	return item.Index(l.Items, name) >= 0
}

// Light marks the location lit and appends note to its description unless
// the description already ends with it, as it does after a reload. It returns
// false if it was already lit.
func (l *Location) Light(note string) bool {
	if l.Lit {
		return false
	}
	l.Lit = true
	if note != "" && !strings.HasSuffix(l.Description, note) {
		l.Description += " " + note
	}
	return true
}
