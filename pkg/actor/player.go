package actor

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jwebster45206/d20"

	"github.com/jwebster45206/adventure-engine/pkg/item"
)

const (
	MaxHealth        = 100
	StartingGold     = 100
	DefaultAttribute = 10
	MinAttribute     = 1
)

// Attribute names tracked for every player.
const (
	Agility    = "agility"
	Perception = "perception"
	Strength   = "strength"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrInsufficientGold = errors.New("insufficient gold")
)

// Player is the player character. Gold, items and location live here; health
// and attributes are kept on a d20.Actor rebuilt from plain values on load.
type Player struct {
	Name      string
	Gold      int
	Inventory []item.Item
	Location  string
	Actor     *d20.Actor

	attributes []string
}

// NewPlayer creates a player with full health, starting gold and default
// attributes.
func NewPlayer(name, location string) *Player {
	p, err := Restore(name, location, MaxHealth, StartingGold, DefaultAttributes())
	if err != nil {
		// MaxHealth is positive, so building the actor cannot fail.
		panic(fmt.Sprintf("actor: %v", err))
	}
	return p
}

// Restore rebuilds a player from saved values. Attributes below MinAttribute
// are raised to it.
func Restore(name, location string, health, gold int, attrs map[string]int) (*Player, error) {
	if gold < 0 {
		return nil, fmt.Errorf("gold cannot be negative, got %d", gold)
	}

	clamped := make(map[string]int, len(attrs))
	for k, v := range attrs {
		clamped[strings.ToLower(k)] = max(MinAttribute, v)
	}

	a, err := d20.NewActor(name).
		WithHP(MaxHealth).
		WithAttributes(clamped).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build actor: %w", err)
	}
	if health != MaxHealth {
		if err := a.SetHP(health); err != nil {
			return nil, fmt.Errorf("failed to set health: %w", err)
		}
	}

	names := slices.Sorted(maps.Keys(clamped))
	return &Player{
		Name:       name,
		Gold:       gold,
		Inventory:  make([]item.Item, 0),
		Location:   location,
		Actor:      a,
		attributes: names,
	}, nil
}

// DefaultAttributes returns a fresh attribute map with starting values.
func DefaultAttributes() map[string]int {
	return map[string]int{
		Agility:    DefaultAttribute,
		Perception: DefaultAttribute,
		Strength:   DefaultAttribute,
	}
}

// AddItem appends an item to the inventory.
func (p *Player) AddItem(it item.Item) {
	p.Inventory = append(p.Inventory, it)
}

// RemoveItem removes the first item matching name, ignoring case.
func (p *Player) RemoveItem(name string) (item.Item, bool) {
	i := item.Index(p.Inventory, name)
	if i < 0 {
		return item.Item{}, false
	}
	removed := p.Inventory[i]
	p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
	return removed, true
}

// Item returns the first carried item matching name without removing it.
func (p *Player) Item(name string) (item.Item, bool) {
	i := item.Index(p.Inventory, name)
	if i < 0 {
		return item.Item{}, false
	}
	return p.Inventory[i], true
}

// HasItem reports whether an item called name is carried, ignoring case.
func (p *Player) HasItem(name string) bool {
	return item.Index(p.Inventory, name) >= 0
}

// Health returns current health.
func (p *Player) Health() int {
	return p.Actor.HP()
}

// SetHealth sets health directly, clamped to 0..MaxHealth.
func (p *Player) SetHealth(hp int) {
	if cur := p.Actor.HP(); hp > cur {
		p.Actor.AddHP(hp - cur)
	} else {
		p.Actor.SubHP(cur - hp)
	}
}

// Heal increases health, capped at MaxHealth. A dead player does not heal.
func (p *Player) Heal(n int) {
	if n <= 0 || !p.IsAlive() {
		return
	}
	p.Actor.AddHP(n)
}

// HealFully restores health to MaxHealth.
func (p *Player) HealFully() {
	if p.IsAlive() {
		p.Actor.ResetHP()
	}
}

// Damage reduces health, never below 0, and reports whether the player is
// still alive.
func (p *Player) Damage(n int) bool {
	if n > 0 {
		p.Actor.SubHP(n)
	}
	return p.IsAlive()
}

// IsAlive returns true while health is above 0.
func (p *Player) IsAlive() bool {
	return !p.Actor.IsKnockedOut()
}

// SpendGold debits gold only if the balance covers it. On failure nothing
// changes and the error wraps ErrInsufficientGold.
func (p *Player) SpendGold(amount int) error {
	if amount < 0 {
		return fmt.Errorf("cannot spend a negative amount: %d", amount)
	}
	if p.Gold < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientGold, p.Gold, amount)
	}
	p.Gold -= amount
	return nil
}

// TakeGold removes up to amount gold, never more than the balance, and
// returns how much was taken.
func (p *Player) TakeGold(amount int) int {
	taken := min(max(amount, 0), p.Gold)
	p.Gold -= taken
	return taken
}

// AddGold credits gold. Negative amounts are ignored.
func (p *Player) AddGold(amount int) {
	if amount > 0 {
		p.Gold += amount
	}
}

// Attribute returns the value of a named attribute, or 0 if unknown.
func (p *Player) Attribute(name string) int {
	v, _ := p.Actor.Attribute(name)
	return v
}

// Attributes returns a copy of every attribute the player has.
func (p *Player) Attributes() map[string]int {
	out := make(map[string]int, len(p.attributes))
	for _, name := range p.attributes {
		out[name] = p.Attribute(name)
	}
	return out
}

// ModifyAttribute adds delta to a known attribute, never going below
// MinAttribute. It returns false for attributes the player does not have.
func (p *Player) ModifyAttribute(name string, delta int) bool {
	if !p.Actor.HasAttribute(name) {
		return false
	}
	p.Actor.SetAttribute(name, max(MinAttribute, p.Attribute(name)+delta))
	return true
}

// MoveTo records the player's current location.
func (p *Player) MoveTo(location string) {
	p.Location = location
}

// FormatInventory lists carried item names, or "empty".
func (p *Player) FormatInventory() string {
	if len(p.Inventory) == 0 {
		return "empty"
	}
	return strings.Join(item.Names(p.Inventory), ", ")
}

// Status is the one-line status summary shown to the player.
func (p *Player) Status() string {
	return fmt.Sprintf("Health: %d | Inventory: %s | Gold: %d", p.Health(), p.FormatInventory(), p.Gold)
}
