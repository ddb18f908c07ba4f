package item

import (
	"fmt"
	"strings"
)

// Effect tags which entry of the item-use table applies when an item is used.
type Effect string

const (
	EffectNone        Effect = ""
	EffectRevealExits Effect = "reveal_exits" // lists reachable locations
	EffectEat         Effect = "eat"          // heals a fixed amount
	EffectRiskyFood   Effect = "risky_food"   // heals or hurts on a weighted draw
	EffectLight       Effect = "light"        // lights dark locations
	EffectAppraise    Effect = "appraise"     // can be sold to a merchant
)

// Item is a value owned by exactly one location or inventory.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Effect      Effect `json:"-"`
}

// Describe returns the description, or a generic line if there is none.
func (i Item) Describe() string {
	if i.Description == "" {
		return fmt.Sprintf("A %s. Nothing special about it.", i.Name)
	}
	return i.Description
}

// Is reports whether the item has the given name, ignoring case.
func (i Item) Is(name string) bool {
	return strings.EqualFold(i.Name, strings.TrimSpace(name))
}

// Index returns the position of the first item called name, or -1.
func Index(items []Item, name string) int {
	for i, it := range items {
		if it.Is(name) {
			return i
		}
	}
	return -1
}

// Names returns the item names in order.
func Names(items []Item) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}
