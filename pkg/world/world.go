package world

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jwebster45206/adventure-engine/pkg/dice"
)

var ErrLocationNotAccessible = errors.New("location not accessible")

// World-state flags set by interactions. The state map accepts any key, these
// are the ones the built-in locations use.
const (
	FlagHermitQuestAccepted      = "hermit_quest_accepted"
	FlagHermitQuestCompleted     = "hermit_quest_completed"
	FlagMountainPeakReached      = "mountain_peak_reached"
	FlagForestClearingDiscovered = "forest_clearing_discovered"
	FlagForestRiverDiscovered    = "forest_river_discovered"
	FlagUndergroundLake          = "underground_lake_discovered"
	FlagCaveCreatureHeard        = "cave_creature_heard"
	FlagHiddenPassage            = "hidden_passage_discovered"
	FlagAncientWriting           = "ancient_writing_discovered"
)

// World is the location graph plus global state.
type World struct {
	CurrentLocation string
	Locations       map[string]*Location
	Weather         Weather
	State           map[string]bool

	order []string
}

// New creates an empty world with clear weather.
func New() *World {
	return &World{
		Locations: make(map[string]*Location),
		Weather:   Clear,
		State:     make(map[string]bool),
	}
}

// AddLocation inserts loc keyed by its name, replacing any existing entry.
func (w *World) AddLocation(loc *Location) {
	if _, exists := w.Locations[loc.Name]; !exists {
		w.order = append(w.order, loc.Name)
	}
	w.Locations[loc.Name] = loc
}

// Location looks a location up by name.
func (w *World) Location(name string) (*Location, bool) {
	loc, ok := w.Locations[name]
	return loc, ok
}

// Current returns the location the player is in. The current location must
// always be in the map; a missing key is a programming error and panics.
func (w *World) Current() *Location {
	loc, ok := w.Locations[w.CurrentLocation]
	if !ok {
		panic(fmt.Sprintf("world: current location %q is not in the location map", w.CurrentLocation))
	}
	return loc
}

// IsAccessible reports whether target is an exit of the current location.
func (w *World) IsAccessible(target string) bool {
	return w.Current().ConnectsTo(target)
}

// AvailableLocations returns the exits of the current location.
func (w *World) AvailableLocations() []string {
	return slices.Clone(w.Current().Connections)
}

// AllLocationNames returns every location name in insertion order.
func (w *World) AllLocationNames() []string {
	names := make([]string, 0, len(w.Locations))
	for _, name := range w.order {
		if _, ok := w.Locations[name]; ok {
			names = append(names, name)
		}
	}
	// Locations assigned to the map directly are listed after, sorted.
	var extra []string
	for name := range w.Locations {
		if !slices.Contains(names, name) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	return append(names, extra...)
}

// ChangeLocation moves to target if it is an exit of the current location.
// On false nothing changes.
func (w *World) ChangeLocation(target string) bool {
	if !w.IsAccessible(target) {
		return false
	}
	w.CurrentLocation = target
	return true
}

// SetFlag records a one-shot event. Flags are never cleared by the game.
func (w *World) SetFlag(name string) {
	w.State[name] = true
}

// Flag reports whether a state flag has been set.
func (w *World) Flag(name string) bool {
	return w.State[name]
}

// StateSnapshot returns a copy of the state map.
func (w *World) StateSnapshot() map[string]bool {
	return maps.Clone(w.State)
}

// ChangeWeather rolls a new weather condition and returns it.
func (w *World) ChangeWeather(d *dice.Engine) Weather {
	w.Weather = RandomWeather(d)
	return w.Weather
}
