// Package interact implements per-location behavior, item use and random
// travel encounters.
//
// Behavior is never stored with a location. A Registry maps location names to
// behaviors and is consulted each time the player interacts, so a world loaded
// from a save gets the same behavior as a freshly built one.
package interact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/item"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Canonical location names with built-in behavior.
const (
	VillageName  = "Village"
	ForestName   = "Forest"
	MountainName = "Mountain"
	CaveName     = "Cave"
)

// Prompter is the blocking text I/O a behavior talks through.
type Prompter interface {
	// Say shows a line of narration.
	Say(msg string)
	// Ask shows a prompt and blocks until the player answers.
	Ask(ctx context.Context, prompt string) (string, error)
}

// Env is everything a behavior may read or mutate.
type Env struct {
	Player *actor.Player
	World  *world.World
	Dice   *dice.Engine
	Items  *item.Catalog
	IO     Prompter
	Logger *slog.Logger
}

func (e *Env) log() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

func (e *Env) say(format string, args ...any) {
	if len(args) == 0 {
		e.IO.Say(format)
		return
	}
	e.IO.Say(fmt.Sprintf(format, args...))
}

// draw rolls a table that is declared in code.
func (e *Env) draw(name string, t dice.Table) string {
	outcome := e.Dice.MustDraw(t)
	e.log().Debug("event drawn", "table", name, "outcome", outcome)
	return outcome
}

// confirm asks a yes/no question. Anything but "y" or "yes" is a no.
func (e *Env) confirm(ctx context.Context, prompt string) (bool, error) {
	answer, err := e.IO.Ask(ctx, prompt)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// give creates an item from the catalog and hands it to the player.
func (e *Env) give(name string) item.Item {
	it := e.Items.Create(name)
	e.Player.AddItem(it)
	return it
}

// Behavior is the interaction for one kind of location. Interact runs the
// location's menu until the player leaves or dies. It returns an error only
// when the prompter fails.
type Behavior interface {
	Interact(ctx context.Context, env *Env) error
}

// BehaviorFunc adapts a function to Behavior.
type BehaviorFunc func(ctx context.Context, env *Env) error

func (f BehaviorFunc) Interact(ctx context.Context, env *Env) error {
	return f(ctx, env)
}

// Registry resolves a location name to its behavior.
type Registry struct {
	behaviors map[string]Behavior
}

func NewRegistry() *Registry {
	return &Registry{behaviors: make(map[string]Behavior)}
}

// DefaultRegistry knows the four canonical locations.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(VillageName, Village{})
	r.Register(ForestName, Forest{})
	r.Register(MountainName, Mountain{})
	r.Register(CaveName, Cave{})
	return r
}

// Register binds a behavior to a location name, ignoring case.
func (r *Registry) Register(name string, b Behavior) {
	r.behaviors[strings.ToLower(name)] = b
}

func (r *Registry) Lookup(name string) (Behavior, bool) {
	b, ok := r.behaviors[strings.ToLower(name)]
	return b, ok
}

// Interact runs the behavior of the current location. It returns false if
// the location has none.
func (r *Registry) Interact(ctx context.Context, env *Env) (bool, error) {
	loc := env.World.Current()
	b, ok := r.Lookup(loc.Name)
	if !ok {
		env.say("There's nothing special to interact with in the %s.", loc.Name)
		return false, nil
	}
	env.log().Debug("interaction started", "location", loc.Name)
	if err := b.Interact(ctx, env); err != nil {
		return false, err
	}
	env.log().Debug("interaction ended", "location", loc.Name, "health", env.Player.Health())
	return true, nil
}
