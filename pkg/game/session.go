// Package game ties the player, the world and the interaction registry into
// a session driven one text command at a time.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/content"
	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/interact"
	"github.com/jwebster45206/adventure-engine/pkg/item"
	"github.com/jwebster45206/adventure-engine/pkg/save"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// DefaultPlayerName is used when a new game is started without a name.
const DefaultPlayerName = "Kevin"

// Session is one running game. It owns the player and the world; neither
// owns the other.
type Session struct {
	ID        uuid.UUID
	Player    *actor.Player
	World     *world.World
	Dice      *dice.Engine
	Items     *item.Catalog
	Behaviors *interact.Registry
	Saves     *save.Manager // nil disables save and load
	IO        interact.Prompter
	Logger    *slog.Logger

	// Encounters enables random events on the road after each move.
	Encounters bool
	// LastSave is the file most recently saved or loaded.
	LastSave string
}

// Options configures NewSession. Zero values get defaults.
type Options struct {
	ID         uuid.UUID
	PlayerName string
	Dice       *dice.Engine
	Behaviors  *interact.Registry
	Saves      *save.Manager
	IO         interact.Prompter
	Logger     *slog.Logger
	Encounters bool
}

// Result reports what a command did.
type Result struct {
	Command CommandType
	OK      bool // the command succeeded
	Quit    bool // the player asked to leave
	Dead    bool // the player has no health left
}

// NewSession starts a new game from the content pack.
func NewSession(pack *content.Pack, opts Options) *Session {
	if opts.ID == uuid.Nil {
		opts.ID = uuid.New()
	}
	if opts.PlayerName == "" {
		opts.PlayerName = DefaultPlayerName
	}
	if opts.Dice == nil {
		opts.Dice = dice.NewSeeded(0)
	}
	if opts.Behaviors == nil {
		opts.Behaviors = interact.DefaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	player, w := pack.NewGame(opts.PlayerName)
	return &Session{
		ID:         opts.ID,
		Player:     player,
		World:      w,
		Dice:       opts.Dice,
		Items:      pack.Catalog,
		Behaviors:  opts.Behaviors,
		Saves:      opts.Saves,
		IO:         opts.IO,
		Logger:     opts.Logger,
		Encounters: opts.Encounters,
	}
}

func (s *Session) env() *interact.Env {
	return &interact.Env{
		Player: s.Player,
		World:  s.World,
		Dice:   s.Dice,
		Items:  s.Items,
		IO:     s.IO,
		Logger: s.Logger,
	}
}

func (s *Session) say(format string, args ...any) {
	s.IO.Say(fmt.Sprintf(format, args...))
}

var titleCaser = cases.Title(language.English)

// resolveLocation maps player input such as "forest" to a location name.
func (s *Session) resolveLocation(input string) string {
	input = strings.TrimSpace(input)
	for _, name := range s.World.AllLocationNames() {
		if strings.EqualFold(name, input) {
			return name
		}
	}
	return titleCaser.String(strings.ToLower(input))
}

// Describe returns the current location's description with its items and
// exits.
func (s *Session) Describe() string {
	loc := s.World.Current()
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n%s", loc.Name, loc.Description)
	if len(loc.Items) > 0 {
		fmt.Fprintf(&b, "\nYou see: %s", strings.Join(item.Names(loc.Items), ", "))
	}
	if exits := s.World.AvailableLocations(); len(exits) > 0 {
		fmt.Fprintf(&b, "\nYou can go to: %s", strings.Join(exits, ", "))
	}
	return b.String()
}

// Move travels to a connected location. The error wraps
// world.ErrLocationNotAccessible if target is not an exit.
func (s *Session) Move(target string) error {
	name := s.resolveLocation(target)
	if !s.World.ChangeLocation(name) {
		return fmt.Errorf("%w: %s", world.ErrLocationNotAccessible, name)
	}
	s.Player.MoveTo(s.World.CurrentLocation)
	s.Logger.Debug("player moved", "location", name)
	return nil
}

// PickUp moves an item from the current location into the inventory.
func (s *Session) PickUp(name string) (item.Item, error) {
	it, ok := s.World.Current().RemoveItem(name)
	if !ok {
		return item.Item{}, fmt.Errorf("%w: %s", actor.ErrItemNotFound, name)
	}
	s.Player.AddItem(it)
	return it, nil
}

// Drop leaves a carried item at the current location.
func (s *Session) Drop(name string) (item.Item, error) {
	it, ok := s.Player.RemoveItem(name)
	if !ok {
		return item.Item{}, fmt.Errorf("%w: %s", actor.ErrItemNotFound, name)
	}
	s.World.Current().AddItem(it)
	return it, nil
}

// Examine finds an item in the inventory or at the current location.
func (s *Session) Examine(name string) (item.Item, error) {
	if it, ok := s.Player.Item(name); ok {
		return it, nil
	}
	if it, ok := s.World.Current().Item(name); ok {
		return it, nil
	}
	return item.Item{}, fmt.Errorf("%w: %s", actor.ErrItemNotFound, name)
}

// Save writes the game through the save manager and returns the filename.
func (s *Session) Save(ctx context.Context) (string, error) {
	if s.Saves == nil {
		return "", fmt.Errorf("%w: saving is disabled", save.ErrSaveIO)
	}
	name, err := s.Saves.Save(ctx, s.Player, s.World)
	if err != nil {
		return "", err
	}
	s.LastSave = name
	return name, nil
}

// Load replaces the player and world with a saved game. Location behavior
// is looked up by name, so nothing needs rebinding.
func (s *Session) Load(ctx context.Context, filename string) error {
	if s.Saves == nil {
		return fmt.Errorf("%w: loading is disabled", save.ErrSaveIO)
	}
	p, w, err := s.Saves.Load(ctx, filename)
	if err != nil {
		return err
	}
	s.Player, s.World = p, w
	s.LastSave = save.Normalize(filename)
	return nil
}

// Resume loads the most recent save and returns its filename.
func (s *Session) Resume(ctx context.Context) (string, error) {
	if s.Saves == nil {
		return "", fmt.Errorf("%w: loading is disabled", save.ErrSaveIO)
	}
	p, w, name, err := s.Saves.LoadMostRecent(ctx)
	if err != nil {
		return "", err
	}
	s.Player, s.World = p, w
	s.LastSave = name
	return name, nil
}
