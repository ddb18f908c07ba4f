package game

import (
	"context"
	"errors"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/interact"
	"github.com/jwebster45206/adventure-engine/pkg/save"
)

// ProcessCommand runs one line of player input. Game outcomes such as a
// blocked path or a missing item are reported to the player and in the
// Result; the error is only set when the prompter fails mid-interaction.
func (s *Session) ProcessCommand(ctx context.Context, text string) (Result, error) {
	cmd, arg := ParseCommand(text)
	res := Result{Command: cmd}
	s.Logger.Debug("command received", "command", string(cmd), "arg", arg)

	if !s.Player.IsAlive() {
		switch cmd {
		case CmdHelp, CmdLoad, CmdSaves, CmdQuit:
		default:
			s.say("You have died. Load a saved game or quit.")
			res.Dead = true
			return res, nil
		}
	}

	var err error
	switch cmd {
	case CmdHelp:
		s.say(HelpText)
		res.OK = true
	case CmdLook:
		s.IO.Say(s.Describe())
		res.OK = true
	case CmdInventory:
		s.say("Inventory: %s", s.Player.FormatInventory())
		res.OK = true
	case CmdStatus:
		s.IO.Say(s.Player.Status())
		res.OK = true
	case CmdWeather:
		s.IO.Say(s.World.Weather.Describe())
		res.OK = true
	case CmdMove:
		res.OK, err = s.handleMove(ctx, arg)
	case CmdPickup:
		res.OK = s.handlePickUp(arg)
	case CmdDrop:
		res.OK = s.handleDrop(arg)
	case CmdExamine:
		res.OK = s.handleExamine(arg)
	case CmdUse:
		res.OK, err = s.handleUse(ctx, arg)
	case CmdInteract:
		res.OK, err = s.Behaviors.Interact(ctx, s.env())
	case CmdSave:
		res.OK = s.handleSave(ctx)
	case CmdLoad:
		res.OK = s.handleLoad(ctx, arg)
	case CmdSaves:
		res.OK = s.handleSaves(ctx)
	case CmdQuit:
		s.say("Thanks for playing!")
		res.OK, res.Quit = true, true
	default:
		if strings.TrimSpace(text) != "" {
			s.say("I don't understand that command. Type 'help' for a list of commands.")
		}
	}
	if err != nil {
		return res, err
	}

	if !s.Player.IsAlive() && !res.Quit {
		res.Dead = true
		if cmd != CmdLoad && cmd != CmdSaves && cmd != CmdHelp {
			s.say("You have died. Game over.")
			s.Logger.Info("player died", "location", s.World.CurrentLocation)
		}
	}
	return res, nil
}

func (s *Session) handleMove(ctx context.Context, arg string) (bool, error) {
	if arg == "" {
		s.say("Where do you want to go? You can go to: %s", strings.Join(s.World.AvailableLocations(), ", "))
		return false, nil
	}
	if err := s.Move(arg); err != nil {
		s.say("You can't go to %s from here.", s.resolveLocation(arg))
		return false, nil
	}
	s.say("You travel to the %s.", s.World.CurrentLocation)
	if s.Encounters {
		if err := interact.TravelEvent(ctx, s.env()); err != nil {
			return true, err
		}
	}
	s.IO.Say(s.Describe())
	return true, nil
}

func (s *Session) handlePickUp(arg string) bool {
	if arg == "" {
		s.say("Pick up what?")
		return false
	}
	it, err := s.PickUp(arg)
	if err != nil {
		s.say("There is no %s here.", arg)
		return false
	}
	s.say("You picked up the %s.", it.Name)
	return true
}

func (s *Session) handleDrop(arg string) bool {
	if arg == "" {
		s.say("Drop what?")
		return false
	}
	it, err := s.Drop(arg)
	if err != nil {
		s.say("You don't have %s in your inventory.", arg)
		return false
	}
	s.say("You dropped the %s.", it.Name)
	return true
}

func (s *Session) handleExamine(arg string) bool {
	if arg == "" {
		s.say("Examine what?")
		return false
	}
	it, err := s.Examine(arg)
	if err != nil {
		s.say("You don't see %s here.", arg)
		return false
	}
	s.say("%s: %s", it.Name, it.Describe())
	return true
}

func (s *Session) handleUse(ctx context.Context, arg string) (bool, error) {
	if arg == "" {
		s.say("Use what?")
		return false, nil
	}
	return interact.Use(ctx, s.env(), arg)
}

func (s *Session) handleSave(ctx context.Context) bool {
	name, err := s.Save(ctx)
	if err != nil {
		s.say("The game could not be saved.")
		return false
	}
	s.say("Game saved as %s.", name)
	return true
}

func (s *Session) handleLoad(ctx context.Context, arg string) bool {
	if arg == "" {
		s.say("Load which save? Type 'saves' to list them.")
		return false
	}
	err := s.Load(ctx, arg)
	switch {
	case err == nil:
		s.say("Game loaded from %s.", arg)
		s.IO.Say(s.Describe())
		return true
	case errors.Is(err, save.ErrNotFound):
		s.say("There is no save called %s.", arg)
	case errors.Is(err, save.ErrCorruptSave):
		s.say("The save %s is damaged and cannot be loaded.", arg)
	default:
		s.say("The save %s could not be read.", arg)
	}
	return false
}

func (s *Session) handleSaves(ctx context.Context) bool {
	if s.Saves == nil {
		s.say("Saving is disabled.")
		return false
	}
	names, err := s.Saves.ListSaves(ctx)
	if err != nil {
		s.say("Saved games could not be listed.")
		return false
	}
	if len(names) == 0 {
		s.say("No saved games.")
		return true
	}
	s.say("Saved games:\n  %s", strings.Join(names, "\n  "))
	return true
}
