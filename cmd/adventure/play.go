package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/game"
)

const intro = "Welcome to the adventure! Type 'help' for a list of commands."

// play drives a session until the player quits or input ends. report is
// called after every command with the session's current state.
func play(ctx context.Context, s *game.Session, report func(*game.Session)) error {
	if err := offerResume(ctx, s); err != nil {
		return err
	}
	s.IO.Say(intro)
	s.IO.Say(s.Describe())
	report(s)

	for {
		line, err := s.IO.Ask(ctx, "> ")
		if err != nil {
			return err
		}
		res, err := s.ProcessCommand(ctx, line)
		if err != nil {
			return err
		}
		report(s)
		if res.Quit {
			return nil
		}
	}
}

func offerResume(ctx context.Context, s *game.Session) error {
	if s.Saves == nil {
		return nil
	}
	names, err := s.Saves.ListSaves(ctx)
	if err != nil || len(names) == 0 {
		return nil
	}
	answer, err := s.IO.Ask(ctx, fmt.Sprintf("Continue your last adventure (%s)? [y/n]: ", names[0]))
	if err != nil {
		return err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		return nil
	}
	name, err := s.Resume(ctx)
	if err != nil {
		s.IO.Say("That save could not be loaded. Starting a new game.")
		return nil
	}
	s.IO.Say(fmt.Sprintf("Game loaded from %s.", name))
	return nil
}
