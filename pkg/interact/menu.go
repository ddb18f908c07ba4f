package interact

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type action struct {
	label string
	run   func(ctx context.Context, env *Env) error
}

// menu is the shared sub-action loop. The only way out is the leave option,
// or the player dying along the way.
type menu struct {
	place    string
	leave    string
	farewell string
	actions  []action
}

func (m menu) run(ctx context.Context, env *Env) error {
	last := len(m.actions) + 1
	for env.Player.IsAlive() {
		env.say("\nWhat would you like to do in the %s?", m.place)
		for i, a := range m.actions {
			env.say("%d. %s", i+1, a.label)
		}
		env.say("%d. %s", last, m.leave)

		answer, err := env.IO.Ask(ctx, fmt.Sprintf("Enter your choice (1-%d): ", last))
		if err != nil {
			return err
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(answer))
		switch {
		case convErr != nil || choice < 1 || choice > last:
			env.say("Invalid choice. Please try again.")
		case choice == last:
			env.IO.Say(m.farewell)
			return nil
		default:
			if err := m.actions[choice-1].run(ctx, env); err != nil {
				return err
			}
		}
	}
	env.say("You collapse from your injuries.")
	return nil
}
