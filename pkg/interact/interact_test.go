package interact

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/content"
	"github.com/jwebster45206/adventure-engine/pkg/dice"
)

// setupEnv builds a fresh default game positioned at location.
func setupEnv(t *testing.T, location string, d *dice.Engine, answers ...string) (*Env, *MockPrompter) {
	t.Helper()
	pack := content.MustDefault()
	player, w := pack.NewGame("Kevin")
	if location != w.CurrentLocation {
		_, ok := w.Location(location)
		require.True(t, ok, "unknown location %s", location)
		w.CurrentLocation = location
		player.MoveTo(location)
	}
	if d == nil {
		d = dice.NewSeeded(1)
	}
	prompter := NewMockPrompter(answers...)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return &Env{
		Player: player,
		World:  w,
		Dice:   d,
		Items:  pack.Catalog,
		IO:     prompter,
		Logger: logger,
	}, prompter
}

func TestRegistry_Lookup(t *testing.T) {
	r := DefaultRegistry()

	for _, name := range []string{"Village", "forest", "MOUNTAIN", "Cave"} {
		_, ok := r.Lookup(name)
		assert.True(t, ok, "expected behavior for %s", name)
	}
	_, ok := r.Lookup("Swamp")
	assert.False(t, ok)
}

func TestRegistry_InteractWithoutBehavior(t *testing.T) {
	env, out := setupEnv(t, "Village", nil)
	r := NewRegistry()

	handled, err := r.Interact(context.Background(), env)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Contains(t, out.Output(), "There's nothing special to interact with in the Village.")
}

func TestRegistry_CustomBehavior(t *testing.T) {
	env, out := setupEnv(t, "Village", nil)
	r := NewRegistry()
	r.Register("village", BehaviorFunc(func(ctx context.Context, env *Env) error {
		env.IO.Say("custom")
		return nil
	}))

	handled, err := r.Interact(context.Background(), env)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, []string{"custom"}, out.Lines())
}

func TestMenu_InvalidChoiceReprompts(t *testing.T) {
	env, out := setupEnv(t, "Village", nil, "9", "abc", "", "5")

	err := Village{}.Interact(context.Background(), env)
	require.NoError(t, err)

	invalid := 0
	for _, line := range out.Lines() {
		if line == "Invalid choice. Please try again." {
			invalid++
		}
	}
	assert.Equal(t, 3, invalid)
	assert.Contains(t, out.Output(), "You decide to leave the village.")
	assert.Len(t, out.Prompts(), 4)
	assert.Equal(t, "Enter your choice (1-5): ", out.Prompts()[0])
}

func TestMenu_PrompterErrorPropagates(t *testing.T) {
	env, _ := setupEnv(t, "Forest", nil)

	err := Forest{}.Interact(context.Background(), env)
	assert.ErrorIs(t, err, io.EOF)
}

func TestMenu_CancelledContext(t *testing.T) {
	env, _ := setupEnv(t, "Forest", nil, "5")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Forest{}.Interact(ctx, env)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCave_ExploreTableFrequencies(t *testing.T) {
	// Without a torch the hazard rate converges to 40%, with one to 20%.
	cases := []struct {
		lit    bool
		hazard float64
	}{
		{lit: false, hazard: 0.40},
		{lit: true, hazard: 0.20},
	}
	for _, tc := range cases {
		engine := dice.NewSeeded(99)
		const n = 10000
		hits := 0
		for i := 0; i < n; i++ {
			if engine.MustDraw(ExploreTable(tc.lit)) == "hazard" {
				hits++
			}
		}
		assert.InDelta(t, tc.hazard, float64(hits)/n, 0.025, "lit=%v", tc.lit)
	}
}

func TestCave_TablesAreValid(t *testing.T) {
	for _, tbl := range []dice.Table{CaveExploreLit, CaveExploreDark, CaveSearchLit, CaveSearchDark, TravelTable} {
		require.NoError(t, tbl.Validate())
		assert.Equal(t, 100, tbl.Total())
	}
}
