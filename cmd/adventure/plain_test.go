package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/content"
	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/save"
)

func testOptions(saves *save.Manager) game.Options {
	return game.Options{
		PlayerName: "Kevin",
		Dice:       dice.NewSeeded(3),
		Saves:      saves,
		Logger:     slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})),
	}
}

func TestRunPlain_QuitEndsGame(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("look\ngo forest\nquit\nlook\n")

	err := runPlain(context.Background(), content.MustDefault(), testOptions(nil), in, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), intro)
	assert.Contains(t, out.String(), "=== Forest ===")
	assert.Contains(t, out.String(), "Thanks for playing!")
}

func TestRunPlain_EndOfInput(t *testing.T) {
	var out bytes.Buffer

	err := runPlain(context.Background(), content.MustDefault(), testOptions(nil), strings.NewReader("status\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Health: 100 | Inventory: empty | Gold: 100")
}

func TestRunPlain_OffersResume(t *testing.T) {
	pack := content.MustDefault()
	opts := testOptions(save.NewManager(save.NewMockStore(), pack.Catalog, nil))

	earlier := game.NewSession(pack, opts)
	require.NoError(t, earlier.Move("Mountain"))
	name, err := earlier.Save(context.Background())
	require.NoError(t, err)

	var out bytes.Buffer
	err = runPlain(context.Background(), pack, opts, strings.NewReader("y\nquit\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Continue your last adventure ("+name+")?")
	assert.Contains(t, out.String(), "Game loaded from "+name+".")
	assert.Contains(t, out.String(), "=== Mountain ===")
}
