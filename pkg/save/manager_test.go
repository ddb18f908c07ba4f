package save

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/content"
)

var fixedTime = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func setupManager(t *testing.T) (*Manager, *MockStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store := NewMockStore()
	m := NewManager(store, content.MustDefault().Catalog, logger)
	m.SetClock(func() time.Time { return fixedTime })
	return m, store
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Kevin_20240309_140507.json", Filename("Kevin", fixedTime))
	assert.Equal(t, "Sir_Kevin_20240309_140507.json", Filename("Sir Kevin", fixedTime))
	assert.Equal(t, "a_b_20240309_140507.json", Filename("a/b", fixedTime))
	assert.Equal(t, "player_20240309_140507.json", Filename("  ", fixedTime))
}

func TestManager_SaveAndLoad(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()
	p, w := content.MustDefault().NewGame("Kevin")
	p.Gold = 42

	name, err := m.Save(ctx, p, w)
	require.NoError(t, err)
	assert.Equal(t, "Kevin_20240309_140507.json", name)

	loadedP, loadedW, err := m.Load(ctx, "Kevin_20240309_140507")
	require.NoError(t, err)
	assert.Equal(t, 42, loadedP.Gold)
	assert.Equal(t, "Village", loadedW.CurrentLocation)
}

func TestManager_SaveNeverOverwrites(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()
	p, w := content.MustDefault().NewGame("Kevin")

	first, err := m.Save(ctx, p, w)
	require.NoError(t, err)
	second, err := m.Save(ctx, p, w)
	require.NoError(t, err)
	third, err := m.Save(ctx, p, w)
	require.NoError(t, err)

	assert.Equal(t, "Kevin_20240309_140507.json", first)
	assert.Equal(t, "Kevin_20240309_140507_2.json", second)
	assert.Equal(t, "Kevin_20240309_140507_3.json", third)
}

func TestManager_LoadErrors(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()

	_, _, err := m.Load(ctx, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)

	store.Put("broken.json", []byte(`{"player": `))
	_, _, err = m.Load(ctx, "broken.json")
	assert.ErrorIs(t, err, ErrCorruptSave)

	store.Put("invalid.json", []byte(`{"player":{"name":"Kevin","health":500},"world":{}}`))
	_, _, err = m.Load(ctx, "invalid.json")
	assert.ErrorIs(t, err, ErrCorruptSave)

	store.SetError(errors.New("disk on fire"))
	_, _, err = m.Load(ctx, "broken.json")
	assert.ErrorIs(t, err, ErrSaveIO)
}

func TestManager_SaveIOError(t *testing.T) {
	m, store := setupManager(t)
	store.SetError(errors.New("read-only"))
	p, w := content.MustDefault().NewGame("Kevin")

	_, err := m.Save(context.Background(), p, w)
	assert.ErrorIs(t, err, ErrSaveIO)
}

func TestManager_ListAndMostRecent(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()
	pack := content.MustDefault()

	p, w := pack.NewGame("Alice")
	older, err := m.Save(ctx, p, w)
	require.NoError(t, err)

	p, w = pack.NewGame("Bob")
	p.Gold = 7
	newer, err := m.Save(ctx, p, w)
	require.NoError(t, err)

	store.Put("notes.txt", []byte("not a save"))
	store.SetModTime(older, fixedTime.Add(-time.Hour))
	store.SetModTime(newer, fixedTime)

	names, err := m.ListSaves(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{newer, older}, names)

	gotP, _, name, err := m.LoadMostRecent(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer, name)
	assert.Equal(t, "Bob", gotP.Name)
	assert.Equal(t, 7, gotP.Gold)
}

func TestManager_LoadMostRecentEmpty(t *testing.T) {
	m, _ := setupManager(t)

	_, _, _, err := m.LoadMostRecent(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_DeleteSave(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()
	p, w := content.MustDefault().NewGame("Kevin")

	name, err := m.Save(ctx, p, w)
	require.NoError(t, err)

	assert.True(t, m.DeleteSave(ctx, name))
	assert.False(t, m.DeleteSave(ctx, name))

	names, err := m.ListSaves(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}
