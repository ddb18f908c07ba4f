package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/save"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFileStore_WriteReadDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	exists, err := store.Exists(ctx, "kevin.json")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Write(ctx, "kevin.json", []byte(`{"a":1}`)))

	exists, err = store.Exists(ctx, "kevin.json")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := store.Read(ctx, "kevin.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))

	onDisk, err := os.ReadFile(filepath.Join(dir, "kevin.json"))
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)

	require.NoError(t, store.Delete(ctx, "kevin.json"))
	_, err = store.Read(ctx, "kevin.json")
	assert.ErrorIs(t, err, save.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "kevin.json"), save.ErrNotFound)
}

func TestFileStore_ListSkipsDirsAndTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "a.json", []byte("{}")))
	require.NoError(t, store.Write(ctx, "b.json", []byte("{}")))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".save-123"), []byte("x"), 0o644))

	entries, err := store.List(ctx)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
		assert.False(t, e.ModTime.IsZero())
	}
	assert.ElementsMatch(t, []string{"a.json", "b.json"}, names)
}

func TestFileStore_RejectsPathNames(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"../escape.json", "sub/dir.json", "..", ""} {
		assert.Error(t, store.Write(ctx, name, []byte("{}")), name)
		_, err := store.Read(ctx, name)
		assert.ErrorIs(t, err, save.ErrNotFound, name)
	}
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "saves")
	store, err := NewFileStore(dir, testLogger())
	require.NoError(t, err)

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
