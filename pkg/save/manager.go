package save

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/item"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// TimestampLayout formats the time part of a save filename.
const TimestampLayout = "20060102_150405"

// Manager names, writes and restores saves on top of a Store.
type Manager struct {
	store   Store
	catalog *item.Catalog
	logger  *slog.Logger
	now     func() time.Time
}

func NewManager(store Store, catalog *item.Catalog, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:   store,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// SetClock replaces the clock used to timestamp filenames.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// Filename builds "<player>_<YYYYMMDD_HHMMSS>.json". Characters that are
// unsafe in a filename are replaced by underscores.
func Filename(playerName string, t time.Time) string {
	return sanitize(playerName) + "_" + t.Format(TimestampLayout) + Extension
}

func sanitize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "player"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ', '\t', '\n':
			return '_'
		}
		return r
	}, name)
}

// Normalize trims a save name and adds the extension if the caller left it off.
func Normalize(filename string) string {
	filename = strings.TrimSpace(filename)
	if !strings.HasSuffix(filename, Extension) {
		filename += Extension
	}
	return filename
}

// Save writes a new document and returns its filename. An existing save is
// never overwritten: on a name collision a numeric suffix is added.
func (m *Manager) Save(ctx context.Context, p *actor.Player, w *world.World) (string, error) {
	data, err := json.MarshalIndent(Serialize(p, w), "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: marshal: %w", ErrSaveIO, err)
	}

	base := strings.TrimSuffix(Filename(p.Name, m.now()), Extension)
	name := base + Extension
	for n := 2; ; n++ {
		exists, err := m.store.Exists(ctx, name)
		if err != nil {
			m.logger.Error("Failed to check save", "file", name, "error", err)
			return "", fmt.Errorf("%w: %w", ErrSaveIO, err)
		}
		if !exists {
			break
		}
		name = fmt.Sprintf("%s_%d%s", base, n, Extension)
	}

	if err := m.store.Write(ctx, name, data); err != nil {
		m.logger.Error("Failed to write save", "file", name, "error", err)
		return "", fmt.Errorf("%w: %w", ErrSaveIO, err)
	}
	m.logger.Info("Game saved", "file", name, "player", p.Name, "location", w.CurrentLocation)
	return name, nil
}

// Load reads and rebuilds a save. Errors wrap ErrNotFound, ErrCorruptSave or
// ErrSaveIO.
func (m *Manager) Load(ctx context.Context, filename string) (*actor.Player, *world.World, error) {
	name := Normalize(filename)
	data, err := m.store.Read(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			m.logger.Warn("Save not found", "file", name)
			return nil, nil, err
		}
		m.logger.Error("Failed to read save", "file", name, "error", err)
		return nil, nil, fmt.Errorf("%w: %w", ErrSaveIO, err)
	}

	p, w, err := m.Decode(data)
	if err != nil {
		m.logger.Warn("Corrupt save", "file", name, "error", err)
		return nil, nil, err
	}
	m.logger.Info("Game loaded", "file", name, "player", p.Name, "location", w.CurrentLocation)
	return p, w, nil
}

// Decode parses and validates a raw save document.
func (m *Manager) Decode(data []byte) (*actor.Player, *world.World, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, nil, err
	}
	return Deserialize(doc, m.catalog)
}

// ParseDocument unmarshals a document without validating it.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrCorruptSave, err)
	}
	return doc, nil
}

// entries lists saves newest first, ties broken by name.
func (m *Manager) entries(ctx context.Context) ([]Entry, error) {
	entries, err := m.store.List(ctx)
	if err != nil {
		m.logger.Error("Failed to list saves", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSaveIO, err)
	}
	entries = slices.DeleteFunc(entries, func(e Entry) bool {
		return !strings.HasSuffix(e.Name, Extension)
	})
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := b.ModTime.Compare(a.ModTime); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return entries, nil
}

// ListSaves returns save filenames, most recently modified first.
func (m *Manager) ListSaves(ctx context.Context) ([]string, error) {
	entries, err := m.entries(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// DeleteSave removes a save. It reports false if nothing was deleted.
func (m *Manager) DeleteSave(ctx context.Context, filename string) bool {
	name := Normalize(filename)
	if err := m.store.Delete(ctx, name); err != nil {
		if errors.Is(err, ErrNotFound) {
			m.logger.Warn("Save not found", "file", name)
		} else {
			m.logger.Error("Failed to delete save", "file", name, "error", err)
		}
		return false
	}
	m.logger.Info("Save deleted", "file", name)
	return true
}

// LoadMostRecent loads the save with the latest modification time and
// returns its filename.
func (m *Manager) LoadMostRecent(ctx context.Context) (*actor.Player, *world.World, string, error) {
	entries, err := m.entries(ctx)
	if err != nil {
		return nil, nil, "", err
	}
	if len(entries) == 0 {
		return nil, nil, "", fmt.Errorf("%w: no saves", ErrNotFound)
	}
	name := entries[0].Name
	p, w, err := m.Load(ctx, name)
	if err != nil {
		return nil, nil, "", err
	}
	return p, w, name, nil
}
