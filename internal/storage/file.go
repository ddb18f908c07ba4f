// Package storage provides the save.Store backends: a directory of JSON
// files and Redis.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/save"
)

// FileStore keeps each save as a file in one directory.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

var _ save.Store = (*FileStore)(nil)

// NewFileStore creates the directory if needed.
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if dir == "" {
		dir = "saves"
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Dir returns the save directory.
func (f *FileStore) Dir() string {
	return f.dir
}

func (f *FileStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid save name %q", name)
	}
	return filepath.Join(f.dir, name), nil
}

// Write replaces the file in one step by renaming a temporary file over it.
func (f *FileStore) Write(ctx context.Context, name string, data []byte) error {
	path, err := f.path(name)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.dir, ".save-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	f.logger.Debug("Save file written", "path", path, "bytes", len(data))
	return nil
}

func (f *FileStore) Read(ctx context.Context, name string) ([]byte, error) {
	path, err := f.path(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", save.ErrNotFound, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", save.ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	return data, nil
}

func (f *FileStore) Exists(ctx context.Context, name string) (bool, error) {
	path, err := f.path(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to stat save file: %w", err)
	}
}

// List returns the regular files in the save directory, skipping temp files.
func (f *FileStore) List(ctx context.Context) ([]save.Entry, error) {
	dirEntries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read save directory: %w", err)
	}
	entries := make([]save.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !de.Type().IsRegular() || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			f.logger.Warn("Failed to stat save file", "file", de.Name(), "error", err)
			continue
		}
		entries = append(entries, save.Entry{Name: de.Name(), ModTime: info.ModTime()})
	}
	return entries, nil
}

func (f *FileStore) Delete(ctx context.Context, name string) error {
	path, err := f.path(name)
	if err != nil {
		return fmt.Errorf("%w: %w", save.ErrNotFound, err)
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", save.ErrNotFound, name)
		}
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}
