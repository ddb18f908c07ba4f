package save

import (
	"context"
	"time"
)

// Extension is appended to every save name.
const Extension = ".json"

// Entry describes one stored save.
type Entry struct {
	Name    string
	ModTime time.Time
}

// Store keeps save documents by filename. Read and Delete return an error
// wrapping ErrNotFound for unknown names.
type Store interface {
	Write(ctx context.Context, name string, data []byte) error
	Read(ctx context.Context, name string) ([]byte, error)
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]Entry, error)
	Delete(ctx context.Context, name string) error
}
