package storage

import (
	"context"
	"io"
)

// Storage persists uploaded files and returns a publicly resolvable URL.
// The local-disk implementation below is the default; an object-storage
// bucket client can plug in behind the same interface.
type Storage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
