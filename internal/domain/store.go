package domain

import (
	"context"
)

// EntryStore defines the interface for collection persistence. Exactly one
// substrate backs it in a running process: the local bolt file or the remote
// /animes resource.
type EntryStore interface {
	List(ctx context.Context) ([]Entry, error)
	Get(ctx context.Context, id int64) (*Entry, error)
	Create(ctx context.Context, entry Entry) (*Entry, error)
	Update(ctx context.Context, entry Entry) (*Entry, error)
	Delete(ctx context.Context, id int64) error
}
