package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.etcd.io/bbolt"

	"github.com/anikeep/anikeep/internal/domain"
)

const (
	boltBucketCollection = "collection"
	// boltKeyEntries holds the whole collection as one serialized JSON array.
	boltKeyEntries = "animes"
)

// BoltStore is the local substrate: the entire collection lives under one
// fixed key in a bolt file.
type BoltStore struct {
	log     zerolog.Logger
	storage *bbolt.DB
}

var _ domain.EntryStore = (*BoltStore)(nil)

// NewBoltStore opens (or creates) the collection database at path.
func NewBoltStore(log zerolog.Logger, path string) (*BoltStore, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open collection database")
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketCollection))
		return err
	}); err != nil {
		_ = instance.Close()
		return nil, errors.Wrap(err, "failed to create collection bucket")
	}

	return &BoltStore{
		log:     log.With().Str("module", "store").Str("substrate", "local").Logger(),
		storage: instance,
	}, nil
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.storage.Close()
}

func (s *BoltStore) List(ctx context.Context) ([]domain.Entry, error) {
	var entries []domain.Entry

	err := s.storage.View(func(tx *bbolt.Tx) error {
		var err error
		entries, err = readEntries(tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *BoltStore) Get(ctx context.Context, id int64) (*domain.Entry, error) {
	var found *domain.Entry

	err := s.storage.View(func(tx *bbolt.Tx) error {
		entries, err := readEntries(tx)
		if err != nil {
			return err
		}

		for i := range entries {
			if entries[i].ID == id {
				found = &entries[i]
				return nil
			}
		}

		return &domain.NotFoundError{ID: id}
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (s *BoltStore) Create(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	err := s.storage.Update(func(tx *bbolt.Tx) error {
		entries, err := readEntries(tx)
		if err != nil {
			return err
		}

		// Timestamp-derived id; bump past collisions from rapid creates.
		id := time.Now().UnixMilli()
		for containsID(entries, id) {
			id++
		}
		entry.ID = id

		return writeEntries(tx, append(entries, entry))
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int64("id", entry.ID).Str("title", entry.Title).Msg("created entry")
	return &entry, nil
}

func (s *BoltStore) Update(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	err := s.storage.Update(func(tx *bbolt.Tx) error {
		entries, err := readEntries(tx)
		if err != nil {
			return err
		}

		for i := range entries {
			if entries[i].ID == entry.ID {
				entries[i] = entry
				return writeEntries(tx, entries)
			}
		}

		return &domain.NotFoundError{ID: entry.ID}
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// Delete removes the entry with the given id. Removing an absent id leaves
// the list unchanged.
func (s *BoltStore) Delete(ctx context.Context, id int64) error {
	return s.storage.Update(func(tx *bbolt.Tx) error {
		entries, err := readEntries(tx)
		if err != nil {
			return err
		}

		kept := entries[:0]
		for _, e := range entries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}

		return writeEntries(tx, kept)
	})
}

func readEntries(tx *bbolt.Tx) ([]domain.Entry, error) {
	bucket := tx.Bucket([]byte(boltBucketCollection))

	v := bucket.Get([]byte(boltKeyEntries))
	if v == nil {
		return []domain.Entry{}, nil
	}

	var entries []domain.Entry
	if err := json.Unmarshal(v, &entries); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal collection")
	}

	return entries, nil
}

func writeEntries(tx *bbolt.Tx, entries []domain.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "failed to marshal collection")
	}

	bucket := tx.Bucket([]byte(boltBucketCollection))
	if err := bucket.Put([]byte(boltKeyEntries), data); err != nil {
		return errors.Wrap(err, "failed to write collection")
	}

	return nil
}

func containsID(entries []domain.Entry, id int64) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}
