// Package collection is the single entry point callers use: it composes the
// normalization mapper with the configured store and adds collection-level
// policy (duplicate detection, manual-entry validation, toggle semantics).
package collection

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/anikeep/anikeep/internal/catalog"
	"github.com/anikeep/anikeep/internal/domain"
	"github.com/anikeep/anikeep/internal/mapper"
)

type Service interface {
	SearchCatalog(ctx context.Context, query string) ([]domain.CatalogAnime, error)
	TopCatalog(ctx context.Context) ([]domain.CatalogAnime, error)
	PopularCatalog(ctx context.Context) ([]domain.CatalogAnime, error)
	ListCollection(ctx context.Context) ([]domain.Entry, error)
	GetEntry(ctx context.Context, id int64) (*domain.Entry, error)
	ImportFromCatalog(ctx context.Context, anime domain.CatalogAnime) (*domain.Entry, error)
	SaveManualEntry(ctx context.Context, form domain.ManualForm) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error
	ToggleFavorite(ctx context.Context, id int64) (*domain.Entry, error)
	ToggleFeatured(ctx context.Context, id int64) (*domain.Entry, error)
}

type service struct {
	log            zerolog.Logger
	catalog        catalog.Service
	store          domain.EntryStore
	truncateImport bool

	// mu serializes all mutations so that import's check-then-create and the
	// toggle read-modify-writes cannot interleave within this process.
	mu sync.Mutex
}

func NewService(log zerolog.Logger, catalogSvc catalog.Service, store domain.EntryStore, truncateImport bool) Service {
	return &service{
		log:            log.With().Str("module", "collection").Logger(),
		catalog:        catalogSvc,
		store:          store,
		truncateImport: truncateImport,
	}
}

// SearchCatalog forwards to the catalog client and de-duplicates results by
// catalog id, preserving first-seen order. A blank query is a no-op.
func (s *service) SearchCatalog(ctx context.Context, query string) ([]domain.CatalogAnime, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.CatalogAnime{}, nil
	}

	results, err := s.catalog.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search catalog")
	}

	return dedupeByMalID(results), nil
}

func (s *service) TopCatalog(ctx context.Context) ([]domain.CatalogAnime, error) {
	results, err := s.catalog.Top(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch top anime")
	}
	return dedupeByMalID(results), nil
}

func (s *service) PopularCatalog(ctx context.Context) ([]domain.CatalogAnime, error) {
	results, err := s.catalog.Popular(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch popular anime")
	}
	return dedupeByMalID(results), nil
}

func (s *service) ListCollection(ctx context.Context) ([]domain.Entry, error) {
	return s.store.List(ctx)
}

func (s *service) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	return s.store.Get(ctx, id)
}

// ImportFromCatalog normalizes a search result and creates it, unless an
// entry with the same catalog id already exists. Validation and the duplicate
// check both happen before any write.
func (s *service) ImportFromCatalog(ctx context.Context, anime domain.CatalogAnime) (*domain.Entry, error) {
	draft, err := mapper.FromCatalog(anime, s.truncateImport)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check for duplicates")
	}

	for _, e := range existing {
		if e.MalID != 0 && e.MalID == draft.MalID {
			return nil, &domain.DuplicateError{MalID: draft.MalID}
		}
	}

	created, err := s.store.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("id", created.ID).Int64("mal_id", created.MalID).Str("title", created.Title).Msg("imported from catalog")
	return created, nil
}

// SaveManualEntry validates that all required fields are present, then
// normalizes and creates. Manual entries carry no catalog id, so no duplicate
// check applies.
func (s *service) SaveManualEntry(ctx context.Context, form domain.ManualForm) (*domain.Entry, error) {
	switch {
	case strings.TrimSpace(form.Title) == "":
		return nil, &domain.ValidationError{Field: "title"}
	case strings.TrimSpace(form.Description) == "":
		return nil, &domain.ValidationError{Field: "description"}
	case strings.TrimSpace(form.Rating) == "":
		return nil, &domain.ValidationError{Field: "rating"}
	case len(form.Genres) == 0:
		return nil, &domain.ValidationError{Field: "genre"}
	}

	draft, err := mapper.FromForm(form)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.store.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("id", created.ID).Str("title", created.Title).Msg("saved manual entry")
	return created, nil
}

// UpdateEntry replaces the stored entry wholesale, after re-normalizing the
// mutable fields so direct edits cannot break the rating and genre invariants.
func (s *service) UpdateEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(ctx, entry)
}

func (s *service) update(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	entry.Rating = mapper.ClampRating(entry.Rating)
	entry.Genre = mapper.NormalizeGenre(entry.Genre)

	return s.store.Update(ctx, entry)
}

func (s *service) DeleteEntry(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Delete(ctx, id)
}

func (s *service) ToggleFavorite(ctx context.Context, id int64) (*domain.Entry, error) {
	return s.toggle(ctx, id, func(e *domain.Entry) {
		e.IsFavorite = !e.IsFavorite
	})
}

func (s *service) ToggleFeatured(ctx context.Context, id int64) (*domain.Entry, error) {
	return s.toggle(ctx, id, func(e *domain.Entry) {
		e.IsFeatured = !e.IsFeatured
	})
}

func (s *service) toggle(ctx context.Context, id int64, flip func(*domain.Entry)) (*domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	flip(entry)

	return s.update(ctx, *entry)
}

func dedupeByMalID(results []domain.CatalogAnime) []domain.CatalogAnime {
	seen := make(map[int64]struct{}, len(results))
	unique := make([]domain.CatalogAnime, 0, len(results))
	for _, r := range results {
		if _, ok := seen[r.MalID]; ok {
			continue
		}
		seen[r.MalID] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}
