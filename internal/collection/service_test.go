package collection

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anikeep/anikeep/internal/domain"
	"github.com/anikeep/anikeep/internal/store"
)

// fakeCatalog serves canned listings and records how often it was asked.
type fakeCatalog struct {
	results []domain.CatalogAnime
	err     error
	calls   int
}

func (f *fakeCatalog) Search(ctx context.Context, query string) ([]domain.CatalogAnime, error) {
	f.calls++
	return f.results, f.err
}

func (f *fakeCatalog) Top(ctx context.Context) ([]domain.CatalogAnime, error) {
	f.calls++
	return f.results, f.err
}

func (f *fakeCatalog) Popular(ctx context.Context) ([]domain.CatalogAnime, error) {
	f.calls++
	return f.results, f.err
}

func newTestService(t *testing.T, cat *fakeCatalog) Service {
	t.Helper()

	boltStore, err := store.NewBoltStore(zerolog.Nop(), filepath.Join(t.TempDir(), "collection.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = boltStore.Close() })

	return NewService(zerolog.Nop(), cat, boltStore, true)
}

func catalogNaruto() domain.CatalogAnime {
	return domain.CatalogAnime{
		MalID:    20,
		Title:    "Naruto",
		Synopsis: "A young ninja seeks recognition.",
		Score:    8.7,
		Genres:   []domain.CatalogGenre{{Name: "Action"}},
		Images: domain.CatalogImages{
			JPG: domain.CatalogImageSet{ImageURL: "http://x/img.jpg"},
		},
	}
}

func validForm() domain.ManualForm {
	return domain.ManualForm{
		Title:       "Cowboy Bebop",
		Description: "Bounty hunters in space.",
		Rating:      "9.5",
		Genres:      []string{"Sci-Fi"},
	}
}

func TestSearchCatalog_BlankQuerySkipsCatalog(t *testing.T) {
	cat := &fakeCatalog{}
	svc := newTestService(t, cat)

	results, err := svc.SearchCatalog(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, cat.calls)
}

func TestSearchCatalog_DedupesByCatalogID(t *testing.T) {
	cat := &fakeCatalog{results: []domain.CatalogAnime{
		{MalID: 1, Title: "first"},
		{MalID: 2, Title: "second"},
		{MalID: 1, Title: "first again"},
	}}
	svc := newTestService(t, cat)

	results, err := svc.SearchCatalog(context.Background(), "anything")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].Title)
	assert.Equal(t, "second", results[1].Title)
}

func TestImportFromCatalog(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	created, err := svc.ImportFromCatalog(context.Background(), catalogNaruto())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Naruto", created.Title)
	assert.Equal(t, 8.7, created.Rating)
	assert.Equal(t, "Action", created.Genre)
	assert.EqualValues(t, 20, created.MalID)

	entries, err := svc.ListCollection(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestImportFromCatalog_Duplicate(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	_, err := svc.ImportFromCatalog(context.Background(), catalogNaruto())
	require.NoError(t, err)

	_, err = svc.ImportFromCatalog(context.Background(), catalogNaruto())

	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.EqualValues(t, 20, dup.MalID)

	entries, err := svc.ListCollection(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "the duplicate must not be written")
}

func TestImportFromCatalog_InvalidResultLeavesCollectionUntouched(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	_, err := svc.ImportFromCatalog(context.Background(), domain.CatalogAnime{MalID: 1})

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)

	entries, err := svc.ListCollection(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveManualEntry(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	created, err := svc.SaveManualEntry(context.Background(), validForm())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Cowboy Bebop", created.Title)
	assert.Equal(t, 9.5, created.Rating)
	assert.Zero(t, created.MalID)
}

func TestSaveManualEntry_RequiredFields(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	for field, mutate := range map[string]func(*domain.ManualForm){
		"title":       func(f *domain.ManualForm) { f.Title = "" },
		"description": func(f *domain.ManualForm) { f.Description = "  " },
		"rating":      func(f *domain.ManualForm) { f.Rating = "" },
		"genre":       func(f *domain.ManualForm) { f.Genres = nil },
	} {
		t.Run(field, func(t *testing.T) {
			form := validForm()
			mutate(&form)

			_, err := svc.SaveManualEntry(context.Background(), form)

			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, field, validation.Field)
		})
	}

	entries, err := svc.ListCollection(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected forms must not be written")
}

func TestSaveManualEntry_NoDuplicateCheck(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	_, err := svc.SaveManualEntry(context.Background(), validForm())
	require.NoError(t, err)
	_, err = svc.SaveManualEntry(context.Background(), validForm())
	require.NoError(t, err)

	entries, err := svc.ListCollection(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestUpdateEntry_Renormalizes(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	created, err := svc.SaveManualEntry(context.Background(), validForm())
	require.NoError(t, err)

	created.Rating = 42
	created.Genre = "   "

	updated, err := svc.UpdateEntry(context.Background(), *created)
	require.NoError(t, err)
	assert.Equal(t, 10.0, updated.Rating)
	assert.Equal(t, domain.GenreUnknown, updated.Genre)
}

func TestUpdateEntry_Missing(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	_, err := svc.UpdateEntry(context.Background(), domain.Entry{ID: 404, Title: "ghost"})

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteEntry(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	created, err := svc.SaveManualEntry(context.Background(), validForm())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(context.Background(), created.ID))

	_, err = svc.GetEntry(context.Background(), created.ID)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestToggleFavorite_RoundTrip(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	created, err := svc.ImportFromCatalog(context.Background(), catalogNaruto())
	require.NoError(t, err)
	require.False(t, created.IsFavorite)

	toggled, err := svc.ToggleFavorite(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsFavorite)

	// Only the flag changes.
	assert.Equal(t, created.Title, toggled.Title)
	assert.Equal(t, created.Rating, toggled.Rating)
	assert.Equal(t, created.Genre, toggled.Genre)
	assert.Equal(t, created.MalID, toggled.MalID)
	assert.False(t, toggled.IsFeatured)

	back, err := svc.ToggleFavorite(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, back.IsFavorite)
}

func TestToggleFeatured_IndependentOfFavorite(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	created, err := svc.ImportFromCatalog(context.Background(), catalogNaruto())
	require.NoError(t, err)

	_, err = svc.ToggleFavorite(context.Background(), created.ID)
	require.NoError(t, err)

	featured, err := svc.ToggleFeatured(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, featured.IsFeatured)
	assert.True(t, featured.IsFavorite)
}

func TestToggleFavorite_Missing(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	_, err := svc.ToggleFavorite(context.Background(), 404)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestConcurrentToggles(t *testing.T) {
	svc := newTestService(t, &fakeCatalog{})

	created, err := svc.ImportFromCatalog(context.Background(), catalogNaruto())
	require.NoError(t, err)

	const flips = 8
	done := make(chan error, flips)
	for i := 0; i < flips; i++ {
		go func() {
			_, err := svc.ToggleFavorite(context.Background(), created.ID)
			done <- err
		}()
	}
	for i := 0; i < flips; i++ {
		require.NoError(t, <-done)
	}

	// An even number of serialized flips lands back where it started.
	entry, err := svc.GetEntry(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, entry.IsFavorite)
}
