package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anikeep/anikeep/internal/domain"
	"github.com/anikeep/anikeep/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	boltStore, err := store.NewBoltStore(zerolog.Nop(), filepath.Join(t.TempDir(), "collection.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = boltStore.Close() })

	srv := httptest.NewServer(New(zerolog.Nop(), boltStore).Router())
	t.Cleanup(srv.Close)

	return srv
}

func postEntry(t *testing.T, srv *httptest.Server, entry domain.Entry) domain.Entry {
	t.Helper()

	body, err := json.Marshal(entry)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/animes", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created
}

func TestServer_ListEmpty(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/animes")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []domain.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	assert.Empty(t, entries)
}

func TestServer_CreateAndGet(t *testing.T) {
	srv := newTestServer(t)

	created := postEntry(t, srv, domain.Entry{Title: "Monster", Rating: 9.1})
	assert.NotZero(t, created.ID)

	resp, err := http.Get(fmt.Sprintf("%s/animes/%d", srv.URL, created.ID))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, created, got)
}

func TestServer_CreateRejectsInvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/animes", "application/json", bytes.NewReader([]byte("{")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_GetUnknown(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/animes/42")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_GetInvalidID(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/animes/abc")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_UpdateUsesMemberURLID(t *testing.T) {
	srv := newTestServer(t)

	created := postEntry(t, srv, domain.Entry{Title: "Akira"})

	// The body carries a bogus id; the URL wins.
	created.ID = 999
	created.IsFavorite = true
	body, err := json.Marshal(created)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/animes/%d", srv.URL, 999), bytes.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Update(t *testing.T) {
	srv := newTestServer(t)

	created := postEntry(t, srv, domain.Entry{Title: "Akira"})
	created.IsFeatured = true

	body, err := json.Marshal(created)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/animes/%d", srv.URL, created.ID), bytes.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated domain.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.True(t, updated.IsFeatured)
}

func TestServer_Delete(t *testing.T) {
	srv := newTestServer(t)

	created := postEntry(t, srv, domain.Entry{Title: "Paprika"})

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/animes/%d", srv.URL, created.ID), nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// A second delete sees the miss.
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// The remote store and the server speak the same dialect end to end.
func TestServer_RemoteStoreRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	remote := store.NewRemoteStore(zerolog.Nop(), srv.URL)
	ctx := context.Background()

	created, err := remote.Create(ctx, domain.Entry{Title: "Trigun", Genre: "Action", Rating: 8.2})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	created.IsFavorite = true
	updated, err := remote.Update(ctx, *created)
	require.NoError(t, err)
	assert.True(t, updated.IsFavorite)

	entries, err := remote.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Trigun", entries[0].Title)

	require.NoError(t, remote.Delete(ctx, created.ID))

	_, err = remote.Get(ctx, created.ID)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
