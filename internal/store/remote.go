package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/anikeep/anikeep/internal/domain"
)

// RemoteStore is the remote substrate: a client for the /animes collection
// resource. The server assigns ids on create; update is last write wins.
type RemoteStore struct {
	log     zerolog.Logger
	baseURL string
	client  *http.Client
}

var _ domain.EntryStore = (*RemoteStore)(nil)

// NewRemoteStore creates a remote store against baseURL (without the /animes
// suffix).
func NewRemoteStore(log zerolog.Logger, baseURL string) *RemoteStore {
	return &RemoteStore{
		log:     log.With().Str("module", "store").Str("substrate", "remote").Logger(),
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *RemoteStore) List(ctx context.Context) ([]domain.Entry, error) {
	var entries []domain.Entry
	if err := s.do(ctx, http.MethodGet, s.baseURL+"/animes", 0, nil, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries, nil
}

func (s *RemoteStore) Get(ctx context.Context, id int64) (*domain.Entry, error) {
	entry := &domain.Entry{}
	if err := s.do(ctx, http.MethodGet, s.memberURL(id), id, nil, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *RemoteStore) Create(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	created := &domain.Entry{}
	if err := s.do(ctx, http.MethodPost, s.baseURL+"/animes", 0, &entry, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *RemoteStore) Update(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	updated := &domain.Entry{}
	if err := s.do(ctx, http.MethodPut, s.memberURL(entry.ID), entry.ID, &entry, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete surfaces the backend's error for an unknown id; the backend decides
// whether deletes are idempotent.
func (s *RemoteStore) Delete(ctx context.Context, id int64) error {
	return s.do(ctx, http.MethodDelete, s.memberURL(id), id, nil, nil)
}

func (s *RemoteStore) memberURL(id int64) string {
	return fmt.Sprintf("%s/animes/%d", s.baseURL, id)
}

// do performs one request against the collection resource. A 404 on a member
// URL maps to NotFoundError; any other non-2xx maps to RemoteError.
func (s *RemoteStore) do(ctx context.Context, method, url string, id int64, body *domain.Entry, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal entry")
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	s.log.Trace().Str("method", method).Str("url", url).Msg("remote request")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach remote store")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &domain.NotFoundError{ID: id}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.RemoteError{StatusCode: resp.StatusCode, URL: url}
	}

	if out == nil {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrap(err, "failed to unmarshal response")
	}

	return nil
}
