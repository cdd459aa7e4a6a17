package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/anikeep/anikeep/internal/domain"
)

// Service is the read-only accessor to the external anime catalog.
type Service interface {
	Search(ctx context.Context, query string) ([]domain.CatalogAnime, error)
	Top(ctx context.Context) ([]domain.CatalogAnime, error)
	Popular(ctx context.Context) ([]domain.CatalogAnime, error)
}

// Cache stores raw catalog responses keyed by request URL. A nil Cache
// disables caching.
type Cache interface {
	Get(ctx context.Context, url string) ([]byte, bool, error)
	Put(ctx context.Context, url string, payload []byte) error
}

type service struct {
	log     zerolog.Logger
	baseURL string
	client  *http.Client
	cache   Cache
}

// catalogResponse is the envelope the catalog wraps every listing in.
type catalogResponse struct {
	Data []domain.CatalogAnime `json:"data"`
}

// NewService creates a catalog client against baseURL (e.g. the Jikan v4
// root). cache may be nil.
func NewService(log zerolog.Logger, baseURL string, cache Cache) Service {
	return &service{
		log:     log.With().Str("module", "catalog").Logger(),
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: cache,
	}
}

func (s *service) Search(ctx context.Context, query string) ([]domain.CatalogAnime, error) {
	return s.fetch(ctx, fmt.Sprintf("%s/anime?q=%s&sfw", s.baseURL, url.QueryEscape(query)))
}

func (s *service) Top(ctx context.Context) ([]domain.CatalogAnime, error) {
	return s.fetch(ctx, fmt.Sprintf("%s/top/anime?sfw", s.baseURL))
}

func (s *service) Popular(ctx context.Context) ([]domain.CatalogAnime, error) {
	return s.fetch(ctx, fmt.Sprintf("%s/anime?order_by=popularity&sfw", s.baseURL))
}

func (s *service) fetch(ctx context.Context, requestURL string) ([]domain.CatalogAnime, error) {
	if s.cache != nil {
		payload, ok, err := s.cache.Get(ctx, requestURL)
		if err != nil {
			s.log.Warn().Err(err).Str("url", requestURL).Msg("cache read failed")
		} else if ok {
			s.log.Debug().Str("url", requestURL).Msg("cache hit")
			return decodeListing(payload)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch from catalog")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode, URL: requestURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	result, err := decodeListing(body)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, requestURL, body); err != nil {
			s.log.Warn().Err(err).Str("url", requestURL).Msg("cache write failed")
		}
	}

	return result, nil
}

func decodeListing(body []byte) ([]domain.CatalogAnime, error) {
	listing := &catalogResponse{}
	if err := json.Unmarshal(body, listing); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal catalog response")
	}
	return listing.Data, nil
}
