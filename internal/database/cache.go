package database

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// CatalogCacheRepo stores raw catalog responses keyed by request URL. Entries
// older than the TTL are treated as misses and pruned on write.
type CatalogCacheRepo struct {
	log zerolog.Logger
	db  *DB
	ttl time.Duration
}

// NewCatalogCacheRepo creates a new catalog cache repository
func NewCatalogCacheRepo(log zerolog.Logger, db *DB, ttl time.Duration) *CatalogCacheRepo {
	return &CatalogCacheRepo{
		log: log.With().Str("repo", "catalog_cache").Logger(),
		db:  db,
		ttl: ttl,
	}
}

// Get returns the cached payload for a request URL, reporting whether a fresh
// entry was found.
func (r *CatalogCacheRepo) Get(ctx context.Context, url string) ([]byte, bool, error) {
	queryBuilder := r.db.squirrel.
		Select("payload", "cached_at").
		From("catalog_cache").
		Where(sq.Eq{"url": url})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, false, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Get")

	var (
		payload  []byte
		cachedAt string
	)
	row := r.db.handler.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&payload, &cachedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "error scanning row")
	}

	at, err := time.Parse(time.RFC3339, cachedAt)
	if err != nil {
		return nil, false, errors.Wrap(err, "error parsing cached_at")
	}

	if time.Since(at) > r.ttl {
		return nil, false, nil
	}

	return payload, true, nil
}

// Put inserts or replaces the cached payload for a request URL.
func (r *CatalogCacheRepo) Put(ctx context.Context, url string, payload []byte) error {
	now := time.Now().Format(time.RFC3339)

	queryBuilder := r.db.squirrel.
		Replace("catalog_cache").
		Columns("url", "payload", "cached_at").
		Values(url, payload, now)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Put")

	_, err = r.db.handler.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "error executing query")
	}

	return nil
}

// Prune deletes all entries older than the TTL and returns the number removed.
func (r *CatalogCacheRepo) Prune(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-r.ttl).Format(time.RFC3339)

	queryBuilder := r.db.squirrel.
		Delete("catalog_cache").
		Where(sq.Lt{"cached_at": cutoff})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "error building delete query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Prune")

	res, err := r.db.handler.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "error executing delete query")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "error reading affected rows")
	}

	return n, nil
}
