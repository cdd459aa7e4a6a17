package database

const cacheSchema = `
-- Catalog responses keyed by request URL
CREATE TABLE catalog_cache (
	url TEXT PRIMARY KEY,
	payload BLOB NOT NULL,
	cached_at TIMESTAMP NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX idx_catalog_cached_at ON catalog_cache(cached_at);
`

// cacheMigrations contains incremental schema changes
// Each migration is applied in order based on the current user_version
// cacheMigrations[0] is empty because version 0 uses the base schema
var cacheMigrations = []string{
	"",
}
