package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/anikeep/anikeep/internal/domain"
)

// Load loads configuration from multiple sources:
// 1. Config file (config.yaml, optional)
// 2. Environment variables (ANIKEEP_*)
// 3. Bound CLI flags
func Load() (*domain.Config, error) {
	cfg := &domain.Config{}

	cfg.DBPath = viper.GetString("db_path")
	cfg.RemoteURL = viper.GetString("remote_url")
	cfg.CatalogURL = viper.GetString("catalog_url")
	cfg.CachePath = viper.GetString("cache_path")
	cfg.CacheTTLHours = viper.GetInt("cache_ttl_hours")

	// Truncation of imported synopses is policy, default on.
	if viper.IsSet("truncate_import") {
		cfg.TruncateImport = viper.GetBool("truncate_import")
	} else {
		cfg.TruncateImport = true
	}

	substrateStr := viper.GetString("substrate")
	if substrateStr == "" {
		cfg.Substrate = domain.SubstrateLocal
	} else {
		cfg.Substrate = domain.Substrate(substrateStr)
		if cfg.Substrate != domain.SubstrateLocal && cfg.Substrate != domain.SubstrateRemote {
			return nil, fmt.Errorf("invalid substrate: %s (must be 'local' or 'remote')", substrateStr)
		}
	}

	if cfg.DBPath == "" {
		cfg.DBPath = "anikeep.db"
	}
	if cfg.CatalogURL == "" {
		cfg.CatalogURL = "https://api.jikan.moe/v4"
	}
	if cfg.CacheTTLHours <= 0 {
		cfg.CacheTTLHours = 24
	}

	if cfg.Substrate == domain.SubstrateRemote && cfg.RemoteURL == "" {
		return nil, fmt.Errorf("remote_url is required when substrate is 'remote' (set via config.yaml or ANIKEEP_REMOTE_URL environment variable)")
	}

	return cfg, nil
}
