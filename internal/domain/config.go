package domain

// Substrate selects the persistence backend behind the EntryStore.
type Substrate string

const (
	// SubstrateLocal stores the collection in a bolt file on disk.
	SubstrateLocal Substrate = "local"
	// SubstrateRemote stores the collection on the /animes HTTP resource.
	SubstrateRemote Substrate = "remote"
)

type Config struct {
	Substrate      Substrate `toml:"substrate" mapstructure:"substrate"`
	DBPath         string    `toml:"db_path" mapstructure:"db_path"`
	RemoteURL      string    `toml:"remote_url" mapstructure:"remote_url"`
	CatalogURL     string    `toml:"catalog_url" mapstructure:"catalog_url"`
	CachePath      string    `toml:"cache_path" mapstructure:"cache_path"`
	CacheTTLHours  int       `toml:"cache_ttl_hours" mapstructure:"cache_ttl_hours"`
	TruncateImport bool      `toml:"truncate_import" mapstructure:"truncate_import"`
}
