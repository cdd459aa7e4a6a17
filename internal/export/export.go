package export

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/anikeep/anikeep/internal/domain"
)

// Snapshot is the on-disk YAML form of a collection export.
type Snapshot struct {
	ExportedAt string         `yaml:"exportedAt"`
	Animes     []domain.Entry `yaml:"animes"`
}

// WriteSnapshot writes the collection to path as YAML.
func WriteSnapshot(path string, entries []domain.Entry) error {
	snapshot := Snapshot{
		ExportedAt: time.Now().Format(time.RFC3339),
		Animes:     entries,
	}

	b, err := yaml.Marshal(&snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to marshal snapshot")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %s", path)
	}
	defer f.Close()

	if _, err := f.Write(b); err != nil {
		return errors.Wrapf(err, "failed to write to file %s", path)
	}

	return nil
}

// ReadSnapshot loads a previously exported collection.
func ReadSnapshot(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file %s", path)
	}

	snapshot := &Snapshot{}
	if err := yaml.Unmarshal(b, snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}

	return snapshot, nil
}
