package runner

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"mwa/internal/models"
	"mwa/internal/providers"
	"mwa/internal/runner/interfaces"
	"mwa/internal/services"
	"mwa/internal/structures"
)

// Loader reads the materialized message collection produced by the
// out-of-scope extraction collaborator: a JSON array of message records,
// zstd-compressed when the file carries a .zst suffix.
type Loader struct {
	conf       *structures.Config
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewLoader(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) services.CollectionLoader {
	return &Loader{
		conf:       conf,
		compressor: compressor,
		logger:     logger,
	}
}

func (l *Loader) Load() (*models.Collection, error) {
	path := l.conf.Input.FilePath
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".zst") {
		data, err = l.compressor.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("decompress input %s: %w", path, err)
		}
	}

	var messages []models.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("decode input %s: %w", path, err)
	}

	col, err := models.NewCollection(messages)
	if err != nil {
		return nil, err
	}
	l.logger.Infof(providers.TypeApp, "Loaded %d messages for %d contacts from %s", col.Len(), len(col.Contacts()), path)
	return col, nil
}
