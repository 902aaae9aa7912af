package runner

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"mwa/internal/models"
	"mwa/internal/providers"
	"mwa/internal/runner/interfaces"
	"mwa/internal/services"
)

type FileManager struct {
	service    services.AnalysisServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.AnalysisServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	results := f.service.GetResults()
	if results == nil {
		return nil
	}
	storage := &models.Storage{
		Version: models.StorageVersion,
		Results: results,
	}

	jsonData, err := json.Marshal(storage)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var storage models.Storage
	if err := json.Unmarshal(decompressedData, &storage); err != nil {
		return err
	}
	if storage.Version != models.StorageVersion {
		f.logger.Warnf(providers.TypeApp, "Discarding snapshot %s: unsupported version %d", fileName, storage.Version)
		return fmt.Errorf("unsupported snapshot version %d", storage.Version)
	}
	if storage.Results == nil {
		f.logger.Warnf(providers.TypeApp, "Discarding snapshot %s: empty payload", fileName)
		return nil
	}

	f.service.PutResults(storage.Results)
	f.logger.Infof(providers.TypeApp, "Restored snapshot from %s (%d messages, %d contacts)", fileName, storage.Results.Messages, storage.Results.Contacts)
	return nil
}
