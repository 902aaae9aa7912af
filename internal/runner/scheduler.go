package runner

import (
	"context"
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"mwa/internal/providers"
	"mwa/internal/runner/interfaces"
	"mwa/internal/services"
	"mwa/internal/structures"
)

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	service     services.AnalysisServiceInterface
	fileManager *FileManager
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	saveInterval := s.config.Persistence.SaveInterval
	refreshInterval := s.config.Analysis.RefreshInterval

	s.cron.AddFunc(gron.Every(saveInterval*time.Second), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting results: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Persisted results to file %s", s.config.Persistence.FilePath)
	})

	s.cron.AddFunc(gron.Every(refreshInterval*time.Second), func() {
		s.logger.Infof(providers.TypeApp, "Refreshing analysis...")
		if err := s.service.Run(context.Background()); err != nil {
			if err == services.ErrRunInProgress {
				s.logger.Warnf(providers.TypeApp, "Skipping refresh: previous run still in progress")
				return
			}
			s.logger.Errorf(providers.TypeApp, "Refresh failed: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Analysis refreshed")
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting results to file...")
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting results: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.AnalysisServiceInterface, fileManager *FileManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
	}
}
