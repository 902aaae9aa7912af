package services

import (
	"context"
	"errors"

	"go.uber.org/atomic"

	"mwa/internal/analysis"
	"mwa/internal/models"
	"mwa/internal/providers"
	"mwa/internal/structures"
)

var ErrRunInProgress = errors.New("analysis run already in progress")

// CollectionLoader materializes the input corpus. Implemented by the runner
// package so the extraction format stays out of the service.
type CollectionLoader interface {
	Load() (*models.Collection, error)
}

type AnalysisServiceInterface interface {
	Run(ctx context.Context) error
	GetResults() *models.Results
	PutResults(r *models.Results)
	Ready() bool
}

type AnalysisService struct {
	conf    *structures.Config
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	cache   providers.CacheProviderInterface
	engine  *analysis.Engine
	loader  CollectionLoader
	store   *models.ResultsStore
	running *atomic.Bool
}

func NewAnalysisService(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, cache providers.CacheProviderInterface, loader CollectionLoader) AnalysisServiceInterface {
	return &AnalysisService{
		conf:    conf,
		logger:  logger,
		metrics: metrics,
		cache:   cache,
		engine:  analysis.NewEngine(conf, logger, metrics, cache),
		loader:  loader,
		store:   models.NewResultsStore(),
		running: atomic.NewBool(false),
	}
}

// Run loads the input collection, analyzes it and swaps the snapshot in.
// Concurrent runs are rejected rather than queued; the scheduler and the
// refresh endpoint both funnel through here.
func (as *AnalysisService) Run(ctx context.Context) error {
	if !as.running.CompareAndSwap(false, true) {
		return ErrRunInProgress
	}
	defer as.running.Store(false)

	col, err := as.loader.Load()
	if err != nil {
		return err
	}

	results, err := as.engine.Run(ctx, col)
	if err != nil {
		return err
	}

	as.cache.Clear()
	as.store.Put(results)
	as.publishTableSizes(results)
	return nil
}

func (as *AnalysisService) GetResults() *models.Results {
	return as.store.Get()
}

// PutResults installs a restored snapshot without running the engine, so the
// HTTP surface can serve persisted tables while the first run is in flight.
func (as *AnalysisService) PutResults(r *models.Results) {
	as.store.Put(r)
	as.publishTableSizes(r)
}

func (as *AnalysisService) Ready() bool {
	return as.store.Ready()
}

func (as *AnalysisService) publishTableSizes(r *models.Results) {
	as.metrics.SetTableRows("relationships", len(r.Relationships))
	as.metrics.SetTableRows("rankings", len(r.Rankings))
	as.metrics.SetTableRows("rank_shifts", len(r.RankShifts))
	as.metrics.SetTableRows("streaks", len(r.Streaks))
	as.metrics.SetTableRows("volume", len(r.Volume))
	as.metrics.SetTableRows("peak_hours", len(r.PeakHours))
	as.metrics.SetTableRows("questions_by_contact", len(r.QuestionsByContact))
	as.metrics.SetTableRows("phrases", len(r.Phrases))
	as.metrics.SetTableRows("terms", len(r.Terms))
	as.metrics.SetTableRows("topics", len(r.Topics))
	as.metrics.SetTableRows("sentiment", len(r.Sentiment))
}
