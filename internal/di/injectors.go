//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"mwa/internal"
	"mwa/internal/controllers"
	"mwa/internal/providers"
	"mwa/internal/runner"
	"mwa/internal/services"
	"mwa/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		runner.NewZstdCompressor,
		runner.NewLoader,
		services.NewAnalysisService,
		runner.NewFileManager,
		runner.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
