//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/diesel-reports/internal/bootstrap"
	"github.com/yanqian/diesel-reports/internal/domain/catalog"
	"github.com/yanqian/diesel-reports/internal/domain/report"
	"github.com/yanqian/diesel-reports/internal/infra/config"
	httpiface "github.com/yanqian/diesel-reports/internal/interface/http"
	"github.com/yanqian/diesel-reports/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideReportConfig,
		provideCatalogConfig,
		providePostgresPool,
		provideQueryClient,
		provideCatalogRepository,
		provideCatalogStore,
		report.NewService,
		catalog.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
