package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/diillson/billswitch/internal/adapter/driven/catalog"
	"github.com/diillson/billswitch/internal/adapter/driven/config"
	"github.com/diillson/billswitch/internal/adapter/driven/export"
	"github.com/diillson/billswitch/internal/adapter/driven/extractor"
	"github.com/diillson/billswitch/internal/adapter/driving/cli"
	"github.com/diillson/billswitch/internal/adapter/driving/httpapi"
	"github.com/diillson/billswitch/internal/application/usecase"
	"github.com/diillson/billswitch/internal/domain/billing"
	"github.com/diillson/billswitch/internal/domain/repository"
	"github.com/diillson/billswitch/internal/shared/types"
	"github.com/diillson/billswitch/pkg/console"
	"github.com/diillson/billswitch/pkg/version"
)

func main() {
	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	carrierRepo := catalog.NewCarrierRepository()
	coverageRepo := catalog.NewCoverageRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, configRepo)

	// O extrator depende da configuração resolvida, então o caso de uso é montado por comando
	app.SetUseCaseBuilder(func(cfg types.Config, withExtractor, showProgress bool) (*usecase.AnalysisUseCase, error) {
		var billExtractor repository.BillExtractor
		if withExtractor {
			var err error
			billExtractor, err = extractor.New(cfg, showProgress)
			if err != nil {
				return nil, err
			}
		}

		return usecase.NewAnalysisUseCase(
			billExtractor,
			carrierRepo,
			coverageRepo,
			exportRepo,
			consoleImpl,
			billing.UploadLimitsFor(cfg.MaxUploadMB, cfg.AllowedTypes),
		), nil
	})

	app.SetServerRunner(func(ctx context.Context, uc *usecase.AnalysisUseCase, cfg types.Config) error {
		limits := billing.UploadLimitsFor(cfg.MaxUploadMB, cfg.AllowedTypes)
		server := httpapi.NewServer(uc, limits.MaxBytes)
		if cfg.RequestTimeoutSeconds > 0 {
			server.SetTimeouts(time.Duration(cfg.RequestTimeoutSeconds) * time.Second)
		}
		return server.ListenAndServe(ctx, cfg.ListenAddr)
	})

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
