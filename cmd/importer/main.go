package main

import (
	"context"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"github.com/skynet2/fio-ynab-importer/pkg/app"
	"github.com/skynet2/fio-ynab-importer/pkg/common"
	"github.com/skynet2/fio-ynab-importer/pkg/config"
	"github.com/skynet2/fio-ynab-importer/pkg/processor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var importCfg Config
	if err = env.Parse(&importCfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load import config")
	}

	logger := app.NewLogger(cfg)
	ctx := logger.WithContext(context.Background())

	application, err := app.New(ctx, cfg, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create app")
	}

	result, err := runImport(ctx, application.Processor, importCfg)
	application.Reporter.ReportImport(ctx, importCfg.AccountID, result, err)

	if err != nil && !common.IsOutcome(err) {
		logger.Error().Err(err).Msg("import failed")
		os.Exit(1)
	}
}

// runImport imports the configured range, or everything since the last sync
// when no start date is set.
func runImport(
	ctx context.Context,
	proc *processor.Processor,
	cfg Config,
) (*processor.ImportResult, error) {
	if cfg.StartDate == "" {
		return proc.ImportSinceLastSync(ctx, cfg.AccountID)
	}

	startDate, err := time.Parse(time.DateOnly, cfg.StartDate)
	if err != nil {
		return nil, errors.Wrapf(common.ErrInvalidDateRange, "IMPORT_START %q is not a YYYY-MM-DD date", cfg.StartDate)
	}

	endDate := time.Now().UTC()
	if cfg.EndDate != "" {
		if endDate, err = time.Parse(time.DateOnly, cfg.EndDate); err != nil {
			return nil, errors.Wrapf(common.ErrInvalidDateRange, "IMPORT_END %q is not a YYYY-MM-DD date", cfg.EndDate)
		}
	}

	return proc.ImportTransactions(ctx, cfg.AccountID, startDate, endDate)
}
