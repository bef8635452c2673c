package processor

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/skynet2/fio-ynab-importer/pkg/common"
	"github.com/skynet2/fio-ynab-importer/pkg/database"
	"github.com/skynet2/fio-ynab-importer/pkg/fio"
)

type fetchFn func(ctx context.Context, token string) ([]*fio.RawTransaction, error)

type Processor struct {
	transactionRepo     TransactionRepo
	importBatchRepo     ImportBatchRepo
	processingStateRepo ProcessingStateRepo
	vault               Vault
	bankClient          BankClient
	mapper              Mapper
	duplicateCleaner    DuplicateCleaner
	now                 func() time.Time
}

func NewProcessor(
	cfg *Config,
) *Processor {
	now := cfg.Now
	if now == nil {
		now = func() time.Time {
			return time.Now().UTC()
		}
	}

	return &Processor{
		transactionRepo:     cfg.TransactionRepo,
		importBatchRepo:     cfg.ImportBatchRepo,
		processingStateRepo: cfg.ProcessingStateRepo,
		vault:               cfg.Vault,
		bankClient:          cfg.BankClient,
		mapper:              cfg.Mapper,
		duplicateCleaner:    cfg.DuplicateCleaner,
		now:                 now,
	}
}

// ImportTransactions fetches the account statement for the range, stores the
// transactions that are not known yet and creates their processing states. The
// batch always ends Completed or Error; every returned error is *common.ImportError.
func (p *Processor) ImportTransactions(
	ctx context.Context,
	accountID string,
	startDate time.Time,
	endDate time.Time,
) (*ImportResult, error) {
	batch, err := database.NewImportBatch(accountID, startDate, endDate, p.bankClient.MaxDateRangeDays(), p.now())
	if err != nil {
		return nil, &common.ImportError{AccountID: accountID, Err: err}
	}

	return p.runImport(ctx, batch, func(ctx context.Context, token string) ([]*fio.RawTransaction, error) {
		return p.bankClient.FetchByDateRange(ctx, token, batch.StartDate, batch.EndDate)
	})
}

// ImportSinceLastSync imports everything after the bank side bookmark. The batch
// covers the day after the last completed batch up to today, or the widest window
// the bank serves when the account was never imported.
func (p *Processor) ImportSinceLastSync(
	ctx context.Context,
	accountID string,
) (*ImportResult, error) {
	now := p.now()
	today := database.DateOnly(now)
	maxDays := p.bankClient.MaxDateRangeDays()

	windowStart := today.AddDate(0, 0, -maxDays)
	startDate := windowStart

	last, err := p.importBatchRepo.GetLatestImportBatch(ctx, accountID, database.ImportStatusCompleted)
	switch {
	case err == nil:
		// the bank serves at most maxDays back, an older batch only moves the
		// start forward
		startDate = last.EndDate.AddDate(0, 0, 1)
		if startDate.Before(windowStart) {
			startDate = windowStart
		}

		if startDate.After(today) {
			startDate = today
		}
	case errors.Is(err, common.ErrRecordNotFound):
	default:
		return nil, &common.ImportError{
			AccountID: accountID,
			Err:       errors.Wrap(errors.Mark(err, common.ErrImportBatchStorage), "failed to load last import batch"),
		}
	}

	batch, err := database.NewImportBatch(accountID, startDate, today, maxDays, now)
	if err != nil {
		return nil, &common.ImportError{AccountID: accountID, Err: err}
	}

	result, err := p.runImport(ctx, batch, p.bankClient.FetchSinceLastSync)

	// the bank moves its marker on every served fetch, outcomes included
	if err == nil || common.IsOutcome(err) {
		if syncErr := p.vault.RecordSync(ctx, accountID, p.now(), nil); syncErr != nil {
			zerolog.Ctx(ctx).Warn().Err(syncErr).Str("account_id", accountID).Msg("failed to record sync time")
		}
	}

	return result, err
}

func (p *Processor) runImport(
	ctx context.Context,
	batch *database.ImportBatch,
	fetch fetchFn,
) (*ImportResult, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("import_batch_id", batch.ID).
		Str("account_id", batch.AccountID).
		Logger()
	ctx = logger.WithContext(ctx)

	if err := p.importBatchRepo.SaveImportBatch(ctx, batch); err != nil {
		return nil, p.importError(batch, errors.Wrap(errors.Mark(err, common.ErrImportBatchStorage),
			"failed to create import batch"))
	}

	result := &ImportResult{
		Batch: batch,
	}

	if err := batch.MarkInProgress(p.now()); err != nil {
		return result, p.fail(ctx, batch, err)
	}

	if err := p.importBatchRepo.SaveImportBatch(ctx, batch); err != nil {
		return result, p.fail(ctx, batch, errors.Wrap(errors.Mark(err, common.ErrImportBatchStorage),
			"failed to start import batch"))
	}

	imported, duplicates, err := p.execute(ctx, batch, fetch)
	result.ImportedIDs = imported
	result.DuplicateIDs = duplicates
	batch.DuplicateCount = len(duplicates)

	if err != nil {
		return result, p.fail(ctx, batch, err)
	}

	if err = batch.MarkCompleted(len(imported), p.now()); err != nil {
		return result, p.fail(ctx, batch, err)
	}

	if err = p.importBatchRepo.SaveImportBatch(ctx, batch); err != nil {
		return result, p.fail(ctx, batch, errors.Wrap(errors.Mark(err, common.ErrImportBatchStorage),
			"failed to complete import batch"))
	}

	logger.Info().
		Int("imported", len(imported)).
		Int("duplicates", len(duplicates)).
		Msg("import completed")

	return result, nil
}

func (p *Processor) execute(
	ctx context.Context,
	batch *database.ImportBatch,
	fetch fetchFn,
) ([]database.TransactionID, []database.TransactionID, error) {
	token, err := p.vault.GetToken(ctx, batch.AccountID)
	if err != nil {
		return nil, nil, err
	}

	raw, err := fetch(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	if len(raw) == 0 {
		return nil, nil, &common.NoTransactionsFoundError{Start: batch.StartDate, End: batch.EndDate}
	}

	txs, err := p.mapper.MapTransactions(ctx, raw, batch.AccountID, batch.ID, p.now())
	if err != nil {
		return nil, nil, err
	}

	fresh, duplicates, err := p.duplicateCleaner.Split(ctx, txs)
	if err != nil {
		return nil, nil, errors.Wrap(errors.Mark(err, common.ErrTransactionStorage), "failed to check duplicates")
	}

	var imported []database.TransactionID

	if len(fresh) > 0 {
		// the store is the final authority on uniqueness, a concurrent import may
		// have written some of these after the existence check
		skipped, saveErr := p.transactionRepo.SaveTransactions(ctx, fresh)
		if saveErr != nil {
			return nil, duplicates, errors.Wrap(errors.Mark(saveErr, common.ErrTransactionStorage),
				"failed to save transactions")
		}

		skippedSet := map[database.TransactionID]struct{}{}
		for _, id := range skipped {
			skippedSet[id] = struct{}{}
		}

		for _, tx := range fresh {
			if _, ok := skippedSet[tx.ID]; ok {
				duplicates = append(duplicates, tx.ID)
				continue
			}

			state := database.NewProcessingState(tx.ID, p.now())
			if err = p.processingStateRepo.SaveProcessingState(ctx, state); err != nil {
				return imported, duplicates, errors.Wrapf(errors.Mark(err, common.ErrTransactionStorage),
					"failed to save processing state for %s", tx.ID)
			}

			imported = append(imported, tx.ID)
		}
	}

	// a transaction stored by an earlier run that failed before writing its
	// processing state is finished here instead of staying a duplicate
	var remaining []database.TransactionID

	for _, id := range duplicates {
		repaired, repairErr := p.ensureProcessingState(ctx, id)
		if repairErr != nil {
			return imported, duplicates, repairErr
		}

		if repaired {
			imported = append(imported, id)
			continue
		}

		remaining = append(remaining, id)
	}

	duplicates = remaining

	zerolog.Ctx(ctx).Debug().
		Int("fetched", len(raw)).
		Int("imported", len(imported)).
		Int("duplicates", len(duplicates)).
		Msg("transactions persisted")

	if len(imported) == 0 {
		return nil, duplicates, &common.AllTransactionsDuplicateError{
			Start: batch.StartDate,
			End:   batch.EndDate,
			Count: len(duplicates),
		}
	}

	return imported, duplicates, nil
}

// ensureProcessingState creates the initial state for a stored transaction
// that has none and reports whether it did.
func (p *Processor) ensureProcessingState(ctx context.Context, id database.TransactionID) (bool, error) {
	_, err := p.processingStateRepo.GetProcessingState(ctx, id)
	if err == nil {
		return false, nil
	}

	if !errors.Is(err, common.ErrRecordNotFound) {
		return false, errors.Wrapf(errors.Mark(err, common.ErrTransactionStorage),
			"failed to load processing state for %s", id)
	}

	if err = p.processingStateRepo.SaveProcessingState(ctx, database.NewProcessingState(id, p.now())); err != nil {
		return false, errors.Wrapf(errors.Mark(err, common.ErrTransactionStorage),
			"failed to save processing state for %s", id)
	}

	zerolog.Ctx(ctx).Info().Str("transaction_id", id.String()).Msg("restored missing processing state")

	return true, nil
}

// fail closes the batch with the error message. Persisting the failed batch is
// best effort so that the original error reaches the caller.
func (p *Processor) fail(ctx context.Context, batch *database.ImportBatch, cause error) error {
	batch.MarkFailed(cause.Error(), p.now())

	logger := zerolog.Ctx(ctx)

	if err := p.importBatchRepo.SaveImportBatch(ctx, batch); err != nil {
		logger.Error().Err(err).Msg("failed to persist failed import batch")
	}

	event := logger.Error()
	if common.IsOutcome(cause) {
		event = logger.Warn()
	}
	event.Err(cause).Msg("import failed")

	return p.importError(batch, cause)
}

func (p *Processor) importError(batch *database.ImportBatch, cause error) error {
	return &common.ImportError{
		BatchID:   batch.ID,
		AccountID: batch.AccountID,
		Err:       cause,
	}
}

// SetBookmark moves the bank side marker so the next ImportSinceLastSync starts
// after date.
func (p *Processor) SetBookmark(
	ctx context.Context,
	accountID string,
	date time.Time,
) error {
	now := p.now()

	if date.IsZero() {
		return common.InvalidDateRange("bookmark date is required")
	}

	date = database.DateOnly(date)
	if date.After(database.DateOnly(now)) {
		return common.InvalidDateRange("bookmark date %s is in the future", date.Format(time.DateOnly))
	}

	token, err := p.vault.GetToken(ctx, accountID)
	if err != nil {
		return err
	}

	if err = p.bankClient.SetBookmark(ctx, token, date); err != nil {
		return errors.Wrapf(err, "failed to set bookmark for account %s", accountID)
	}

	if err = p.vault.RecordSync(ctx, accountID, now, &date); err != nil {
		return errors.Wrapf(err, "bookmark set but not recorded for account %s", accountID)
	}

	zerolog.Ctx(ctx).Info().
		Str("account_id", accountID).
		Str("date", date.Format(time.DateOnly)).
		Msg("bookmark set")

	return nil
}

func (p *Processor) LatestImportBatch(ctx context.Context, accountID string) (*database.ImportBatch, error) {
	return p.importBatchRepo.GetLatestImportBatch(ctx, accountID)
}

func (p *Processor) GetImportBatch(ctx context.Context, id string) (*database.ImportBatch, error) {
	return p.importBatchRepo.GetImportBatch(ctx, id)
}

func (p *Processor) StoreToken(ctx context.Context, accountID string, token string) error {
	if err := fio.ValidateToken(token); err != nil {
		return err
	}

	return p.vault.StoreToken(ctx, accountID, token)
}
