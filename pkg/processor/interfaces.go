package processor

import (
	"context"
	"time"

	"github.com/skynet2/fio-ynab-importer/pkg/database"
	"github.com/skynet2/fio-ynab-importer/pkg/fio"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package processor_test -source=interfaces.go

type TransactionRepo interface {
	SaveTransactions(ctx context.Context, txs []*database.Transaction) ([]database.TransactionID, error)
}

type ImportBatchRepo interface {
	SaveImportBatch(ctx context.Context, batch *database.ImportBatch) error
	GetImportBatch(ctx context.Context, id string) (*database.ImportBatch, error)
	GetLatestImportBatch(
		ctx context.Context,
		accountID string,
		statuses ...database.ImportStatus,
	) (*database.ImportBatch, error)
}

type ProcessingStateRepo interface {
	SaveProcessingState(ctx context.Context, state *database.ProcessingState) error
	GetProcessingState(ctx context.Context, id database.TransactionID) (*database.ProcessingState, error)
}

type Vault interface {
	GetToken(ctx context.Context, accountID string) (string, error)
	StoreToken(ctx context.Context, accountID string, token string) error
	RecordSync(ctx context.Context, accountID string, syncedAt time.Time, marker *time.Time) error
}

type BankClient interface {
	MaxDateRangeDays() int
	FetchByDateRange(ctx context.Context, token string, from time.Time, to time.Time) ([]*fio.RawTransaction, error)
	FetchSinceLastSync(ctx context.Context, token string) ([]*fio.RawTransaction, error)
	SetBookmark(ctx context.Context, token string, date time.Time) error
}

type Mapper interface {
	MapTransactions(
		ctx context.Context,
		raw []*fio.RawTransaction,
		sourceAccountID string,
		importBatchID string,
		importedAt time.Time,
	) ([]*database.Transaction, error)
}

type DuplicateCleaner interface {
	Split(
		ctx context.Context,
		txs []*database.Transaction,
	) ([]*database.Transaction, []database.TransactionID, error)
}
