package processor

import (
	"time"

	"github.com/skynet2/fio-ynab-importer/pkg/database"
)

type Config struct {
	TransactionRepo     TransactionRepo
	ImportBatchRepo     ImportBatchRepo
	ProcessingStateRepo ProcessingStateRepo
	Vault               Vault
	BankClient          BankClient
	Mapper              Mapper
	DuplicateCleaner    DuplicateCleaner
	Now                 func() time.Time
}

// ImportResult is returned whenever a batch was created, including alongside an
// error, so callers can still report the batch and the duplicates it saw.
type ImportResult struct {
	Batch        *database.ImportBatch
	ImportedIDs  []database.TransactionID
	DuplicateIDs []database.TransactionID
}
