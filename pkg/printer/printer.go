package printer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/fio-ynab-importer/pkg/common"
	"github.com/skynet2/fio-ynab-importer/pkg/database"
	"github.com/skynet2/fio-ynab-importer/pkg/processor"
)

const maxListedIDs = 20

type Printer struct {
}

func NewPrinter() *Printer {
	return &Printer{}
}

// Import renders the outcome of one import run. result may be nil when the run
// failed before a batch was created.
func (p *Printer) Import(
	ctx context.Context,
	accountID string,
	result *processor.ImportResult,
	importErr error,
) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Account: %s", accountID))

	if result != nil && result.Batch != nil {
		sb.WriteString("\n")
		sb.WriteString(p.Stat(ctx, result))
	}

	sb.WriteString("\n\n")
	sb.WriteString(p.Outcome(ctx, importErr))

	if result != nil && len(result.DuplicateIDs) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(p.Duplicates(ctx, result.DuplicateIDs))
	}

	return sb.String()
}

func (p *Printer) Stat(
	_ context.Context,
	result *processor.ImportResult,
) string {
	batch := result.Batch

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Batch: %s", batch.ID))
	sb.WriteString(fmt.Sprintf("\nRange: %s .. %s",
		batch.StartDate.Format(time.DateOnly), batch.EndDate.Format(time.DateOnly)))
	sb.WriteString(fmt.Sprintf("\nStatus: %s", batch.Status))
	sb.WriteString(fmt.Sprintf("\nImported: %v 🔥", len(result.ImportedIDs)))
	sb.WriteString(fmt.Sprintf("\nDuplicates: %v ✨", len(result.DuplicateIDs)))

	if seconds, ok := batch.CompletionTimeSeconds(); ok {
		sb.WriteString(fmt.Sprintf("\nDuration: %vs", seconds))
	}

	return sb.String()
}

func (p *Printer) Outcome(
	_ context.Context,
	importErr error,
) string {
	if importErr == nil {
		return "Import completed! 🎉"
	}

	var noTx *common.NoTransactionsFoundError
	if errors.As(importErr, &noTx) {
		return fmt.Sprintf("No transactions found between %s and %s 💤",
			noTx.Start.Format(time.DateOnly), noTx.End.Format(time.DateOnly))
	}

	var allDup *common.AllTransactionsDuplicateError
	if errors.As(importErr, &allDup) {
		return fmt.Sprintf("All %v transactions are duplicates: ✅", allDup.Count)
	}

	var sb strings.Builder

	sb.WriteString("Import failed: ❌")

	switch {
	case errors.Is(importErr, common.ErrValidation):
		sb.WriteString("\nReason: invalid request")
	case errors.Is(importErr, common.ErrAuthentication):
		sb.WriteString("\nReason: bank token rejected, store a new token")
	case errors.Is(importErr, common.ErrRateLimit):
		sb.WriteString("\nReason: bank rate limit, try again in a minute")
	case errors.Is(importErr, common.ErrCredentialNotFound):
		sb.WriteString("\nReason: no token stored for the account")
	case common.IsRetryable(importErr):
		sb.WriteString("\nReason: bank unavailable, will work on retry")
	}

	sb.WriteString(fmt.Sprintf("\nERROR: %s", importErr))

	return sb.String()
}

func (p *Printer) Duplicates(
	_ context.Context,
	ids []database.TransactionID,
) string {
	if len(ids) == 0 {
		return "No duplicates found"
	}

	var sb strings.Builder

	sb.WriteString("Duplicates:")
	for i, id := range ids {
		if i == maxListedIDs {
			sb.WriteString(fmt.Sprintf("\n... and %v more", len(ids)-maxListedIDs))
			break
		}

		sb.WriteString(fmt.Sprintf("\n%s", id.ExternalID))
	}

	return sb.String()
}
