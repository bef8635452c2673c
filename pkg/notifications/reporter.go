package notifications

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skynet2/fio-ynab-importer/pkg/processor"
)

// Reporter sends import outcomes to a chat. A zero chat id disables it.
type Reporter struct {
	sender  Sender
	printer Printer
	chatID  int64
}

func NewReporter(
	sender Sender,
	printer Printer,
	chatID int64,
) *Reporter {
	return &Reporter{
		sender:  sender,
		printer: printer,
		chatID:  chatID,
	}
}

// ReportImport never fails the import itself; delivery errors are logged.
func (r *Reporter) ReportImport(
	ctx context.Context,
	accountID string,
	result *processor.ImportResult,
	importErr error,
) {
	if r.chatID == 0 || r.sender == nil {
		return
	}

	text := r.printer.Import(ctx, accountID, result, importErr)

	if err := r.sender.SendMessage(ctx, r.chatID, text); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("account_id", accountID).Msg("failed to send import report")
	}
}
