package notifications

import (
	"context"

	"github.com/skynet2/fio-ynab-importer/pkg/processor"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package notifications_test -source=interfaces.go

type Sender interface {
	SendMessage(
		ctx context.Context,
		chatID int64,
		text string,
	) error
}

type Printer interface {
	Import(
		ctx context.Context,
		accountID string,
		result *processor.ImportResult,
		importErr error,
	) string
}
