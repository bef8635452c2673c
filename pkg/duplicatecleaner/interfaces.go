package duplicatecleaner

import (
	"context"

	"github.com/skynet2/fio-ynab-importer/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package duplicatecleaner_test -source=interfaces.go

type Repo interface {
	TransactionExists(ctx context.Context, id database.TransactionID) (bool, error)
}
