package vault

import (
	"context"

	"github.com/skynet2/fio-ynab-importer/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package vault_test -source=interfaces.go

type Repo interface {
	SaveCredential(ctx context.Context, credential *database.Credential) error
	GetCredential(ctx context.Context, accountID string) (*database.Credential, error)
}
