package vault

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/skynet2/fio-ynab-importer/pkg/common"
	"github.com/skynet2/fio-ynab-importer/pkg/database"
)

type Vault struct {
	repo  Repo
	cache *TokenCache
	key   []byte
	now   func() time.Time
}

func NewVault(
	repo Repo,
	cache *TokenCache,
	secret string,
) *Vault {
	return &Vault{
		repo:  repo,
		cache: cache,
		key:   deriveKey(secret),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// WithClock replaces the time source, mostly for tests.
func (v *Vault) WithClock(now func() time.Time) *Vault {
	v.now = now

	return v
}

func (v *Vault) GetToken(ctx context.Context, accountID string) (string, error) {
	if token, ok := v.cache.Get(accountID); ok {
		return token, nil
	}

	credential, err := v.getCredential(ctx, accountID)
	if err != nil {
		return "", err
	}

	token, err := v.Decrypt(credential.EncryptedToken)
	if err != nil {
		return "", errors.Wrapf(err, "account %s", accountID)
	}

	v.cache.Set(accountID, token)
	zerolog.Ctx(ctx).Debug().Str("account_id", accountID).Msg("token loaded from credential store")

	return token, nil
}

func (v *Vault) StoreToken(ctx context.Context, accountID string, token string) error {
	if accountID == "" {
		return &common.ValidationError{Kind: common.ErrValidation, Message: "account id is required"}
	}

	if token == "" {
		return errors.Wrap(common.ErrInvalidToken, "token is empty")
	}

	encrypted, err := v.Encrypt(token)
	if err != nil {
		return err
	}

	now := v.now()

	credential, err := v.getCredential(ctx, accountID)
	if err != nil {
		if !errors.Is(err, common.ErrCredentialNotFound) {
			return err
		}

		credential = &database.Credential{
			AccountID: accountID,
			CreatedAt: now,
		}
	}

	credential.EncryptedToken = encrypted
	credential.UpdatedAt = now

	if err = v.repo.SaveCredential(ctx, credential); err != nil {
		return errors.Wrapf(err, "failed to save credential for account %s", accountID)
	}

	v.cache.Set(accountID, token)

	return nil
}

// RecordSync stores when the account was last synced and, when given, the
// bookmark date that was set on the bank side.
func (v *Vault) RecordSync(
	ctx context.Context,
	accountID string,
	syncedAt time.Time,
	marker *time.Time,
) error {
	credential, err := v.getCredential(ctx, accountID)
	if err != nil {
		return err
	}

	syncedAt = syncedAt.UTC()
	credential.LastSyncAt = &syncedAt
	if marker != nil {
		credential.LastSyncMarker = marker
	}
	credential.UpdatedAt = v.now()

	return v.repo.SaveCredential(ctx, credential)
}

func (v *Vault) InvalidateCache(accountID string) {
	v.cache.Remove(accountID)
}

func (v *Vault) ClearCache() {
	v.cache.Clear()
}

func (v *Vault) getCredential(ctx context.Context, accountID string) (*database.Credential, error) {
	credential, err := v.repo.GetCredential(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrRecordNotFound) {
			return nil, errors.Wrapf(common.ErrCredentialNotFound, "account %s", accountID)
		}

		return nil, errors.Wrapf(err, "failed to load credential for account %s", accountID)
	}

	return credential, nil
}
