package duplicatecleaner

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"

	"github.com/skynet2/fio-ynab-importer/pkg/database"
)

const defaultPoolSize = 8

type DuplicateCleaner struct {
	repo     Repo
	poolSize int
}

func NewDuplicateCleaner(
	repo Repo,
	poolSize int,
) *DuplicateCleaner {
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}

	return &DuplicateCleaner{
		repo:     repo,
		poolSize: poolSize,
	}
}

// GetDuplicates returns the ids that already exist in the store. Lookups run in
// parallel; the first failing lookup fails the whole call.
func (d *DuplicateCleaner) GetDuplicates(
	ctx context.Context,
	ids []database.TransactionID,
) (map[database.TransactionID]struct{}, error) {
	final := map[database.TransactionID]struct{}{}

	unique := map[database.TransactionID]struct{}{}
	for _, id := range ids {
		if id.IsZero() {
			continue
		}

		unique[id] = struct{}{}
	}

	if len(unique) == 0 {
		return final, nil
	}

	wp := workerpool.New(d.poolSize)

	var mut sync.Mutex
	var finalErr error

	for id := range unique {
		id := id

		wp.Submit(func() {
			exists, err := d.repo.TransactionExists(ctx, id)

			mut.Lock()
			defer mut.Unlock()

			if err != nil {
				if finalErr == nil {
					finalErr = errors.Wrapf(err, "failed to check transaction %s", id)
				}

				return
			}

			if exists {
				final[id] = struct{}{}
			}
		})
	}

	wp.StopWait()

	if finalErr != nil {
		return nil, finalErr
	}

	return final, nil
}

// Split keeps the order of txs and separates the ones already stored. A repeated
// id inside txs counts as a duplicate after its first occurrence.
func (d *DuplicateCleaner) Split(
	ctx context.Context,
	txs []*database.Transaction,
) ([]*database.Transaction, []database.TransactionID, error) {
	ids := make([]database.TransactionID, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.ID)
	}

	existing, err := d.GetDuplicates(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	seen := map[database.TransactionID]struct{}{}

	var fresh []*database.Transaction
	var duplicates []database.TransactionID

	for _, tx := range txs {
		_, stored := existing[tx.ID]
		_, repeated := seen[tx.ID]

		if stored || repeated {
			duplicates = append(duplicates, tx.ID)
			continue
		}

		seen[tx.ID] = struct{}{}
		fresh = append(fresh, tx)
	}

	zerolog.Ctx(ctx).Debug().
		Int("fresh", len(fresh)).
		Int("duplicates", len(duplicates)).
		Msg("duplicate check finished")

	return fresh, duplicates, nil
}
