package repo

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-memdb"

	"github.com/skynet2/fio-ynab-importer/pkg/common"
	"github.com/skynet2/fio-ynab-importer/pkg/database"
)

const (
	transactionsTable     = "transactions"
	importBatchesTable    = "import_batches"
	processingStatesTable = "processing_states"
	credentialsTable      = "credentials"
)

type transactionRecord struct {
	SourceAccountID string
	ExternalID      string
	Transaction     database.Transaction
}

type processingStateRecord struct {
	SourceAccountID string
	ExternalID      string
	State           database.ProcessingState
}

// MemDB keeps everything in process memory. It is used for local runs and for
// tests that need real uniqueness semantics.
type MemDB struct {
	db *memdb.MemDB
}

func NewMemDB() (*MemDB, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			transactionsTable: {
				Name: transactionsTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": transactionIDIndex(),
				},
			},
			processingStatesTable: {
				Name: processingStatesTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": transactionIDIndex(),
				},
			},
			importBatchesTable: {
				Name: importBatchesTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"account": {
						Name:    "account",
						Indexer: &memdb.StringFieldIndex{Field: "AccountID"},
					},
				},
			},
			credentialsTable: {
				Name: credentialsTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "AccountID"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create memdb")
	}

	return &MemDB{db: db}, nil
}

func transactionIDIndex() *memdb.IndexSchema {
	return &memdb.IndexSchema{
		Name:   "id",
		Unique: true,
		Indexer: &memdb.CompoundIndex{
			Indexes: []memdb.Indexer{
				&memdb.StringFieldIndex{Field: "SourceAccountID"},
				&memdb.StringFieldIndex{Field: "ExternalID"},
			},
		},
	}
}

func (m *MemDB) SaveTransaction(_ context.Context, tx *database.Transaction) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if err := m.insertTransaction(txn, tx); err != nil {
		return err
	}

	txn.Commit()

	return nil
}

// SaveTransactions stores all new transactions in one write and returns the ids
// that were skipped because they already existed.
func (m *MemDB) SaveTransactions(_ context.Context, txs []*database.Transaction) ([]database.TransactionID, error) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	var duplicates []database.TransactionID

	for _, tx := range txs {
		if err := m.insertTransaction(txn, tx); err != nil {
			if errors.Is(err, common.ErrDuplicate) {
				duplicates = append(duplicates, tx.ID)
				continue
			}

			return nil, err
		}
	}

	txn.Commit()

	return duplicates, nil
}

func (m *MemDB) insertTransaction(txn *memdb.Txn, tx *database.Transaction) error {
	existing, err := txn.First(transactionsTable, "id", tx.ID.SourceAccountID, tx.ID.ExternalID)
	if err != nil {
		return errors.WithStack(err)
	}

	if existing != nil {
		return errors.Wrapf(common.ErrDuplicate, "transaction %s", tx.ID)
	}

	return errors.WithStack(txn.Insert(transactionsTable, &transactionRecord{
		SourceAccountID: tx.ID.SourceAccountID,
		ExternalID:      tx.ID.ExternalID,
		Transaction:     *tx,
	}))
}

func (m *MemDB) TransactionExists(_ context.Context, id database.TransactionID) (bool, error) {
	raw, err := m.db.Txn(false).First(transactionsTable, "id", id.SourceAccountID, id.ExternalID)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return raw != nil, nil
}

func (m *MemDB) GetTransaction(_ context.Context, id database.TransactionID) (*database.Transaction, error) {
	raw, err := m.db.Txn(false).First(transactionsTable, "id", id.SourceAccountID, id.ExternalID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if raw == nil {
		return nil, errors.Wrapf(common.ErrRecordNotFound, "transaction %s", id)
	}

	tx := raw.(*transactionRecord).Transaction

	return &tx, nil
}

func (m *MemDB) SaveImportBatch(_ context.Context, batch *database.ImportBatch) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	record := *batch
	if err := txn.Insert(importBatchesTable, &record); err != nil {
		return errors.WithStack(err)
	}

	txn.Commit()

	return nil
}

func (m *MemDB) GetImportBatch(_ context.Context, id string) (*database.ImportBatch, error) {
	raw, err := m.db.Txn(false).First(importBatchesTable, "id", id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if raw == nil {
		return nil, errors.Wrapf(common.ErrRecordNotFound, "import batch %s", id)
	}

	batch := *raw.(*database.ImportBatch)

	return &batch, nil
}

// GetLatestImportBatch returns the most recently created batch of the account,
// limited to the given statuses when any are passed.
func (m *MemDB) GetLatestImportBatch(
	_ context.Context,
	accountID string,
	statuses ...database.ImportStatus,
) (*database.ImportBatch, error) {
	it, err := m.db.Txn(false).Get(importBatchesTable, "account", accountID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var latest *database.ImportBatch

	for raw := it.Next(); raw != nil; raw = it.Next() {
		batch := raw.(*database.ImportBatch)

		if len(statuses) > 0 && !slices.Contains(statuses, batch.Status) {
			continue
		}

		if latest == nil || batch.CreatedAt.After(latest.CreatedAt) {
			latest = batch
		}
	}

	if latest == nil {
		return nil, errors.Wrapf(common.ErrRecordNotFound, "import batch for account %s", accountID)
	}

	batch := *latest

	return &batch, nil
}

func (m *MemDB) SaveProcessingState(_ context.Context, state *database.ProcessingState) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(processingStatesTable, &processingStateRecord{
		SourceAccountID: state.TransactionID.SourceAccountID,
		ExternalID:      state.TransactionID.ExternalID,
		State:           *state,
	}); err != nil {
		return errors.WithStack(err)
	}

	txn.Commit()

	return nil
}

func (m *MemDB) GetProcessingState(_ context.Context, id database.TransactionID) (*database.ProcessingState, error) {
	raw, err := m.db.Txn(false).First(processingStatesTable, "id", id.SourceAccountID, id.ExternalID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if raw == nil {
		return nil, errors.Wrapf(common.ErrRecordNotFound, "processing state %s", id)
	}

	state := raw.(*processingStateRecord).State

	return &state, nil
}

func (m *MemDB) SaveCredential(_ context.Context, credential *database.Credential) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	record := *credential
	if err := txn.Insert(credentialsTable, &record); err != nil {
		return errors.WithStack(err)
	}

	txn.Commit()

	return nil
}

func (m *MemDB) GetCredential(_ context.Context, accountID string) (*database.Credential, error) {
	raw, err := m.db.Txn(false).First(credentialsTable, "id", accountID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if raw == nil {
		return nil, errors.Wrapf(common.ErrRecordNotFound, "credential for account %s", accountID)
	}

	credential := *raw.(*database.Credential)

	return &credential, nil
}
