package repo

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"github.com/samber/lo"

	"github.com/skynet2/fio-ynab-importer/pkg/common"
	"github.com/skynet2/fio-ynab-importer/pkg/database"
)

const (
	transactionsContainer     = "transactions"
	importBatchesContainer    = "import_batches"
	processingStatesContainer = "processing_states"
	credentialsContainer      = "credentials"
	defaultPoolSize           = 50

	// import batches are looked up by id alone, so they share one logical partition
	importBatchKind = "import_batch"
)

type transactionDocument struct {
	ID              string               `json:"id"`
	SourceAccountID string               `json:"sourceAccountId"`
	Transaction     database.Transaction `json:"transaction"`
}

type processingStateDocument struct {
	ID              string                   `json:"id"`
	SourceAccountID string                   `json:"sourceAccountId"`
	State           database.ProcessingState `json:"state"`
}

type importBatchDocument struct {
	database.ImportBatch
	Kind          string `json:"kind"`
	CreatedAtUnix int64  `json:"createdAtUnix"`
}

type credentialDocument struct {
	ID string `json:"id"`
	database.Credential
}

type Cosmo struct {
	cl          *azcosmos.DatabaseClient
	setupCalled bool
	setupMut    sync.Mutex
}

func NewCosmo(
	cl *azcosmos.Client,
	dbName string,
) (*Cosmo, error) {
	_, err := cl.CreateDatabase(context.Background(), azcosmos.DatabaseProperties{
		ID: dbName,
	}, &azcosmos.CreateDatabaseOptions{})

	c := &Cosmo{}

	if realErr := c.ignoreDuplicateErr(err); realErr != nil {
		return nil, realErr
	}

	db, err := cl.NewDatabase(dbName)
	if err != nil {
		return nil, err
	}
	c.cl = db

	if err = c.setupContainers(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Cosmo) setupContainers() error {
	c.setupMut.Lock()
	defer c.setupMut.Unlock()

	if c.setupCalled {
		return nil
	}

	containers := map[string]string{
		transactionsContainer:     "/sourceAccountId",
		processingStatesContainer: "/sourceAccountId",
		importBatchesContainer:    "/kind",
		credentialsContainer:      "/accountId",
	}

	for name, partitionPath := range containers {
		_, err := c.cl.CreateContainer(context.Background(), azcosmos.ContainerProperties{
			ID: name,
			PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{
				Paths: []string{partitionPath},
			},
		}, &azcosmos.CreateContainerOptions{})
		if err = c.ignoreDuplicateErr(err); err != nil {
			return errors.Wrapf(err, "failed to create container %s", name)
		}
	}

	c.setupCalled = true

	return nil
}

func (c *Cosmo) ignoreDuplicateErr(err error) error {
	if statusCode(err) == http.StatusConflict {
		return nil
	}

	return err
}

func statusCode(err error) int {
	if err == nil {
		return 0
	}

	var azureErr *azcore.ResponseError
	if errors.As(err, &azureErr) {
		return azureErr.StatusCode
	}

	return 0
}

func (c *Cosmo) getContainer(name string) (*azcosmos.ContainerClient, error) {
	if err := c.setupContainers(); err != nil {
		return nil, err
	}

	return c.cl.NewContainer(name)
}

func (c *Cosmo) SaveTransaction(ctx context.Context, tx *database.Transaction) error {
	container, err := c.getContainer(transactionsContainer)
	if err != nil {
		return err
	}

	return c.createTransaction(ctx, container, tx)
}

func (c *Cosmo) createTransaction(
	ctx context.Context,
	container *azcosmos.ContainerClient,
	tx *database.Transaction,
) error {
	bytes, err := json.Marshal(transactionDocument{
		ID:              tx.ID.ExternalID,
		SourceAccountID: tx.ID.SourceAccountID,
		Transaction:     *tx,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	partitionKey := azcosmos.NewPartitionKeyString(tx.ID.SourceAccountID)

	if _, err = container.CreateItem(ctx, partitionKey, bytes, nil); err != nil {
		if statusCode(err) == http.StatusConflict {
			return errors.Wrapf(common.ErrDuplicate, "transaction %s", tx.ID)
		}

		return errors.Wrapf(err, "failed to create transaction %s", tx.ID)
	}

	return nil
}

// SaveTransactions writes in parallel and returns the ids rejected as already
// existing. Other write failures are joined into the returned error.
func (c *Cosmo) SaveTransactions(ctx context.Context, txs []*database.Transaction) ([]database.TransactionID, error) {
	if len(txs) == 0 {
		return nil, nil
	}

	container, err := c.getContainer(transactionsContainer)
	if err != nil {
		return nil, err
	}

	pool := workerpool.New(defaultPoolSize)

	var mut sync.Mutex
	var finalErr error
	duplicates := map[database.TransactionID]struct{}{}

	for _, tx1 := range txs {
		txCopy := tx1

		pool.Submit(func() {
			createErr := c.createTransaction(ctx, container, txCopy)

			mut.Lock()
			defer mut.Unlock()

			switch {
			case createErr == nil:
			case errors.Is(createErr, common.ErrDuplicate):
				duplicates[txCopy.ID] = struct{}{}
			default:
				finalErr = errors.Join(finalErr, createErr)
			}
		})
	}

	pool.StopWait()

	if finalErr != nil {
		return nil, finalErr
	}

	// keep input order for callers
	return lo.FilterMap(txs, func(tx *database.Transaction, _ int) (database.TransactionID, bool) {
		_, ok := duplicates[tx.ID]
		return tx.ID, ok
	}), nil
}

func (c *Cosmo) TransactionExists(ctx context.Context, id database.TransactionID) (bool, error) {
	container, err := c.getContainer(transactionsContainer)
	if err != nil {
		return false, err
	}

	partitionKey := azcosmos.NewPartitionKeyString(id.SourceAccountID)

	query := "SELECT c.id FROM c where c.id = @id"
	pager := container.NewQueryItemsPager(query, partitionKey, &azcosmos.QueryOptions{
		QueryParameters: []azcosmos.QueryParameter{
			{
				Name:  "@id",
				Value: id.ExternalID,
			},
		},
	})

	for pager.More() {
		response, pageErr := pager.NextPage(ctx)
		if pageErr != nil {
			return false, errors.Wrapf(pageErr, "failed to query transaction %s", id)
		}

		if len(response.Items) > 0 {
			return true, nil
		}
	}

	return false, nil
}

func (c *Cosmo) GetTransaction(ctx context.Context, id database.TransactionID) (*database.Transaction, error) {
	var doc transactionDocument

	if err := c.readItem(ctx, transactionsContainer, id.SourceAccountID, id.ExternalID, &doc); err != nil {
		return nil, errors.Wrapf(err, "transaction %s", id)
	}

	return &doc.Transaction, nil
}

func (c *Cosmo) SaveImportBatch(ctx context.Context, batch *database.ImportBatch) error {
	return c.upsertItem(ctx, importBatchesContainer, importBatchKind, importBatchDocument{
		ImportBatch:   *batch,
		Kind:          importBatchKind,
		CreatedAtUnix: batch.CreatedAt.UnixNano(),
	})
}

func (c *Cosmo) GetImportBatch(ctx context.Context, id string) (*database.ImportBatch, error) {
	var doc importBatchDocument

	if err := c.readItem(ctx, importBatchesContainer, importBatchKind, id, &doc); err != nil {
		return nil, errors.Wrapf(err, "import batch %s", id)
	}

	return &doc.ImportBatch, nil
}

func (c *Cosmo) GetLatestImportBatch(
	ctx context.Context,
	accountID string,
	statuses ...database.ImportStatus,
) (*database.ImportBatch, error) {
	container, err := c.getContainer(importBatchesContainer)
	if err != nil {
		return nil, err
	}

	query := "SELECT TOP 1 * FROM c where c.accountId = @accountId"
	parameters := []azcosmos.QueryParameter{
		{
			Name:  "@accountId",
			Value: accountID,
		},
	}

	if len(statuses) > 0 {
		query += " and ARRAY_CONTAINS(@statuses, c.status)"
		parameters = append(parameters, azcosmos.QueryParameter{
			Name: "@statuses",
			Value: lo.Map(statuses, func(s database.ImportStatus, _ int) string {
				return string(s)
			}),
		})
	}

	query += " order by c.createdAtUnix desc"

	pager := container.NewQueryItemsPager(query, azcosmos.NewPartitionKeyString(importBatchKind), &azcosmos.QueryOptions{
		QueryParameters: parameters,
	})

	for pager.More() {
		response, pageErr := pager.NextPage(ctx)
		if pageErr != nil {
			return nil, errors.Wrapf(pageErr, "failed to query import batches for account %s", accountID)
		}

		if len(response.Items) == 0 {
			continue
		}

		var doc importBatchDocument
		if err = json.Unmarshal(response.Items[0], &doc); err != nil {
			return nil, errors.WithStack(err)
		}

		return &doc.ImportBatch, nil
	}

	return nil, errors.Wrapf(common.ErrRecordNotFound, "import batch for account %s", accountID)
}

func (c *Cosmo) SaveProcessingState(ctx context.Context, state *database.ProcessingState) error {
	return c.upsertItem(ctx, processingStatesContainer, state.TransactionID.SourceAccountID, processingStateDocument{
		ID:              state.TransactionID.ExternalID,
		SourceAccountID: state.TransactionID.SourceAccountID,
		State:           *state,
	})
}

func (c *Cosmo) GetProcessingState(ctx context.Context, id database.TransactionID) (*database.ProcessingState, error) {
	var doc processingStateDocument

	if err := c.readItem(ctx, processingStatesContainer, id.SourceAccountID, id.ExternalID, &doc); err != nil {
		return nil, errors.Wrapf(err, "processing state %s", id)
	}

	return &doc.State, nil
}

func (c *Cosmo) SaveCredential(ctx context.Context, credential *database.Credential) error {
	return c.upsertItem(ctx, credentialsContainer, credential.AccountID, credentialDocument{
		ID:         credential.AccountID,
		Credential: *credential,
	})
}

func (c *Cosmo) GetCredential(ctx context.Context, accountID string) (*database.Credential, error) {
	var doc credentialDocument

	if err := c.readItem(ctx, credentialsContainer, accountID, accountID, &doc); err != nil {
		return nil, errors.Wrapf(err, "credential for account %s", accountID)
	}

	return &doc.Credential, nil
}

func (c *Cosmo) upsertItem(ctx context.Context, containerName string, partition string, doc any) error {
	container, err := c.getContainer(containerName)
	if err != nil {
		return err
	}

	bytes, err := json.Marshal(doc)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err = container.UpsertItem(ctx, azcosmos.NewPartitionKeyString(partition), bytes, nil); err != nil {
		return errors.Wrapf(err, "failed to upsert into %s", containerName)
	}

	return nil
}

func (c *Cosmo) readItem(ctx context.Context, containerName string, partition string, id string, target any) error {
	container, err := c.getContainer(containerName)
	if err != nil {
		return err
	}

	resp, err := container.ReadItem(ctx, azcosmos.NewPartitionKeyString(partition), id, nil)
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return common.ErrRecordNotFound
		}

		return errors.WithStack(err)
	}

	return errors.WithStack(json.Unmarshal(resp.Value, target))
}
