package repo

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skynet2/fio-ynab-importer/pkg/common"
	"github.com/skynet2/fio-ynab-importer/pkg/database"
)

type transactionRow struct {
	SourceAccountID    string `gorm:"primaryKey"`
	ExternalID         string `gorm:"primaryKey"`
	ImportBatchID      string
	Date               time.Time `gorm:"type:date"`
	Amount             decimal.Decimal
	Currency           string
	CounterAccount     *string
	CounterAccountName *string
	BankCode           *string
	BankName           *string
	ConstantSymbol     *string
	VariableSymbol     *string
	SpecificSymbol     *string
	UserIdentification *string
	Message            *string
	Type               string
	Comment            *string
	ExecutedBy         *string
	Specification      *string
	BIC                *string `gorm:"column:bic"`
	InstructionID      *string
	ImportedAt         time.Time
}

func (transactionRow) TableName() string {
	return "fio_transactions"
}

type importBatchRow struct {
	ID               string `gorm:"primaryKey"`
	AccountID        string
	StartDate        time.Time `gorm:"type:date"`
	EndDate          time.Time `gorm:"type:date"`
	Status           string
	TransactionCount int
	DuplicateCount   int
	ErrorMessage     *string
	StartTime        time.Time
	EndTime          *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (importBatchRow) TableName() string {
	return "fio_import_batches"
}

type processingStateRow struct {
	SourceAccountID    string `gorm:"primaryKey"`
	ExternalID         string `gorm:"primaryKey"`
	Status             string
	IsDuplicate        bool
	SuggestedPayeeName *string
	OverridePayeeName  *string
	SuggestedCategory  *database.Category `gorm:"serializer:json"`
	OverrideCategory   *database.Category `gorm:"serializer:json"`
	SuggestedMemo      *string
	OverrideMemo       *string
	CategoryConfidence *float64
	PayeeConfidence    *float64
	YnabTransactionID  *string
	YnabAccountID      *string
	ProcessedAt        *time.Time
	SubmittedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (processingStateRow) TableName() string {
	return "fio_processing_states"
}

type credentialRow struct {
	AccountID      string `gorm:"primaryKey"`
	EncryptedToken string
	LastSyncAt     *time.Time
	LastSyncMarker *time.Time `gorm:"type:date"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (credentialRow) TableName() string {
	return "fio_credentials"
}

type Postgres struct {
	db *gorm.DB
}

// NewPostgres expects a schema created by Migrate.
func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) SaveTransaction(ctx context.Context, tx *database.Transaction) error {
	return p.insertTransaction(p.db.WithContext(ctx), tx)
}

func (p *Postgres) insertTransaction(db *gorm.DB, tx *database.Transaction) error {
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(toTransactionRow(tx))
	if res.Error != nil {
		return errors.Wrapf(res.Error, "failed to insert transaction %s", tx.ID)
	}

	if res.RowsAffected == 0 {
		return errors.Wrapf(common.ErrDuplicate, "transaction %s", tx.ID)
	}

	return nil
}

// SaveTransactions inserts everything in one database transaction and returns the
// ids that already existed.
func (p *Postgres) SaveTransactions(ctx context.Context, txs []*database.Transaction) ([]database.TransactionID, error) {
	var duplicates []database.TransactionID

	err := p.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		for _, tx := range txs {
			if err := p.insertTransaction(db, tx); err != nil {
				if errors.Is(err, common.ErrDuplicate) {
					duplicates = append(duplicates, tx.ID)
					continue
				}

				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return duplicates, nil
}

func (p *Postgres) TransactionExists(ctx context.Context, id database.TransactionID) (bool, error) {
	var count int64

	if err := p.db.WithContext(ctx).
		Model(&transactionRow{}).
		Where("source_account_id = ? and external_id = ?", id.SourceAccountID, id.ExternalID).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "failed to check transaction %s", id)
	}

	return count > 0, nil
}

func (p *Postgres) GetTransaction(ctx context.Context, id database.TransactionID) (*database.Transaction, error) {
	var row transactionRow

	if err := p.db.WithContext(ctx).
		Where("source_account_id = ? and external_id = ?", id.SourceAccountID, id.ExternalID).
		First(&row).Error; err != nil {
		return nil, notFound(err, "transaction %s", id)
	}

	return row.toTransaction(), nil
}

func (p *Postgres) SaveImportBatch(ctx context.Context, batch *database.ImportBatch) error {
	row := importBatchRow{
		ID:               batch.ID,
		AccountID:        batch.AccountID,
		StartDate:        batch.StartDate,
		EndDate:          batch.EndDate,
		Status:           string(batch.Status),
		TransactionCount: batch.TransactionCount,
		DuplicateCount:   batch.DuplicateCount,
		ErrorMessage:     batch.ErrorMessage,
		StartTime:        batch.StartTime,
		EndTime:          batch.EndTime,
		CreatedAt:        batch.CreatedAt,
		UpdatedAt:        batch.UpdatedAt,
	}

	return errors.Wrapf(
		p.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error,
		"failed to save import batch %s", batch.ID,
	)
}

func (p *Postgres) GetImportBatch(ctx context.Context, id string) (*database.ImportBatch, error) {
	var row importBatchRow

	if err := p.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err, "import batch %s", id)
	}

	return row.toImportBatch(), nil
}

func (p *Postgres) GetLatestImportBatch(
	ctx context.Context,
	accountID string,
	statuses ...database.ImportStatus,
) (*database.ImportBatch, error) {
	var row importBatchRow

	query := p.db.WithContext(ctx).Where("account_id = ?", accountID)
	if len(statuses) > 0 {
		query = query.Where("status in ?", lo.Map(statuses, func(s database.ImportStatus, _ int) string {
			return string(s)
		}))
	}

	if err := query.Order("created_at desc").First(&row).Error; err != nil {
		return nil, notFound(err, "import batch for account %s", accountID)
	}

	return row.toImportBatch(), nil
}

func (p *Postgres) SaveProcessingState(ctx context.Context, state *database.ProcessingState) error {
	row := processingStateRow{
		SourceAccountID:    state.TransactionID.SourceAccountID,
		ExternalID:         state.TransactionID.ExternalID,
		Status:             string(state.Status),
		IsDuplicate:        state.IsDuplicate,
		SuggestedPayeeName: state.SuggestedPayeeName,
		OverridePayeeName:  state.OverridePayeeName,
		SuggestedCategory:  state.SuggestedCategory,
		OverrideCategory:   state.OverrideCategory,
		SuggestedMemo:      state.SuggestedMemo,
		OverrideMemo:       state.OverrideMemo,
		CategoryConfidence: state.CategoryConfidence,
		PayeeConfidence:    state.PayeeConfidence,
		YnabTransactionID:  state.YnabTransactionID,
		YnabAccountID:      state.YnabAccountID,
		ProcessedAt:        state.ProcessedAt,
		SubmittedAt:        state.SubmittedAt,
		CreatedAt:          state.CreatedAt,
		UpdatedAt:          state.UpdatedAt,
	}

	return errors.Wrapf(
		p.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error,
		"failed to save processing state %s", state.TransactionID,
	)
}

func (p *Postgres) GetProcessingState(ctx context.Context, id database.TransactionID) (*database.ProcessingState, error) {
	var row processingStateRow

	if err := p.db.WithContext(ctx).
		Where("source_account_id = ? and external_id = ?", id.SourceAccountID, id.ExternalID).
		First(&row).Error; err != nil {
		return nil, notFound(err, "processing state %s", id)
	}

	return &database.ProcessingState{
		TransactionID:      id,
		Status:             database.ProcessingStatus(row.Status),
		IsDuplicate:        row.IsDuplicate,
		SuggestedPayeeName: row.SuggestedPayeeName,
		OverridePayeeName:  row.OverridePayeeName,
		SuggestedCategory:  row.SuggestedCategory,
		OverrideCategory:   row.OverrideCategory,
		SuggestedMemo:      row.SuggestedMemo,
		OverrideMemo:       row.OverrideMemo,
		CategoryConfidence: row.CategoryConfidence,
		PayeeConfidence:    row.PayeeConfidence,
		YnabTransactionID:  row.YnabTransactionID,
		YnabAccountID:      row.YnabAccountID,
		ProcessedAt:        row.ProcessedAt,
		SubmittedAt:        row.SubmittedAt,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}, nil
}

func (p *Postgres) SaveCredential(ctx context.Context, credential *database.Credential) error {
	row := credentialRow{
		AccountID:      credential.AccountID,
		EncryptedToken: credential.EncryptedToken,
		LastSyncAt:     credential.LastSyncAt,
		LastSyncMarker: credential.LastSyncMarker,
		CreatedAt:      credential.CreatedAt,
		UpdatedAt:      credential.UpdatedAt,
	}

	return errors.Wrapf(
		p.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error,
		"failed to save credential for account %s", credential.AccountID,
	)
}

func (p *Postgres) GetCredential(ctx context.Context, accountID string) (*database.Credential, error) {
	var row credentialRow

	if err := p.db.WithContext(ctx).Where("account_id = ?", accountID).First(&row).Error; err != nil {
		return nil, notFound(err, "credential for account %s", accountID)
	}

	return &database.Credential{
		AccountID:      row.AccountID,
		EncryptedToken: row.EncryptedToken,
		LastSyncAt:     row.LastSyncAt,
		LastSyncMarker: row.LastSyncMarker,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(common.ErrRecordNotFound, format, args...)
	}

	return errors.Wrapf(err, format, args...)
}

func toTransactionRow(tx *database.Transaction) *transactionRow {
	return &transactionRow{
		SourceAccountID:    tx.ID.SourceAccountID,
		ExternalID:         tx.ID.ExternalID,
		ImportBatchID:      tx.ImportBatchID,
		Date:               tx.Date,
		Amount:             tx.Amount,
		Currency:           tx.Currency,
		CounterAccount:     tx.CounterAccount,
		CounterAccountName: tx.CounterAccountName,
		BankCode:           tx.BankCode,
		BankName:           tx.BankName,
		ConstantSymbol:     tx.ConstantSymbol,
		VariableSymbol:     tx.VariableSymbol,
		SpecificSymbol:     tx.SpecificSymbol,
		UserIdentification: tx.UserIdentification,
		Message:            tx.Message,
		Type:               tx.Type,
		Comment:            tx.Comment,
		ExecutedBy:         tx.ExecutedBy,
		Specification:      tx.Specification,
		BIC:                tx.BIC,
		InstructionID:      tx.InstructionID,
		ImportedAt:         tx.ImportedAt,
	}
}

func (r *transactionRow) toTransaction() *database.Transaction {
	return &database.Transaction{
		ID: database.TransactionID{
			SourceAccountID: r.SourceAccountID,
			ExternalID:      r.ExternalID,
		},
		ImportBatchID:      r.ImportBatchID,
		Date:               r.Date.UTC(),
		Amount:             r.Amount,
		Currency:           r.Currency,
		CounterAccount:     r.CounterAccount,
		CounterAccountName: r.CounterAccountName,
		BankCode:           r.BankCode,
		BankName:           r.BankName,
		ConstantSymbol:     r.ConstantSymbol,
		VariableSymbol:     r.VariableSymbol,
		SpecificSymbol:     r.SpecificSymbol,
		UserIdentification: r.UserIdentification,
		Message:            r.Message,
		Type:               r.Type,
		Comment:            r.Comment,
		ExecutedBy:         r.ExecutedBy,
		Specification:      r.Specification,
		BIC:                r.BIC,
		InstructionID:      r.InstructionID,
		ImportedAt:         r.ImportedAt.UTC(),
	}
}

func (r *importBatchRow) toImportBatch() *database.ImportBatch {
	return &database.ImportBatch{
		ID:               r.ID,
		AccountID:        r.AccountID,
		StartDate:        r.StartDate.UTC(),
		EndDate:          r.EndDate.UTC(),
		Status:           database.ImportStatus(r.Status),
		TransactionCount: r.TransactionCount,
		DuplicateCount:   r.DuplicateCount,
		ErrorMessage:     r.ErrorMessage,
		StartTime:        r.StartTime.UTC(),
		EndTime:          r.EndTime,
		CreatedAt:        r.CreatedAt.UTC(),
		UpdatedAt:        r.UpdatedAt.UTC(),
	}
}
