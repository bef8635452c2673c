package main

import (
	"context"
	"time"

	"github.com/skynet2/fio-ynab-importer/pkg/database"
	"github.com/skynet2/fio-ynab-importer/pkg/processor"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package main -source=interfaces.go

type Importer interface {
	ImportTransactions(
		ctx context.Context,
		accountID string,
		startDate time.Time,
		endDate time.Time,
	) (*processor.ImportResult, error)
	ImportSinceLastSync(
		ctx context.Context,
		accountID string,
	) (*processor.ImportResult, error)
	SetBookmark(
		ctx context.Context,
		accountID string,
		date time.Time,
	) error
	StoreToken(
		ctx context.Context,
		accountID string,
		token string,
	) error
	GetImportBatch(
		ctx context.Context,
		id string,
	) (*database.ImportBatch, error)
	LatestImportBatch(
		ctx context.Context,
		accountID string,
	) (*database.ImportBatch, error)
}

type Reporter interface {
	ReportImport(
		ctx context.Context,
		accountID string,
		result *processor.ImportResult,
		importErr error,
	)
}
