package main

import (
	"github.com/skynet2/fio-ynab-importer/pkg/database"
)

type ImportRequest struct {
	AccountID string `json:"accountId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type BookmarkRequest struct {
	AccountID string `json:"accountId"`
	Date      string `json:"date"`
}

type CredentialRequest struct {
	AccountID string `json:"accountId"`
	Token     string `json:"token"`
}

type ImportResponse struct {
	Batch        *database.ImportBatch    `json:"batch,omitempty"`
	ImportedIDs  []database.TransactionID `json:"importedIds"`
	DuplicateIDs []database.TransactionID `json:"duplicateIds"`
	Error        string                   `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
