package database

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionID is unique per source account.
type TransactionID struct {
	SourceAccountID string `json:"sourceAccountId"`
	ExternalID      string `json:"externalId"`
}

func (t TransactionID) String() string {
	return fmt.Sprintf("%s:%s", t.SourceAccountID, t.ExternalID)
}

func (t TransactionID) IsZero() bool {
	return t.SourceAccountID == "" || t.ExternalID == ""
}

// Transaction is never changed after it has been stored.
type Transaction struct {
	ID                 TransactionID   `json:"id"`
	ImportBatchID      string          `json:"importBatchId"`
	Date               time.Time       `json:"date"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	CounterAccount     *string         `json:"counterAccount,omitempty"`
	CounterAccountName *string         `json:"counterAccountName,omitempty"`
	BankCode           *string         `json:"bankCode,omitempty"`
	BankName           *string         `json:"bankName,omitempty"`
	ConstantSymbol     *string         `json:"constantSymbol,omitempty"`
	VariableSymbol     *string         `json:"variableSymbol,omitempty"`
	SpecificSymbol     *string         `json:"specificSymbol,omitempty"`
	UserIdentification *string         `json:"userIdentification,omitempty"`
	Message            *string         `json:"message,omitempty"`
	Type               string          `json:"type"`
	Comment            *string         `json:"comment,omitempty"`
	ExecutedBy         *string         `json:"executedBy,omitempty"`
	Specification      *string         `json:"specification,omitempty"`
	BIC                *string         `json:"bic,omitempty"`
	InstructionID      *string         `json:"instructionId,omitempty"`
	ImportedAt         time.Time       `json:"importedAt"`
}

func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}
