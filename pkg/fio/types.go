package fio

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Response struct {
	AccountStatement Statement `json:"accountStatement"`
}

type Statement struct {
	Info            StatementInfo   `json:"info"`
	TransactionList TransactionList `json:"transactionList"`
}

type StatementInfo struct {
	AccountID      string           `json:"accountId"`
	BankID         string           `json:"bankId"`
	Currency       string           `json:"currency"`
	IBAN           string           `json:"iban"`
	BIC            string           `json:"bic"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
	ClosingBalance *decimal.Decimal `json:"closingBalance"`
	DateStart      string           `json:"dateStart"`
	DateEnd        string           `json:"dateEnd"`
	IDFrom         *int64           `json:"idFrom"`
	IDTo           *int64           `json:"idTo"`
	IDLastDownload *int64           `json:"idLastDownload"`
}

type TransactionList struct {
	Transaction []*RawTransaction `json:"transaction"`
}

// RawTransaction is one statement row. Fio keys every attribute by a fixed column
// number; absent columns are either missing or null.
type RawTransaction struct {
	Date               *Column `json:"column0"`
	Amount             *Column `json:"column1"`
	CounterAccount     *Column `json:"column2"`
	BankCode           *Column `json:"column3"`
	ConstantSymbol     *Column `json:"column4"`
	VariableSymbol     *Column `json:"column5"`
	SpecificSymbol     *Column `json:"column6"`
	UserIdentification *Column `json:"column7"`
	Type               *Column `json:"column8"`
	ExecutedBy         *Column `json:"column9"`
	CounterAccountName *Column `json:"column10"`
	BankName           *Column `json:"column12"`
	Currency           *Column `json:"column14"`
	Message            *Column `json:"column16"`
	InstructionID      *Column `json:"column17"`
	Specification      *Column `json:"column18"`
	ID                 *Column `json:"column22"`
	Comment            *Column `json:"column25"`
	BIC                *Column `json:"column26"`
}

type Column struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

var null = []byte("null")

func (c *Column) IsEmpty() bool {
	if c == nil {
		return true
	}

	trimmed := bytes.TrimSpace(c.Value)

	return len(trimmed) == 0 || bytes.Equal(trimmed, null)
}

// String returns the value as text. Numbers keep their literal form so large
// transaction ids never pass through float64.
func (c *Column) String() (string, bool) {
	if c.IsEmpty() {
		return "", false
	}

	trimmed := bytes.TrimSpace(c.Value)
	if trimmed[0] == '"' {
		var val string
		if err := json.Unmarshal(trimmed, &val); err != nil {
			return "", false
		}

		return val, val != ""
	}

	return string(trimmed), true
}

func (c *Column) Decimal() (decimal.Decimal, bool) {
	val, ok := c.String()
	if !ok {
		return decimal.Zero, false
	}

	parsed, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false
	}

	return parsed, true
}
