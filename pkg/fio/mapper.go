package fio

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"

	"github.com/skynet2/fio-ynab-importer/pkg/common"
	"github.com/skynet2/fio-ynab-importer/pkg/database"
)

type Mapper struct {
}

func NewMapper() *Mapper {
	return &Mapper{}
}

// MapTransactions converts a whole statement; the first invalid row fails the call.
func (m *Mapper) MapTransactions(
	_ context.Context,
	raw []*RawTransaction,
	sourceAccountID string,
	importBatchID string,
	importedAt time.Time,
) ([]*database.Transaction, error) {
	transactions := make([]*database.Transaction, 0, len(raw))

	for idx, rawTx := range raw {
		tx, err := m.MapTransaction(rawTx, idx, sourceAccountID, importBatchID, importedAt)
		if err != nil {
			return nil, err
		}

		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func (m *Mapper) MapTransaction(
	raw *RawTransaction,
	idx int,
	sourceAccountID string,
	importBatchID string,
	importedAt time.Time,
) (*database.Transaction, error) {
	if raw == nil {
		return nil, &common.MappingError{Field: "record", RecordIndex: idx, Record: "<nil>"}
	}

	invalid := func(field string, reason string) error {
		return &common.MappingError{
			Field:       field,
			RecordIndex: idx,
			Reason:      reason,
			Record:      spew.Sdump(raw),
		}
	}

	externalID, ok := raw.ID.String()
	if !ok {
		return nil, invalid("id", "")
	}

	rawDate, ok := raw.Date.String()
	if !ok {
		return nil, invalid("date", "")
	}

	date, err := ParseDate(rawDate)
	if err != nil {
		return nil, invalid("date", err.Error())
	}

	if raw.Amount.IsEmpty() {
		return nil, invalid("amount", "")
	}

	amount, ok := raw.Amount.Decimal()
	if !ok {
		return nil, invalid("amount", "not a number")
	}

	currency, ok := raw.Currency.String()
	if !ok {
		currency = HomeCurrency
	}

	txType, _ := raw.Type.String()

	return &database.Transaction{
		ID: database.TransactionID{
			SourceAccountID: sourceAccountID,
			ExternalID:      externalID,
		},
		ImportBatchID:      importBatchID,
		Date:               date,
		Amount:             amount,
		Currency:           strings.ToUpper(currency),
		CounterAccount:     optional(raw.CounterAccount),
		CounterAccountName: optional(raw.CounterAccountName),
		BankCode:           optional(raw.BankCode),
		BankName:           optional(raw.BankName),
		ConstantSymbol:     optional(raw.ConstantSymbol),
		VariableSymbol:     optional(raw.VariableSymbol),
		SpecificSymbol:     optional(raw.SpecificSymbol),
		UserIdentification: optional(raw.UserIdentification),
		Message:            optional(raw.Message),
		Type:               txType,
		Comment:            optional(raw.Comment),
		ExecutedBy:         optional(raw.ExecutedBy),
		Specification:      optional(raw.Specification),
		BIC:                optional(raw.BIC),
		InstructionID:      optional(raw.InstructionID),
		ImportedAt:         importedAt.UTC(),
	}, nil
}

// ParseDate reads fio dates such as "2025-03-01+0100"; the zone suffix is dropped
// and the calendar date kept.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if len(value) > len(time.DateOnly) {
		value = value[:len(time.DateOnly)]
	}

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", value)
	}

	return parsed, nil
}

func optional(c *Column) *string {
	val, ok := c.String()
	if !ok {
		return nil
	}

	return &val
}
