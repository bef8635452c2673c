package common

import (
	"fmt"
	"time"
)

// InvalidDateRange builds a validation error for a rejected import range.
func InvalidDateRange(format string, args ...any) error {
	return &ValidationError{
		Kind:    ErrInvalidDateRange,
		Message: fmt.Sprintf(format, args...),
	}
}

type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// MappingError names the mandatory field that was missing or unusable. Record
// holds a dump of the raw row for diagnosis.
type MappingError struct {
	Field       string
	RecordIndex int
	Reason      string
	Record      string
}

func (e *MappingError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("missing mandatory field %s in record %d", e.Field, e.RecordIndex)
	}

	return fmt.Sprintf("invalid mandatory field %s in record %d: %s", e.Field, e.RecordIndex, e.Reason)
}

func (e *MappingError) Unwrap() error {
	return ErrMapping
}

type TransitionError struct {
	Action string
	Status string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s import with status %s", e.Action, e.Status)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

type NoTransactionsFoundError struct {
	Start time.Time
	End   time.Time
}

func (e *NoTransactionsFoundError) Error() string {
	return fmt.Sprintf("no transactions found between %s and %s",
		e.Start.Format(time.DateOnly), e.End.Format(time.DateOnly))
}

func (e *NoTransactionsFoundError) Unwrap() error {
	return ErrNoTransactionsFound
}

type AllTransactionsDuplicateError struct {
	Start time.Time
	End   time.Time
	Count int
}

func (e *AllTransactionsDuplicateError) Error() string {
	return fmt.Sprintf("all %d transactions between %s and %s were already imported",
		e.Count, e.Start.Format(time.DateOnly), e.End.Format(time.DateOnly))
}

func (e *AllTransactionsDuplicateError) Unwrap() error {
	return ErrAllTransactionsDuplicate
}

// ImportError is returned by every failed import. BatchID is empty when the
// request was rejected before a batch existed.
type ImportError struct {
	BatchID   string
	AccountID string
	Err       error
}

func (e *ImportError) Error() string {
	if e.BatchID == "" {
		return fmt.Sprintf("import for account %s: %v", e.AccountID, e.Err)
	}

	return fmt.Sprintf("import %s for account %s: %v", e.BatchID, e.AccountID, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
