package database

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skynet2/fio-ynab-importer/pkg/common"
)

type ImportStatus string

const (
	ImportStatusNotStarted = ImportStatus("NotStarted")
	ImportStatusInProgress = ImportStatus("InProgress")
	ImportStatusCompleted  = ImportStatus("Completed")
	ImportStatusError      = ImportStatus("Error")
)

func (s ImportStatus) IsTerminal() bool {
	return s == ImportStatusCompleted || s == ImportStatusError
}

// ImportBatch tracks one run of the import workflow. Batches are an audit trail
// and are never deleted.
type ImportBatch struct {
	ID               string       `json:"id"`
	AccountID        string       `json:"accountId"`
	StartDate        time.Time    `json:"startDate"`
	EndDate          time.Time    `json:"endDate"`
	Status           ImportStatus `json:"status"`
	TransactionCount int          `json:"transactionCount"`
	DuplicateCount   int          `json:"duplicateCount"`
	ErrorMessage     *string      `json:"errorMessage,omitempty"`
	StartTime        time.Time    `json:"startTime"`
	EndTime          *time.Time   `json:"endTime,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// NewImportBatch validates the requested range and returns a batch in NotStarted.
// maxRangeDays comes from the bank client; zero or less disables the window check.
func NewImportBatch(
	accountID string,
	startDate time.Time,
	endDate time.Time,
	maxRangeDays int,
	now time.Time,
) (*ImportBatch, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, &common.ValidationError{
			Kind:    common.ErrValidation,
			Message: "account id is required",
		}
	}

	if err := ValidateDateRange(startDate, endDate, maxRangeDays, now); err != nil {
		return nil, err
	}

	now = now.UTC()

	return &ImportBatch{
		ID:        uuid.NewString(),
		AccountID: accountID,
		StartDate: DateOnly(startDate),
		EndDate:   DateOnly(endDate),
		Status:    ImportStatusNotStarted,
		StartTime: now,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func ValidateDateRange(
	startDate time.Time,
	endDate time.Time,
	maxRangeDays int,
	now time.Time,
) error {
	if startDate.IsZero() {
		return common.InvalidDateRange("start date is required")
	}

	if endDate.IsZero() {
		return common.InvalidDateRange("end date is required")
	}

	start := DateOnly(startDate)
	end := DateOnly(endDate)
	today := DateOnly(now)

	if start.After(end) {
		return common.InvalidDateRange("start date %s is after end date %s",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	if start.After(today) {
		return common.InvalidDateRange("start date %s is in the future", start.Format(time.DateOnly))
	}

	if end.After(today) {
		return common.InvalidDateRange("end date %s is in the future", end.Format(time.DateOnly))
	}

	days := int(end.Sub(start).Hours() / 24)
	if maxRangeDays > 0 && days > maxRangeDays {
		return common.InvalidDateRange("date range of %d days exceeds the maximum of %d days",
			days, maxRangeDays)
	}

	return nil
}

// DateOnly drops the clock part and keeps the calendar date of t as UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (b *ImportBatch) MarkInProgress(now time.Time) error {
	if b.Status != ImportStatusNotStarted {
		return &common.TransitionError{Action: "start", Status: string(b.Status)}
	}

	b.Status = ImportStatusInProgress
	b.UpdatedAt = now.UTC()

	return nil
}

func (b *ImportBatch) MarkCompleted(count int, now time.Time) error {
	if b.Status != ImportStatusInProgress {
		return &common.TransitionError{Action: "complete", Status: string(b.Status)}
	}

	now = now.UTC()

	b.Status = ImportStatusCompleted
	b.TransactionCount = count
	b.EndTime = &now
	b.UpdatedAt = now

	return nil
}

// MarkFailed is accepted from every state so that a batch can always be closed.
// The first terminal transition owns EndTime.
func (b *ImportBatch) MarkFailed(message string, now time.Time) {
	now = now.UTC()

	b.Status = ImportStatusError
	b.ErrorMessage = &message
	b.UpdatedAt = now

	if b.EndTime == nil {
		b.EndTime = &now
	}
}

func (b *ImportBatch) CompletionTimeSeconds() (int64, bool) {
	if b.EndTime == nil {
		return 0, false
	}

	return int64(b.EndTime.Sub(b.StartTime).Seconds()), true
}
