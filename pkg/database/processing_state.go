package database

import (
	"time"

	"github.com/samber/lo"
)

type ProcessingStatus string

const (
	ProcessingStatusImported    = ProcessingStatus("Imported")
	ProcessingStatusCategorized = ProcessingStatus("Categorized")
	ProcessingStatusSubmitted   = ProcessingStatus("Submitted")
)

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProcessingState is the mutable workflow record of one transaction. The import
// creates it; categorization and submission own it afterwards.
type ProcessingState struct {
	TransactionID TransactionID    `json:"transactionId"`
	Status        ProcessingStatus `json:"status"`
	IsDuplicate   bool             `json:"isDuplicate"`

	SuggestedPayeeName *string   `json:"suggestedPayeeName,omitempty"`
	OverridePayeeName  *string   `json:"overridePayeeName,omitempty"`
	SuggestedCategory  *Category `json:"suggestedCategory,omitempty"`
	OverrideCategory   *Category `json:"overrideCategory,omitempty"`
	SuggestedMemo      *string   `json:"suggestedMemo,omitempty"`
	OverrideMemo       *string   `json:"overrideMemo,omitempty"`

	CategoryConfidence *float64 `json:"categoryConfidence,omitempty"`
	PayeeConfidence    *float64 `json:"payeeConfidence,omitempty"`

	YnabTransactionID *string `json:"ynabTransactionId,omitempty"`
	YnabAccountID     *string `json:"ynabAccountId,omitempty"`

	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func NewProcessingState(id TransactionID, now time.Time) *ProcessingState {
	now = now.UTC()

	return &ProcessingState{
		TransactionID: id,
		Status:        ProcessingStatusImported,
		IsDuplicate:   false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// EffectiveCategory prefers the manual override over the suggestion.
func (p *ProcessingState) EffectiveCategory() *Category {
	return effective(p.OverrideCategory, p.SuggestedCategory)
}

func (p *ProcessingState) EffectivePayeeName() *string {
	return effective(p.OverridePayeeName, p.SuggestedPayeeName)
}

func (p *ProcessingState) EffectiveMemo() *string {
	return effective(p.OverrideMemo, p.SuggestedMemo)
}

func effective[T any](override *T, suggested *T) *T {
	val, _ := lo.Coalesce(override, suggested)

	return val
}
