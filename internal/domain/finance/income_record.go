package finance

import (
	"time"

	"github.com/finsight/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeFrequency represents how often an income amount recurs
type IncomeFrequency string

const (
	FrequencyDaily     IncomeFrequency = "daily"
	FrequencyWeekly    IncomeFrequency = "weekly"
	FrequencyBiWeekly  IncomeFrequency = "bi-weekly"
	FrequencyMonthly   IncomeFrequency = "monthly"
	FrequencyQuarterly IncomeFrequency = "quarterly"
	FrequencyYearly    IncomeFrequency = "yearly"
	FrequencyOneTime   IncomeFrequency = "one-time"
)

// IsValid checks if the frequency is a valid IncomeFrequency
func (f IncomeFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly,
		FrequencyQuarterly, FrequencyYearly, FrequencyOneTime:
		return true
	}
	return false
}

// String returns the string representation of IncomeFrequency
func (f IncomeFrequency) String() string {
	return string(f)
}

// IncomeRecord represents a single income stream of the user
type IncomeRecord struct {
	shared.OwnedEntity
	Source     string          `json:"source"`
	Amount     decimal.Decimal `json:"amount"`
	Frequency  IncomeFrequency `json:"frequency"`
	ReceivedAt *time.Time      `json:"received_at"`
	Notes      string          `json:"notes"`
}

// NewIncomeRecord creates a new income record
func NewIncomeRecord(ownerID uuid.UUID, source string, amount decimal.Decimal, frequency IncomeFrequency) (*IncomeRecord, error) {
	if source == "" {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Income source cannot be empty")
	}
	if len(source) > 100 {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Income source cannot exceed 100 characters")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Income amount cannot be negative")
	}
	if !frequency.IsValid() {
		return nil, shared.NewDomainError("INVALID_FREQUENCY", "Income frequency is not valid")
	}

	return &IncomeRecord{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Source:      source,
		Amount:      amount,
		Frequency:   frequency,
	}, nil
}

// Update replaces the mutable fields of the income record
func (r *IncomeRecord) Update(source string, amount decimal.Decimal, frequency IncomeFrequency) error {
	if source == "" {
		return shared.NewDomainError("INVALID_SOURCE", "Income source cannot be empty")
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Income amount cannot be negative")
	}
	if !frequency.IsValid() {
		return shared.NewDomainError("INVALID_FREQUENCY", "Income frequency is not valid")
	}

	r.Source = source
	r.Amount = amount
	r.Frequency = frequency
	r.Touch()
	return nil
}

// SetReceivedAt records when the income was last received
func (r *IncomeRecord) SetReceivedAt(at *time.Time) {
	r.ReceivedAt = at
	r.Touch()
}

// SetNotes sets the free-form notes
func (r *IncomeRecord) SetNotes(notes string) {
	r.Notes = notes
	r.Touch()
}
