package finance

import (
	"time"

	"github.com/finsight/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LiabilityType represents the category of a liability
type LiabilityType string

const (
	LiabilityTypeMortgage     LiabilityType = "mortgage"
	LiabilityTypeAutoLoan     LiabilityType = "auto_loan"
	LiabilityTypeStudentLoan  LiabilityType = "student_loan"
	LiabilityTypePersonalLoan LiabilityType = "personal_loan"
	LiabilityTypeOther        LiabilityType = "other"
)

// IsValid checks if the type is a valid LiabilityType
func (t LiabilityType) IsValid() bool {
	switch t {
	case LiabilityTypeMortgage, LiabilityTypeAutoLoan, LiabilityTypeStudentLoan,
		LiabilityTypePersonalLoan, LiabilityTypeOther:
		return true
	}
	return false
}

// String returns the string representation of LiabilityType
func (t LiabilityType) String() string {
	return string(t)
}

// Liability represents an outstanding debt of the user
type Liability struct {
	shared.OwnedEntity
	Name         string          `json:"name"`
	Type         LiabilityType   `json:"type"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	DueAt        *time.Time      `json:"due_at"`
	Notes        string          `json:"notes"`
}

// NewLiability creates a new liability record
func NewLiability(ownerID uuid.UUID, name string, liabilityType LiabilityType, principal decimal.Decimal) (*Liability, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Liability name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Liability name cannot exceed 100 characters")
	}
	if !liabilityType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Liability type is not valid")
	}
	if principal.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Liability principal cannot be negative")
	}

	return &Liability{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Name:        name,
		Type:        liabilityType,
		Principal:   principal,
	}, nil
}

// Update replaces the mutable fields of the liability
func (l *Liability) Update(name string, liabilityType LiabilityType, principal decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Liability name cannot be empty")
	}
	if !liabilityType.IsValid() {
		return shared.NewDomainError("INVALID_TYPE", "Liability type is not valid")
	}
	if principal.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Liability principal cannot be negative")
	}

	l.Name = name
	l.Type = liabilityType
	l.Principal = principal
	l.Touch()
	return nil
}

// SetInterestRate sets the annual interest rate in percent
func (l *Liability) SetInterestRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Interest rate cannot be negative")
	}
	l.InterestRate = rate
	l.Touch()
	return nil
}

// SetDueAt records the next payment due date
func (l *Liability) SetDueAt(at *time.Time) {
	l.DueAt = at
	l.Touch()
}

// SetNotes sets the free-form notes
func (l *Liability) SetNotes(notes string) {
	l.Notes = notes
	l.Touch()
}
