package finance

import (
	"time"

	"github.com/finsight/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditCardAccount represents a revolving credit card account
type CreditCardAccount struct {
	shared.OwnedEntity
	Name         string          `json:"name"`
	Issuer       string          `json:"issuer"`
	CreditLimit  decimal.Decimal `json:"credit_limit"`
	Balance      decimal.Decimal `json:"balance"`
	APR          decimal.Decimal `json:"apr"`
	PaymentDueAt *time.Time      `json:"payment_due_at"`
}

// NewCreditCardAccount creates a new credit card account
func NewCreditCardAccount(ownerID uuid.UUID, name, issuer string, creditLimit, balance decimal.Decimal) (*CreditCardAccount, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Card name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Card name cannot exceed 100 characters")
	}
	if creditLimit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Credit limit cannot be negative")
	}
	if balance.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Balance cannot be negative")
	}
	if balance.GreaterThan(creditLimit) {
		return nil, shared.NewDomainError("BALANCE_EXCEEDS_LIMIT", "Outstanding balance cannot exceed the credit limit")
	}

	return &CreditCardAccount{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Name:        name,
		Issuer:      issuer,
		CreditLimit: creditLimit,
		Balance:     balance,
	}, nil
}

// Update replaces the mutable fields of the account
func (c *CreditCardAccount) Update(name, issuer string, creditLimit, balance decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Card name cannot be empty")
	}
	if creditLimit.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Credit limit cannot be negative")
	}
	if balance.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Balance cannot be negative")
	}
	if balance.GreaterThan(creditLimit) {
		return shared.NewDomainError("BALANCE_EXCEEDS_LIMIT", "Outstanding balance cannot exceed the credit limit")
	}

	c.Name = name
	c.Issuer = issuer
	c.CreditLimit = creditLimit
	c.Balance = balance
	c.Touch()
	return nil
}

// SetAPR sets the annual percentage rate
func (c *CreditCardAccount) SetAPR(apr decimal.Decimal) error {
	if apr.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "APR cannot be negative")
	}
	c.APR = apr
	c.Touch()
	return nil
}

// SetPaymentDueAt records the next payment due date
func (c *CreditCardAccount) SetPaymentDueAt(at *time.Time) {
	c.PaymentDueAt = at
	c.Touch()
}

// AvailableCredit returns the credit still available on the card
func (c *CreditCardAccount) AvailableCredit() decimal.Decimal {
	return c.CreditLimit.Sub(c.Balance)
}
