package finance

import (
	"time"

	"github.com/finsight/backend/internal/domain/finance"
	"github.com/finsight/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListFilter carries pagination and search options for list endpoints.
type ListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}

func (f ListFilter) toDomain() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		filter.OrderBy = f.OrderBy
	}
	if f.OrderDir != "" {
		filter.OrderDir = f.OrderDir
	}
	filter.Search = f.Search
	return filter
}

// CreateAssetRequest carries the fields for a new asset.
type CreateAssetRequest struct {
	Name          string
	Type          string
	CurrentValue  decimal.Decimal
	PurchaseValue *decimal.Decimal
	PurchasedAt   *time.Time
	Notes         string
}

// UpdateAssetRequest carries the replacement fields for an asset.
type UpdateAssetRequest struct {
	Name          string
	Type          string
	CurrentValue  decimal.Decimal
	PurchaseValue *decimal.Decimal
	PurchasedAt   *time.Time
	Notes         string
}

// AssetResponse is the outward representation of an asset.
type AssetResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	PurchaseValue decimal.Decimal `json:"purchase_value"`
	PurchasedAt   *time.Time      `json:"purchased_at,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToAssetResponse converts a domain asset to its response form.
func ToAssetResponse(a *finance.Asset) *AssetResponse {
	return &AssetResponse{
		ID:            a.ID,
		Name:          a.Name,
		Type:          a.Type.String(),
		CurrentValue:  a.CurrentValue,
		PurchaseValue: a.PurchaseValue,
		PurchasedAt:   a.PurchasedAt,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// CreateIncomeRequest carries the fields for a new income record.
type CreateIncomeRequest struct {
	Source     string
	Amount     decimal.Decimal
	Frequency  string
	ReceivedAt *time.Time
	Notes      string
}

// UpdateIncomeRequest carries the replacement fields for an income record.
type UpdateIncomeRequest struct {
	Source     string
	Amount     decimal.Decimal
	Frequency  string
	ReceivedAt *time.Time
	Notes      string
}

// IncomeResponse is the outward representation of an income record.
type IncomeResponse struct {
	ID         uuid.UUID       `json:"id"`
	Source     string          `json:"source"`
	Amount     decimal.Decimal `json:"amount"`
	Frequency  string          `json:"frequency"`
	ReceivedAt *time.Time      `json:"received_at,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToIncomeResponse converts a domain income record to its response form.
func ToIncomeResponse(r *finance.IncomeRecord) *IncomeResponse {
	return &IncomeResponse{
		ID:         r.ID,
		Source:     r.Source,
		Amount:     r.Amount,
		Frequency:  r.Frequency.String(),
		ReceivedAt: r.ReceivedAt,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// CreateLiabilityRequest carries the fields for a new liability.
type CreateLiabilityRequest struct {
	Name         string
	Type         string
	Principal    decimal.Decimal
	InterestRate *decimal.Decimal
	DueAt        *time.Time
	Notes        string
}

// UpdateLiabilityRequest carries the replacement fields for a liability.
type UpdateLiabilityRequest struct {
	Name         string
	Type         string
	Principal    decimal.Decimal
	InterestRate *decimal.Decimal
	DueAt        *time.Time
	Notes        string
}

// LiabilityResponse is the outward representation of a liability.
type LiabilityResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	DueAt        *time.Time      `json:"due_at,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToLiabilityResponse converts a domain liability to its response form.
func ToLiabilityResponse(l *finance.Liability) *LiabilityResponse {
	return &LiabilityResponse{
		ID:           l.ID,
		Name:         l.Name,
		Type:         l.Type.String(),
		Principal:    l.Principal,
		InterestRate: l.InterestRate,
		DueAt:        l.DueAt,
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

// CreateCreditCardRequest carries the fields for a new credit card account.
type CreateCreditCardRequest struct {
	Name         string
	Issuer       string
	CreditLimit  decimal.Decimal
	Balance      decimal.Decimal
	APR          *decimal.Decimal
	PaymentDueAt *time.Time
}

// UpdateCreditCardRequest carries the replacement fields for a credit card account.
type UpdateCreditCardRequest struct {
	Name         string
	Issuer       string
	CreditLimit  decimal.Decimal
	Balance      decimal.Decimal
	APR          *decimal.Decimal
	PaymentDueAt *time.Time
}

// CreditCardResponse is the outward representation of a credit card account.
type CreditCardResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Issuer          string          `json:"issuer,omitempty"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	Balance         decimal.Decimal `json:"balance"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	APR             decimal.Decimal `json:"apr"`
	PaymentDueAt    *time.Time      `json:"payment_due_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToCreditCardResponse converts a domain credit card account to its response form.
func ToCreditCardResponse(c *finance.CreditCardAccount) *CreditCardResponse {
	return &CreditCardResponse{
		ID:              c.ID,
		Name:            c.Name,
		Issuer:          c.Issuer,
		CreditLimit:     c.CreditLimit,
		Balance:         c.Balance,
		AvailableCredit: c.AvailableCredit(),
		APR:             c.APR,
		PaymentDueAt:    c.PaymentDueAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
