package models

import (
	"time"

	"github.com/finsight/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// AssetModel is the persistence model for the Asset entity.
type AssetModel struct {
	OwnedModel
	Name          string            `gorm:"type:varchar(100);not null"`
	Type          finance.AssetType `gorm:"type:varchar(20);not null;index"`
	CurrentValue  decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	PurchaseValue decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	PurchasedAt   *time.Time
	Notes         string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AssetModel) TableName() string {
	return "assets"
}

// ToDomain converts the persistence model to a domain Asset entity.
func (m *AssetModel) ToDomain() *finance.Asset {
	return &finance.Asset{
		OwnedEntity:   m.ToDomainOwnedEntity(),
		Name:          m.Name,
		Type:          m.Type,
		CurrentValue:  m.CurrentValue,
		PurchaseValue: m.PurchaseValue,
		PurchasedAt:   m.PurchasedAt,
		Notes:         m.Notes,
	}
}

// AssetModelFromDomain creates a persistence model from a domain Asset entity.
func AssetModelFromDomain(a *finance.Asset) *AssetModel {
	m := &AssetModel{
		Name:          a.Name,
		Type:          a.Type,
		CurrentValue:  a.CurrentValue,
		PurchaseValue: a.PurchaseValue,
		PurchasedAt:   a.PurchasedAt,
		Notes:         a.Notes,
	}
	m.FromDomainOwnedEntity(a.OwnedEntity)
	return m
}

// IncomeRecordModel is the persistence model for the IncomeRecord entity.
type IncomeRecordModel struct {
	OwnedModel
	Source     string                  `gorm:"type:varchar(100);not null"`
	Amount     decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Frequency  finance.IncomeFrequency `gorm:"type:varchar(20);not null;index"`
	ReceivedAt *time.Time
	Notes      string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (IncomeRecordModel) TableName() string {
	return "income_records"
}

// ToDomain converts the persistence model to a domain IncomeRecord entity.
func (m *IncomeRecordModel) ToDomain() *finance.IncomeRecord {
	return &finance.IncomeRecord{
		OwnedEntity: m.ToDomainOwnedEntity(),
		Source:      m.Source,
		Amount:      m.Amount,
		Frequency:   m.Frequency,
		ReceivedAt:  m.ReceivedAt,
		Notes:       m.Notes,
	}
}

// IncomeRecordModelFromDomain creates a persistence model from a domain IncomeRecord entity.
func IncomeRecordModelFromDomain(r *finance.IncomeRecord) *IncomeRecordModel {
	m := &IncomeRecordModel{
		Source:     r.Source,
		Amount:     r.Amount,
		Frequency:  r.Frequency,
		ReceivedAt: r.ReceivedAt,
		Notes:      r.Notes,
	}
	m.FromDomainOwnedEntity(r.OwnedEntity)
	return m
}

// LiabilityModel is the persistence model for the Liability entity.
type LiabilityModel struct {
	OwnedModel
	Name         string                `gorm:"type:varchar(100);not null"`
	Type         finance.LiabilityType `gorm:"type:varchar(20);not null;index"`
	Principal    decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	InterestRate decimal.Decimal       `gorm:"type:decimal(9,4);not null;default:0"`
	DueAt        *time.Time
	Notes        string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (LiabilityModel) TableName() string {
	return "liabilities"
}

// ToDomain converts the persistence model to a domain Liability entity.
func (m *LiabilityModel) ToDomain() *finance.Liability {
	return &finance.Liability{
		OwnedEntity:  m.ToDomainOwnedEntity(),
		Name:         m.Name,
		Type:         m.Type,
		Principal:    m.Principal,
		InterestRate: m.InterestRate,
		DueAt:        m.DueAt,
		Notes:        m.Notes,
	}
}

// LiabilityModelFromDomain creates a persistence model from a domain Liability entity.
func LiabilityModelFromDomain(l *finance.Liability) *LiabilityModel {
	m := &LiabilityModel{
		Name:         l.Name,
		Type:         l.Type,
		Principal:    l.Principal,
		InterestRate: l.InterestRate,
		DueAt:        l.DueAt,
		Notes:        l.Notes,
	}
	m.FromDomainOwnedEntity(l.OwnedEntity)
	return m
}

// CreditCardAccountModel is the persistence model for the CreditCardAccount entity.
type CreditCardAccountModel struct {
	OwnedModel
	Name         string          `gorm:"type:varchar(100);not null"`
	Issuer       string          `gorm:"type:varchar(100)"`
	CreditLimit  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Balance      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	APR          decimal.Decimal `gorm:"type:decimal(9,4);not null;default:0"`
	PaymentDueAt *time.Time
}

// TableName returns the table name for GORM
func (CreditCardAccountModel) TableName() string {
	return "credit_card_accounts"
}

// ToDomain converts the persistence model to a domain CreditCardAccount entity.
func (m *CreditCardAccountModel) ToDomain() *finance.CreditCardAccount {
	return &finance.CreditCardAccount{
		OwnedEntity:  m.ToDomainOwnedEntity(),
		Name:         m.Name,
		Issuer:       m.Issuer,
		CreditLimit:  m.CreditLimit,
		Balance:      m.Balance,
		APR:          m.APR,
		PaymentDueAt: m.PaymentDueAt,
	}
}

// CreditCardAccountModelFromDomain creates a persistence model from a domain CreditCardAccount entity.
func CreditCardAccountModelFromDomain(c *finance.CreditCardAccount) *CreditCardAccountModel {
	m := &CreditCardAccountModel{
		Name:         c.Name,
		Issuer:       c.Issuer,
		CreditLimit:  c.CreditLimit,
		Balance:      c.Balance,
		APR:          c.APR,
		PaymentDueAt: c.PaymentDueAt,
	}
	m.FromDomainOwnedEntity(c.OwnedEntity)
	return m
}
