package finance

import (
	"time"

	"github.com/finsight/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetType represents the category of an asset
type AssetType string

const (
	AssetTypeCash       AssetType = "cash"
	AssetTypeInvestment AssetType = "investment"
	AssetTypeProperty   AssetType = "property"
	AssetTypeVehicle    AssetType = "vehicle"
	AssetTypeOther      AssetType = "other"
)

// IsValid checks if the type is a valid AssetType
func (t AssetType) IsValid() bool {
	switch t {
	case AssetTypeCash, AssetTypeInvestment, AssetTypeProperty,
		AssetTypeVehicle, AssetTypeOther:
		return true
	}
	return false
}

// String returns the string representation of AssetType
func (t AssetType) String() string {
	return string(t)
}

// Asset represents something of value the user owns
type Asset struct {
	shared.OwnedEntity
	Name          string          `json:"name"`
	Type          AssetType       `json:"type"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	PurchaseValue decimal.Decimal `json:"purchase_value"`
	PurchasedAt   *time.Time      `json:"purchased_at"`
	Notes         string          `json:"notes"`
}

// NewAsset creates a new asset record
func NewAsset(ownerID uuid.UUID, name string, assetType AssetType, currentValue decimal.Decimal) (*Asset, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Asset name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Asset name cannot exceed 100 characters")
	}
	if !assetType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Asset type is not valid")
	}
	if currentValue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Asset value cannot be negative")
	}

	return &Asset{
		OwnedEntity:  shared.NewOwnedEntity(ownerID),
		Name:         name,
		Type:         assetType,
		CurrentValue: currentValue,
	}, nil
}

// Update replaces the mutable fields of the asset
func (a *Asset) Update(name string, assetType AssetType, currentValue decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Asset name cannot be empty")
	}
	if !assetType.IsValid() {
		return shared.NewDomainError("INVALID_TYPE", "Asset type is not valid")
	}
	if currentValue.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Asset value cannot be negative")
	}

	a.Name = name
	a.Type = assetType
	a.CurrentValue = currentValue
	a.Touch()
	return nil
}

// SetPurchase records the original purchase value and date
func (a *Asset) SetPurchase(value decimal.Decimal, at *time.Time) error {
	if value.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Purchase value cannot be negative")
	}
	a.PurchaseValue = value
	a.PurchasedAt = at
	a.Touch()
	return nil
}

// SetNotes sets the free-form notes
func (a *Asset) SetNotes(notes string) {
	a.Notes = notes
	a.Touch()
}
