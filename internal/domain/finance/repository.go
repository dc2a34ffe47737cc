package finance

import (
	"context"

	"github.com/finsight/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AssetRepository defines persistence operations for assets
type AssetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Asset, error)
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Asset, error)
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Asset, int64, error)
	AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]Asset, error)
	Save(ctx context.Context, asset *Asset) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// IncomeRepository defines persistence operations for income records
type IncomeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*IncomeRecord, error)
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*IncomeRecord, error)
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]IncomeRecord, int64, error)
	AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]IncomeRecord, error)
	Save(ctx context.Context, record *IncomeRecord) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// LiabilityRepository defines persistence operations for liabilities
type LiabilityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Liability, error)
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Liability, error)
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Liability, int64, error)
	AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]Liability, error)
	Save(ctx context.Context, liability *Liability) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// CreditCardRepository defines persistence operations for credit card accounts
type CreditCardRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CreditCardAccount, error)
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*CreditCardAccount, error)
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]CreditCardAccount, int64, error)
	AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]CreditCardAccount, error)
	Save(ctx context.Context, card *CreditCardAccount) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
