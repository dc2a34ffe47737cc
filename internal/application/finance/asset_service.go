package finance

import (
	"context"

	"github.com/finsight/backend/internal/domain/finance"
	"github.com/finsight/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssetService handles asset bookkeeping operations
type AssetService struct {
	repo        finance.AssetRepository
	invalidator CacheInvalidator
	logger      *zap.Logger
}

// NewAssetService creates a new AssetService
func NewAssetService(repo finance.AssetRepository, invalidator CacheInvalidator, logger *zap.Logger) *AssetService {
	return &AssetService{
		repo:        repo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Create records a new asset for the owner
func (s *AssetService) Create(ctx context.Context, ownerID uuid.UUID, req CreateAssetRequest) (*AssetResponse, error) {
	asset, err := finance.NewAsset(ownerID, req.Name, finance.AssetType(req.Type), req.CurrentValue)
	if err != nil {
		return nil, err
	}

	if req.PurchaseValue != nil {
		if err := asset.SetPurchase(*req.PurchaseValue, req.PurchasedAt); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		asset.SetNotes(req.Notes)
	}

	if err := s.repo.Save(ctx, asset); err != nil {
		return nil, err
	}
	s.invalidator.Clear()

	s.logger.Info("Asset created",
		zap.String("owner_id", ownerID.String()),
		zap.String("asset_id", asset.ID.String()))

	return ToAssetResponse(asset), nil
}

// GetByID retrieves one of the owner's assets
func (s *AssetService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*AssetResponse, error) {
	asset, err := s.repo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return ToAssetResponse(asset), nil
}

// List retrieves the owner's assets with pagination
func (s *AssetService) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) (*shared.Paginated[*AssetResponse], error) {
	domainFilter := filter.toDomain()
	assets, total, err := s.repo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]*AssetResponse, 0, len(assets))
	for i := range assets {
		items = append(items, ToAssetResponse(&assets[i]))
	}
	result := shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update replaces the mutable fields of one of the owner's assets
func (s *AssetService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateAssetRequest) (*AssetResponse, error) {
	asset, err := s.repo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := asset.Update(req.Name, finance.AssetType(req.Type), req.CurrentValue); err != nil {
		return nil, err
	}
	if req.PurchaseValue != nil {
		if err := asset.SetPurchase(*req.PurchaseValue, req.PurchasedAt); err != nil {
			return nil, err
		}
	}
	asset.SetNotes(req.Notes)

	if err := s.repo.Save(ctx, asset); err != nil {
		return nil, err
	}
	s.invalidator.Clear()

	return ToAssetResponse(asset), nil
}

// Delete removes one of the owner's assets
func (s *AssetService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.invalidator.Clear()

	s.logger.Info("Asset deleted",
		zap.String("owner_id", ownerID.String()),
		zap.String("asset_id", id.String()))
	return nil
}
