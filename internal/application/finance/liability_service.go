package finance

import (
	"context"

	"github.com/finsight/backend/internal/domain/finance"
	"github.com/finsight/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LiabilityService handles liability bookkeeping operations
type LiabilityService struct {
	repo        finance.LiabilityRepository
	invalidator CacheInvalidator
	logger      *zap.Logger
}

// NewLiabilityService creates a new LiabilityService
func NewLiabilityService(repo finance.LiabilityRepository, invalidator CacheInvalidator, logger *zap.Logger) *LiabilityService {
	return &LiabilityService{
		repo:        repo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Create records a new liability for the owner
func (s *LiabilityService) Create(ctx context.Context, ownerID uuid.UUID, req CreateLiabilityRequest) (*LiabilityResponse, error) {
	liability, err := finance.NewLiability(ownerID, req.Name, finance.LiabilityType(req.Type), req.Principal)
	if err != nil {
		return nil, err
	}

	if req.InterestRate != nil {
		if err := liability.SetInterestRate(*req.InterestRate); err != nil {
			return nil, err
		}
	}
	liability.SetDueAt(req.DueAt)
	if req.Notes != "" {
		liability.SetNotes(req.Notes)
	}

	if err := s.repo.Save(ctx, liability); err != nil {
		return nil, err
	}
	s.invalidator.Clear()

	s.logger.Info("Liability created",
		zap.String("owner_id", ownerID.String()),
		zap.String("liability_id", liability.ID.String()))

	return ToLiabilityResponse(liability), nil
}

// GetByID retrieves one of the owner's liabilities
func (s *LiabilityService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*LiabilityResponse, error) {
	liability, err := s.repo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return ToLiabilityResponse(liability), nil
}

// List retrieves the owner's liabilities with pagination
func (s *LiabilityService) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) (*shared.Paginated[*LiabilityResponse], error) {
	domainFilter := filter.toDomain()
	liabilities, total, err := s.repo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]*LiabilityResponse, 0, len(liabilities))
	for i := range liabilities {
		items = append(items, ToLiabilityResponse(&liabilities[i]))
	}
	result := shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update replaces the mutable fields of one of the owner's liabilities
func (s *LiabilityService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateLiabilityRequest) (*LiabilityResponse, error) {
	liability, err := s.repo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := liability.Update(req.Name, finance.LiabilityType(req.Type), req.Principal); err != nil {
		return nil, err
	}
	if req.InterestRate != nil {
		if err := liability.SetInterestRate(*req.InterestRate); err != nil {
			return nil, err
		}
	}
	liability.SetDueAt(req.DueAt)
	liability.SetNotes(req.Notes)

	if err := s.repo.Save(ctx, liability); err != nil {
		return nil, err
	}
	s.invalidator.Clear()

	return ToLiabilityResponse(liability), nil
}

// Delete removes one of the owner's liabilities
func (s *LiabilityService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.invalidator.Clear()

	s.logger.Info("Liability deleted",
		zap.String("owner_id", ownerID.String()),
		zap.String("liability_id", id.String()))
	return nil
}
