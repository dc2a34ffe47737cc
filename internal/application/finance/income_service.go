package finance

import (
	"context"

	"github.com/finsight/backend/internal/domain/finance"
	"github.com/finsight/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IncomeService handles income record bookkeeping operations
type IncomeService struct {
	repo        finance.IncomeRepository
	invalidator CacheInvalidator
	logger      *zap.Logger
}

// NewIncomeService creates a new IncomeService
func NewIncomeService(repo finance.IncomeRepository, invalidator CacheInvalidator, logger *zap.Logger) *IncomeService {
	return &IncomeService{
		repo:        repo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Create records a new income stream for the owner
func (s *IncomeService) Create(ctx context.Context, ownerID uuid.UUID, req CreateIncomeRequest) (*IncomeResponse, error) {
	record, err := finance.NewIncomeRecord(ownerID, req.Source, req.Amount, finance.IncomeFrequency(req.Frequency))
	if err != nil {
		return nil, err
	}

	record.SetReceivedAt(req.ReceivedAt)
	if req.Notes != "" {
		record.SetNotes(req.Notes)
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	s.invalidator.Clear()

	s.logger.Info("Income record created",
		zap.String("owner_id", ownerID.String()),
		zap.String("income_id", record.ID.String()))

	return ToIncomeResponse(record), nil
}

// GetByID retrieves one of the owner's income records
func (s *IncomeService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*IncomeResponse, error) {
	record, err := s.repo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return ToIncomeResponse(record), nil
}

// List retrieves the owner's income records with pagination
func (s *IncomeService) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) (*shared.Paginated[*IncomeResponse], error) {
	domainFilter := filter.toDomain()
	records, total, err := s.repo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]*IncomeResponse, 0, len(records))
	for i := range records {
		items = append(items, ToIncomeResponse(&records[i]))
	}
	result := shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update replaces the mutable fields of one of the owner's income records
func (s *IncomeService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateIncomeRequest) (*IncomeResponse, error) {
	record, err := s.repo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := record.Update(req.Source, req.Amount, finance.IncomeFrequency(req.Frequency)); err != nil {
		return nil, err
	}
	record.SetReceivedAt(req.ReceivedAt)
	record.SetNotes(req.Notes)

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	s.invalidator.Clear()

	return ToIncomeResponse(record), nil
}

// Delete removes one of the owner's income records
func (s *IncomeService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.invalidator.Clear()

	s.logger.Info("Income record deleted",
		zap.String("owner_id", ownerID.String()),
		zap.String("income_id", id.String()))
	return nil
}
