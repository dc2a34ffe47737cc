package finance

import (
	"context"

	"github.com/finsight/backend/internal/domain/finance"
	"github.com/finsight/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreditCardService handles credit card account bookkeeping operations
type CreditCardService struct {
	repo        finance.CreditCardRepository
	invalidator CacheInvalidator
	logger      *zap.Logger
}

// NewCreditCardService creates a new CreditCardService
func NewCreditCardService(repo finance.CreditCardRepository, invalidator CacheInvalidator, logger *zap.Logger) *CreditCardService {
	return &CreditCardService{
		repo:        repo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Create records a new credit card account for the owner
func (s *CreditCardService) Create(ctx context.Context, ownerID uuid.UUID, req CreateCreditCardRequest) (*CreditCardResponse, error) {
	card, err := finance.NewCreditCardAccount(ownerID, req.Name, req.Issuer, req.CreditLimit, req.Balance)
	if err != nil {
		return nil, err
	}

	if req.APR != nil {
		if err := card.SetAPR(*req.APR); err != nil {
			return nil, err
		}
	}
	card.SetPaymentDueAt(req.PaymentDueAt)

	if err := s.repo.Save(ctx, card); err != nil {
		return nil, err
	}
	s.invalidator.Clear()

	s.logger.Info("Credit card account created",
		zap.String("owner_id", ownerID.String()),
		zap.String("card_id", card.ID.String()))

	return ToCreditCardResponse(card), nil
}

// GetByID retrieves one of the owner's credit card accounts
func (s *CreditCardService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*CreditCardResponse, error) {
	card, err := s.repo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return ToCreditCardResponse(card), nil
}

// List retrieves the owner's credit card accounts with pagination
func (s *CreditCardService) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) (*shared.Paginated[*CreditCardResponse], error) {
	domainFilter := filter.toDomain()
	cards, total, err := s.repo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]*CreditCardResponse, 0, len(cards))
	for i := range cards {
		items = append(items, ToCreditCardResponse(&cards[i]))
	}
	result := shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update replaces the mutable fields of one of the owner's credit card accounts
func (s *CreditCardService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateCreditCardRequest) (*CreditCardResponse, error) {
	card, err := s.repo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := card.Update(req.Name, req.Issuer, req.CreditLimit, req.Balance); err != nil {
		return nil, err
	}
	if req.APR != nil {
		if err := card.SetAPR(*req.APR); err != nil {
			return nil, err
		}
	}
	card.SetPaymentDueAt(req.PaymentDueAt)

	if err := s.repo.Save(ctx, card); err != nil {
		return nil, err
	}
	s.invalidator.Clear()

	return ToCreditCardResponse(card), nil
}

// Delete removes one of the owner's credit card accounts
func (s *CreditCardService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.invalidator.Clear()

	s.logger.Info("Credit card account deleted",
		zap.String("owner_id", ownerID.String()),
		zap.String("card_id", id.String()))
	return nil
}
