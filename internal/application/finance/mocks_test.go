package finance

import (
	"context"
	"sync/atomic"

	"github.com/finsight/backend/internal/domain/finance"
	"github.com/finsight/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock implementations

type mockAssetRepository struct {
	mock.Mock
}

func (m *mockAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Asset), args.Error(1)
}

func (m *mockAssetRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.Asset, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Asset), args.Error(1)
}

func (m *mockAssetRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.Asset, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]finance.Asset), args.Get(1).(int64), args.Error(2)
}

func (m *mockAssetRepository) AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]finance.Asset, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Asset), args.Error(1)
}

func (m *mockAssetRepository) Save(ctx context.Context, asset *finance.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *mockAssetRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

type mockCreditCardRepository struct {
	mock.Mock
}

func (m *mockCreditCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.CreditCardAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.CreditCardAccount), args.Error(1)
}

func (m *mockCreditCardRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.CreditCardAccount, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.CreditCardAccount), args.Error(1)
}

func (m *mockCreditCardRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.CreditCardAccount, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]finance.CreditCardAccount), args.Get(1).(int64), args.Error(2)
}

func (m *mockCreditCardRepository) AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]finance.CreditCardAccount, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.CreditCardAccount), args.Error(1)
}

func (m *mockCreditCardRepository) Save(ctx context.Context, card *finance.CreditCardAccount) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *mockCreditCardRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// spyInvalidator counts Clear calls.
type spyInvalidator struct {
	calls int64
}

func (s *spyInvalidator) Clear() {
	atomic.AddInt64(&s.calls, 1)
}

func (s *spyInvalidator) count() int64 {
	return atomic.LoadInt64(&s.calls)
}
