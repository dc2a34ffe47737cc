package advisor

import (
	"context"
	"time"

	"github.com/finsight/backend/internal/domain/advisor"
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

type mockIncomeRepository struct {
	mock.Mock
}

func (m *mockIncomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.IncomeRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.IncomeRecord), args.Error(1)
}

func (m *mockIncomeRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.IncomeRecord, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.IncomeRecord), args.Error(1)
}

func (m *mockIncomeRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.IncomeRecord, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]finance.IncomeRecord), args.Get(1).(int64), args.Error(2)
}

func (m *mockIncomeRepository) AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]finance.IncomeRecord, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.IncomeRecord), args.Error(1)
}

func (m *mockIncomeRepository) Save(ctx context.Context, record *finance.IncomeRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockIncomeRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

type mockLiabilityRepository struct {
	mock.Mock
}

func (m *mockLiabilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Liability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Liability), args.Error(1)
}

func (m *mockLiabilityRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.Liability, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Liability), args.Error(1)
}

func (m *mockLiabilityRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.Liability, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]finance.Liability), args.Get(1).(int64), args.Error(2)
}

func (m *mockLiabilityRepository) AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]finance.Liability, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Liability), args.Error(1)
}

func (m *mockLiabilityRepository) Save(ctx context.Context, liability *finance.Liability) error {
	args := m.Called(ctx, liability)
	return args.Error(0)
}

func (m *mockLiabilityRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
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

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, recType advisor.RecommendationType, snapshot advisor.MetricsSnapshot) (advisor.RecommendationPayload, error) {
	args := m.Called(ctx, recType, snapshot)
	return args.Get(0).(advisor.RecommendationPayload), args.Error(1)
}

type mockRecommendationCache struct {
	mock.Mock
}

func (m *mockRecommendationCache) Get(key string) (advisor.RecommendationPayload, bool) {
	args := m.Called(key)
	return args.Get(0).(advisor.RecommendationPayload), args.Bool(1)
}

func (m *mockRecommendationCache) Set(key string, payload advisor.RecommendationPayload, ttl time.Duration) {
	m.Called(key, payload, ttl)
}

func (m *mockRecommendationCache) Delete(key string) {
	m.Called(key)
}

func (m *mockRecommendationCache) Clear() {
	m.Called()
}

func (m *mockRecommendationCache) InvalidateType(recType advisor.RecommendationType) int {
	args := m.Called(recType)
	return args.Int(0)
}

func (m *mockRecommendationCache) GetOrGenerate(ctx context.Context, recType advisor.RecommendationType, snapshot advisor.MetricsSnapshot, generate advisor.GenerateFunc, ttl time.Duration) (advisor.RecommendationPayload, bool, error) {
	args := m.Called(ctx, recType, snapshot, generate, ttl)
	return args.Get(0).(advisor.RecommendationPayload), args.Bool(1), args.Error(2)
}

func (m *mockRecommendationCache) Stats() advisor.CacheStats {
	args := m.Called()
	return args.Get(0).(advisor.CacheStats)
}

func (m *mockRecommendationCache) CleanExpired() int {
	args := m.Called()
	return args.Int(0)
}

func (m *mockRecommendationCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
