package integration

import (
	"context"
	"testing"
	"time"

	advisorapp "github.com/finsight/backend/internal/application/advisor"
	financeapp "github.com/finsight/backend/internal/application/finance"
	"github.com/finsight/backend/internal/domain/advisor"
	"github.com/finsight/backend/internal/domain/finance"
	infraadvisor "github.com/finsight/backend/internal/infrastructure/advisor"
	"github.com/finsight/backend/internal/infrastructure/cache"
	"github.com/finsight/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestAdvisorFlow_Integration exercises the full aggregation and caching
// pipeline against a real PostgreSQL database: records are written through
// the finance services, metrics are aggregated from the database, and
// recommendations are memoized until a write invalidates them.
func TestAdvisorFlow_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	ctx := context.Background()
	log := zap.NewNop()

	assetRepo := persistence.NewGormAssetRepository(testDB.DB)
	incomeRepo := persistence.NewGormIncomeRecordRepository(testDB.DB)
	liabilityRepo := persistence.NewGormLiabilityRepository(testDB.DB)
	cardRepo := persistence.NewGormCreditCardRepository(testDB.DB)

	recCache, err := cache.NewRecommendationCache(time.Hour, 100)
	require.NoError(t, err)
	t.Cleanup(func() { _ = recCache.Close() })

	assetService := financeapp.NewAssetService(assetRepo, recCache, log)
	incomeService := financeapp.NewIncomeService(incomeRepo, recCache, log)

	metricsService := advisorapp.NewMetricsService(assetRepo, incomeRepo, liabilityRepo, cardRepo, log)
	recommendationService := advisorapp.NewRecommendationService(
		metricsService, recCache, infraadvisor.NewRulesGenerator(), 0, log,
	)

	ownerID := uuid.New()
	testDB.CreateTestUser(ownerID, "advisor-flow@example.com")

	_, err = assetService.Create(ctx, ownerID, financeapp.CreateAssetRequest{
		Name:         "Savings",
		Type:         string(finance.AssetTypeCash),
		CurrentValue: decimal.NewFromInt(25000),
	})
	require.NoError(t, err)

	_, err = incomeService.Create(ctx, ownerID, financeapp.CreateIncomeRequest{
		Source:    "Salary",
		Amount:    decimal.NewFromInt(6000),
		Frequency: string(finance.FrequencyMonthly),
	})
	require.NoError(t, err)

	t.Run("metrics aggregate persisted records", func(t *testing.T) {
		snapshot, err := metricsService.Snapshot(ctx, ownerID)
		require.NoError(t, err)

		assert.True(t, snapshot.TotalAssets.Equal(decimal.NewFromInt(25000)))
		assert.True(t, snapshot.MonthlyIncome.Equal(decimal.NewFromInt(6000)))
		assert.True(t, snapshot.NetWorth.Equal(decimal.NewFromInt(25000)))
	})

	t.Run("second recommendation is served from cache", func(t *testing.T) {
		first, err := recommendationService.Recommend(ctx, ownerID, advisor.RecommendationBudget)
		require.NoError(t, err)
		assert.False(t, first.FromCache)
		assert.Equal(t, advisor.RecommendationBudget, first.Payload.Type)

		second, err := recommendationService.Recommend(ctx, ownerID, advisor.RecommendationBudget)
		require.NoError(t, err)
		assert.True(t, second.FromCache)
		assert.Equal(t, first.Payload.Summary, second.Payload.Summary)
	})

	t.Run("writing a record invalidates the cache", func(t *testing.T) {
		// Warm the cache
		_, err := recommendationService.Recommend(ctx, ownerID, advisor.RecommendationSavings)
		require.NoError(t, err)

		_, err = assetService.Create(ctx, ownerID, financeapp.CreateAssetRequest{
			Name:         "Brokerage",
			Type:         string(finance.AssetTypeInvestment),
			CurrentValue: decimal.NewFromInt(10000),
		})
		require.NoError(t, err)

		result, err := recommendationService.Recommend(ctx, ownerID, advisor.RecommendationSavings)
		require.NoError(t, err)
		assert.False(t, result.FromCache, "cache should be cleared after a write")
	})

	t.Run("different owners never share cached payloads", func(t *testing.T) {
		otherOwner := uuid.New()
		testDB.CreateTestUser(otherOwner, "advisor-other@example.com")

		// First call for a fresh owner must regenerate even with a warm cache
		_, err := recommendationService.Recommend(ctx, ownerID, advisor.RecommendationDebt)
		require.NoError(t, err)

		result, err := recommendationService.Recommend(ctx, otherOwner, advisor.RecommendationDebt)
		require.NoError(t, err)
		assert.False(t, result.FromCache)
	})
}
