package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	advisorapp "github.com/finsight/backend/internal/application/advisor"
	"github.com/finsight/backend/internal/domain/finance"
	infraadvisor "github.com/finsight/backend/internal/infrastructure/advisor"
	"github.com/finsight/backend/internal/infrastructure/cache"
	"github.com/finsight/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupAdvisorTestHandler(t *testing.T) (*AdvisorHandler, *mockIncomeRepository, *mockCreditCardRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	assets := newMockAssetRepository()
	income := newMockIncomeRepository()
	liabilities := newMockLiabilityRepository()
	cards := newMockCreditCardRepository()

	metrics := advisorapp.NewMetricsService(assets, income, liabilities, cards, zap.NewNop())

	recCache, err := cache.NewRecommendationCache(time.Hour, 100)
	require.NoError(t, err)
	t.Cleanup(func() { recCache.Close() })

	service := advisorapp.NewRecommendationService(
		metrics, recCache, infraadvisor.NewRulesGenerator(), 0, zap.NewNop())

	return NewAdvisorHandler(metrics, service), income, cards
}

func addMonthlyIncome(t *testing.T, income *mockIncomeRepository, ownerID uuid.UUID, amount int64) {
	t.Helper()
	record, err := finance.NewIncomeRecord(ownerID, "Salary", decimal.NewFromInt(amount), finance.FrequencyMonthly)
	require.NoError(t, err)
	income.records[record.ID] = record
}

func TestAdvisorHandler_GetMetrics(t *testing.T) {
	handler, income, _ := setupAdvisorTestHandler(t)
	ownerID := uuid.New()
	addMonthlyIncome(t, income, ownerID, 5000)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/advisor/metrics", nil)
	setJWTContext(c, ownerID)

	handler.GetMetrics(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "monthly_income")
	assert.Contains(t, w.Body.String(), "net_worth")
}

func TestAdvisorHandler_GetMetrics_Unauthenticated(t *testing.T) {
	handler, _, _ := setupAdvisorTestHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/advisor/metrics", nil)

	handler.GetMetrics(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdvisorHandler_Recommend_CacheRoundTrip(t *testing.T) {
	handler, income, _ := setupAdvisorTestHandler(t)
	ownerID := uuid.New()
	addMonthlyIncome(t, income, ownerID, 5000)

	do := func() RecommendationData {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodPost, "/advisor/recommendations/budget", nil)
		c.Params = gin.Params{{Key: "type", Value: "budget"}}
		setJWTContext(c, ownerID)

		handler.Recommend(c)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		raw, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		var data RecommendationData
		require.NoError(t, json.Unmarshal(raw, &data))
		return data
	}

	first := do()
	assert.False(t, first.FromCache)
	assert.Equal(t, "budget", first.Recommendation.Type.String())

	// Same metrics snapshot, so the second call must be served from cache
	second := do()
	assert.True(t, second.FromCache)
}

func TestAdvisorHandler_Recommend_UnknownType(t *testing.T) {
	handler, _, _ := setupAdvisorTestHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/advisor/recommendations/horoscope", nil)
	c.Params = gin.Params{{Key: "type", Value: "horoscope"}}
	setJWTContext(c, uuid.New())

	handler.Recommend(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvisorHandler_CacheAdmin(t *testing.T) {
	handler, income, _ := setupAdvisorTestHandler(t)
	ownerID := uuid.New()
	addMonthlyIncome(t, income, ownerID, 5000)

	// Warm the cache
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/advisor/recommendations/budget", nil)
	c.Params = gin.Params{{Key: "type", Value: "budget"}}
	setJWTContext(c, ownerID)
	handler.Recommend(c)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("stats report entries", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/admin/cache/stats", nil)

		handler.CacheStats(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "total_entries")
	})

	t.Run("invalidate type removes matching entries", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodDelete, "/admin/cache/budget", nil)
		c.Params = gin.Params{{Key: "type", Value: "budget"}}

		handler.InvalidateType(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		raw, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		var data CountData
		require.NoError(t, json.Unmarshal(raw, &data))
		assert.Equal(t, int64(1), data.Count)
	})

	t.Run("invalidate unknown type is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodDelete, "/admin/cache/horoscope", nil)
		c.Params = gin.Params{{Key: "type", Value: "horoscope"}}

		handler.InvalidateType(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("clear empties the cache", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodDelete, "/admin/cache", nil)

		handler.ClearCache(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
