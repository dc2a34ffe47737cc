package advisor

import (
	"testing"

	"github.com/finsight/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAsset(t *testing.T, ownerID uuid.UUID, name string, assetType finance.AssetType, value string) finance.Asset {
	t.Helper()
	a, err := finance.NewAsset(ownerID, name, assetType, decimal.RequireFromString(value))
	require.NoError(t, err)
	return *a
}

func mustIncome(t *testing.T, ownerID uuid.UUID, source string, amount string, frequency finance.IncomeFrequency) finance.IncomeRecord {
	t.Helper()
	r, err := finance.NewIncomeRecord(ownerID, source, decimal.RequireFromString(amount), frequency)
	require.NoError(t, err)
	return *r
}

func mustLiability(t *testing.T, ownerID uuid.UUID, name string, liabilityType finance.LiabilityType, principal string) finance.Liability {
	t.Helper()
	l, err := finance.NewLiability(ownerID, name, liabilityType, decimal.RequireFromString(principal))
	require.NoError(t, err)
	return *l
}

func mustCard(t *testing.T, ownerID uuid.UUID, name, limit, balance string) finance.CreditCardAccount {
	t.Helper()
	c, err := finance.NewCreditCardAccount(ownerID, name, "Test Bank",
		decimal.RequireFromString(limit), decimal.RequireFromString(balance))
	require.NoError(t, err)
	return *c
}

func TestMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		frequency finance.IncomeFrequency
		want      string
	}{
		{"daily", "10", finance.FrequencyDaily, "300"},
		{"weekly", "100", finance.FrequencyWeekly, "433"},
		{"bi-weekly", "100", finance.FrequencyBiWeekly, "217"},
		{"monthly", "500", finance.FrequencyMonthly, "500"},
		{"quarterly", "300", finance.FrequencyQuarterly, "100"},
		{"yearly", "1200", finance.FrequencyYearly, "100"},
		{"one-time", "1200", finance.FrequencyOneTime, "100"},
		{"unknown frequency defaults to monthly", "50", finance.IncomeFrequency("foo"), "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyEquivalent(decimal.RequireFromString(tt.amount), tt.frequency)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestAggregate_Totals(t *testing.T) {
	ownerID := uuid.New()

	assets := []finance.Asset{
		mustAsset(t, ownerID, "Checking", finance.AssetTypeCash, "5000"),
		mustAsset(t, ownerID, "Index fund", finance.AssetTypeInvestment, "20000"),
	}
	income := []finance.IncomeRecord{
		mustIncome(t, ownerID, "Salary", "4000", finance.FrequencyMonthly),
		mustIncome(t, ownerID, "Freelance", "100", finance.FrequencyWeekly),
	}
	liabilities := []finance.Liability{
		mustLiability(t, ownerID, "Car loan", finance.LiabilityTypeAutoLoan, "8000"),
	}
	cards := []finance.CreditCardAccount{
		mustCard(t, ownerID, "Visa", "10000", "2000"),
	}

	s := Aggregate(assets, income, liabilities, cards)

	assert.True(t, s.TotalAssets.Equal(decimal.NewFromInt(25000)))
	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(4100)))
	assert.True(t, s.MonthlyIncome.Equal(decimal.NewFromInt(4433)))
	assert.True(t, s.TotalLiabilities.Equal(decimal.NewFromInt(8000)))
	assert.True(t, s.TotalCreditCardDebt.Equal(decimal.NewFromInt(2000)))
	assert.True(t, s.TotalCreditLimit.Equal(decimal.NewFromInt(10000)))
	assert.True(t, s.AvailableCredit.Equal(decimal.NewFromInt(8000)))

	// netWorth = assets - liabilities - card debt
	assert.True(t, s.NetWorth.Equal(decimal.NewFromInt(15000)))

	// utilization = 2000/10000 * 100 = 20%
	assert.True(t, s.CreditUtilization.Equal(decimal.NewFromInt(20)))

	// DTI = (8000 + 2000) / 4433
	wantDTI := decimal.NewFromInt(10000).Div(decimal.NewFromInt(4433))
	assert.True(t, s.DebtToIncomeRatio.Equal(wantDTI))
}

func TestAggregate_Deterministic(t *testing.T) {
	ownerID := uuid.New()
	assets := []finance.Asset{
		mustAsset(t, ownerID, "Checking", finance.AssetTypeCash, "1000"),
		mustAsset(t, ownerID, "House", finance.AssetTypeProperty, "250000"),
	}
	income := []finance.IncomeRecord{
		mustIncome(t, ownerID, "Salary", "3000", finance.FrequencyMonthly),
	}

	first := Aggregate(assets, income, nil, nil)
	second := Aggregate(assets, income, nil, nil)

	assert.Equal(t, first, second)
}

func TestAggregate_PermutationInvariant(t *testing.T) {
	ownerID := uuid.New()
	a := mustAsset(t, ownerID, "Checking", finance.AssetTypeCash, "1000")
	b := mustAsset(t, ownerID, "House", finance.AssetTypeProperty, "250000")
	c := mustAsset(t, ownerID, "Car", finance.AssetTypeVehicle, "12000")

	forward := Aggregate([]finance.Asset{a, b, c}, nil, nil, nil)
	reversed := Aggregate([]finance.Asset{c, b, a}, nil, nil, nil)

	assert.True(t, forward.TotalAssets.Equal(reversed.TotalAssets))
	assert.True(t, forward.NetWorth.Equal(reversed.NetWorth))
	assert.True(t, forward.CreditUtilization.Equal(reversed.CreditUtilization))
	assert.True(t, forward.DebtToIncomeRatio.Equal(reversed.DebtToIncomeRatio))
}

func TestAggregate_ZeroCreditLimit(t *testing.T) {
	s := Aggregate(nil, nil, nil, nil)
	assert.True(t, s.CreditUtilization.IsZero())

	// A card with zero limit carries zero balance by invariant, but the
	// division guard must hold regardless.
	ownerID := uuid.New()
	cards := []finance.CreditCardAccount{mustCard(t, ownerID, "Empty", "0", "0")}
	s = Aggregate(nil, nil, nil, cards)
	assert.True(t, s.CreditUtilization.IsZero())
}

func TestAggregate_CategoryBreakdown(t *testing.T) {
	ownerID := uuid.New()
	assets := []finance.Asset{
		mustAsset(t, ownerID, "Checking", finance.AssetTypeCash, "1000"),
		mustAsset(t, ownerID, "Savings", finance.AssetTypeCash, "4000"),
		mustAsset(t, ownerID, "Collectibles", finance.AssetTypeOther, "300"),
	}

	s := Aggregate(assets, nil, nil, nil)

	require.Len(t, s.AssetBreakdown, 2)
	// Buckets appear in first-occurrence order.
	assert.Equal(t, "cash", s.AssetBreakdown[0].Category)
	assert.Equal(t, 2, s.AssetBreakdown[0].Count)
	assert.True(t, s.AssetBreakdown[0].Total.Equal(decimal.NewFromInt(5000)))
	require.Len(t, s.AssetBreakdown[0].Members, 2)
	assert.Equal(t, "Checking", s.AssetBreakdown[0].Members[0].Label)

	assert.Equal(t, "other", s.AssetBreakdown[1].Category)
	assert.Equal(t, 1, s.AssetBreakdown[1].Count)
}

func TestAggregate_IncomeBreakdownBySource(t *testing.T) {
	ownerID := uuid.New()
	income := []finance.IncomeRecord{
		mustIncome(t, ownerID, "Salary", "3000", finance.FrequencyMonthly),
		mustIncome(t, ownerID, "Salary", "500", finance.FrequencyMonthly),
		mustIncome(t, ownerID, "Dividends", "100", finance.FrequencyQuarterly),
	}

	s := Aggregate(nil, income, nil, nil)

	require.Len(t, s.IncomeBreakdown, 2)
	assert.Equal(t, "Salary", s.IncomeBreakdown[0].Category)
	assert.True(t, s.IncomeBreakdown[0].Total.Equal(decimal.NewFromInt(3500)))
	assert.Equal(t, "Dividends", s.IncomeBreakdown[1].Category)
}

func findInsight(insights []Insight, category string) (Insight, bool) {
	for _, i := range insights {
		if i.Category == category {
			return i, true
		}
	}
	return Insight{}, false
}

func TestAggregate_Insights(t *testing.T) {
	ownerID := uuid.New()

	t.Run("positive net worth and low utilization", func(t *testing.T) {
		assets := []finance.Asset{mustAsset(t, ownerID, "Savings", finance.AssetTypeCash, "100000")}
		income := []finance.IncomeRecord{mustIncome(t, ownerID, "Salary", "5000", finance.FrequencyMonthly)}
		cards := []finance.CreditCardAccount{mustCard(t, ownerID, "Visa", "10000", "500")}

		s := Aggregate(assets, income, nil, cards)

		netWorth, ok := findInsight(s.Insights, InsightCategoryNetWorth)
		require.True(t, ok)
		assert.Equal(t, InsightPositive, netWorth.Type)

		utilization, ok := findInsight(s.Insights, InsightCategoryCreditUtilization)
		require.True(t, ok)
		assert.Equal(t, InsightPositive, utilization.Type)

		// 100000 >= 5000*6, no emergency fund insight
		_, ok = findInsight(s.Insights, InsightCategoryEmergencyFund)
		assert.False(t, ok)
	})

	t.Run("high utilization and debt warnings", func(t *testing.T) {
		income := []finance.IncomeRecord{mustIncome(t, ownerID, "Salary", "2000", finance.FrequencyMonthly)}
		liabilities := []finance.Liability{mustLiability(t, ownerID, "Loan", finance.LiabilityTypePersonalLoan, "5000")}
		cards := []finance.CreditCardAccount{mustCard(t, ownerID, "Visa", "10000", "4000")}

		s := Aggregate(nil, income, liabilities, cards)

		netWorth, ok := findInsight(s.Insights, InsightCategoryNetWorth)
		require.True(t, ok)
		assert.Equal(t, InsightWarning, netWorth.Type)

		utilization, ok := findInsight(s.Insights, InsightCategoryCreditUtilization)
		require.True(t, ok)
		assert.Equal(t, InsightWarning, utilization.Type)

		// DTI = 9000/2000 = 4.5 > 0.4
		dti, ok := findInsight(s.Insights, InsightCategoryDebtToIncome)
		require.True(t, ok)
		assert.Equal(t, InsightWarning, dti.Type)
	})

	t.Run("mid-range utilization emits nothing", func(t *testing.T) {
		cards := []finance.CreditCardAccount{mustCard(t, ownerID, "Visa", "10000", "2000")}
		s := Aggregate(nil, nil, nil, cards)
		_, ok := findInsight(s.Insights, InsightCategoryCreditUtilization)
		assert.False(t, ok)
	})

	t.Run("emergency fund shortfall", func(t *testing.T) {
		assets := []finance.Asset{mustAsset(t, ownerID, "Checking", finance.AssetTypeCash, "1000")}
		income := []finance.IncomeRecord{mustIncome(t, ownerID, "Salary", "3000", finance.FrequencyMonthly)}

		s := Aggregate(assets, income, nil, nil)

		fund, ok := findInsight(s.Insights, InsightCategoryEmergencyFund)
		require.True(t, ok)
		assert.Equal(t, InsightRecommendation, fund.Type)
		assert.Contains(t, fund.Message, "18000.00")
	})
}

func TestAggregate_AllZeroScenario(t *testing.T) {
	s := Aggregate(nil, nil, nil, nil)

	assert.True(t, s.NetWorth.IsZero())
	assert.True(t, s.DebtToIncomeRatio.IsZero())
	assert.True(t, s.CreditUtilization.IsZero())

	// Empty portfolio still gets the emergency fund recommendation with a
	// zero target.
	fund, ok := findInsight(s.Insights, InsightCategoryEmergencyFund)
	require.True(t, ok)
	assert.Equal(t, InsightRecommendation, fund.Type)
	assert.Contains(t, fund.Message, "0.00")

	// Zero net worth emits no net worth insight.
	_, ok = findInsight(s.Insights, InsightCategoryNetWorth)
	assert.False(t, ok)
}
