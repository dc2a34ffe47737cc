package advisor

import (
	"fmt"

	"github.com/finsight/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// Monthly-equivalent conversion factors. The table is part of the metrics
// contract: changing it shifts the debt-to-income ratio and the emergency
// fund threshold.
var (
	factorDaily    = decimal.NewFromInt(30)
	factorWeekly   = decimal.NewFromFloat(4.33)
	factorBiWeekly = decimal.NewFromFloat(2.17)
	divQuarterly   = decimal.NewFromInt(3)
	divYearly      = decimal.NewFromInt(12)

	hundred             = decimal.NewFromInt(100)
	utilizationWarnPct  = decimal.NewFromInt(30)
	utilizationGoodPct  = decimal.NewFromInt(10)
	debtToIncomeWarn    = decimal.NewFromFloat(0.4)
	emergencyFundMonths = decimal.NewFromInt(6)
)

// fallbackCategory is the bucket for records without a recognizable category
const fallbackCategory = "other"

// MonthlyEquivalent converts an income amount to its monthly equivalent
// based on the record's frequency. Unrecognized frequencies are treated
// as already monthly.
func MonthlyEquivalent(amount decimal.Decimal, frequency finance.IncomeFrequency) decimal.Decimal {
	switch frequency {
	case finance.FrequencyDaily:
		return amount.Mul(factorDaily)
	case finance.FrequencyWeekly:
		return amount.Mul(factorWeekly)
	case finance.FrequencyBiWeekly:
		return amount.Mul(factorBiWeekly)
	case finance.FrequencyMonthly:
		return amount
	case finance.FrequencyQuarterly:
		return amount.Div(divQuarterly)
	case finance.FrequencyYearly, finance.FrequencyOneTime:
		return amount.Div(divYearly)
	default:
		return amount
	}
}

// Aggregate computes a MetricsSnapshot from the four raw collections.
// It is pure and synchronous; the collections are read, never mutated.
func Aggregate(
	assets []finance.Asset,
	income []finance.IncomeRecord,
	liabilities []finance.Liability,
	cards []finance.CreditCardAccount,
) MetricsSnapshot {
	snapshot := MetricsSnapshot{
		TotalAssets:         decimal.Zero,
		TotalIncome:         decimal.Zero,
		MonthlyIncome:       decimal.Zero,
		TotalLiabilities:    decimal.Zero,
		TotalCreditCardDebt: decimal.Zero,
		TotalCreditLimit:    decimal.Zero,
		AvailableCredit:     decimal.Zero,
	}

	for _, a := range assets {
		snapshot.TotalAssets = snapshot.TotalAssets.Add(a.CurrentValue)
	}

	for _, r := range income {
		snapshot.TotalIncome = snapshot.TotalIncome.Add(r.Amount)
		snapshot.MonthlyIncome = snapshot.MonthlyIncome.Add(MonthlyEquivalent(r.Amount, r.Frequency))
	}

	for _, l := range liabilities {
		snapshot.TotalLiabilities = snapshot.TotalLiabilities.Add(l.Principal)
	}

	for _, c := range cards {
		snapshot.TotalCreditCardDebt = snapshot.TotalCreditCardDebt.Add(c.Balance)
		snapshot.TotalCreditLimit = snapshot.TotalCreditLimit.Add(c.CreditLimit)
	}

	snapshot.AvailableCredit = snapshot.TotalCreditLimit.Sub(snapshot.TotalCreditCardDebt)
	snapshot.NetWorth = snapshot.TotalAssets.
		Sub(snapshot.TotalLiabilities).
		Sub(snapshot.TotalCreditCardDebt)

	if snapshot.TotalCreditLimit.IsPositive() {
		snapshot.CreditUtilization = snapshot.TotalCreditCardDebt.
			Div(snapshot.TotalCreditLimit).
			Mul(hundred)
	} else {
		snapshot.CreditUtilization = decimal.Zero
	}

	totalDebt := snapshot.TotalLiabilities.Add(snapshot.TotalCreditCardDebt)
	if snapshot.MonthlyIncome.IsPositive() {
		snapshot.DebtToIncomeRatio = totalDebt.Div(snapshot.MonthlyIncome)
	} else {
		snapshot.DebtToIncomeRatio = decimal.Zero
	}

	snapshot.AssetBreakdown = assetBreakdown(assets)
	snapshot.IncomeBreakdown = incomeBreakdown(income)
	snapshot.LiabilityBreakdown = liabilityBreakdown(liabilities)
	snapshot.Insights = generateInsights(snapshot)

	return snapshot
}

// breakdownBuilder groups records into category buckets while preserving
// first-occurrence order.
type breakdownBuilder struct {
	order   []string
	buckets map[string]*CategoryBreakdown
}

func newBreakdownBuilder() *breakdownBuilder {
	return &breakdownBuilder{buckets: make(map[string]*CategoryBreakdown)}
}

func (b *breakdownBuilder) add(category string, member BreakdownMember) {
	if category == "" {
		category = fallbackCategory
	}
	bucket, ok := b.buckets[category]
	if !ok {
		bucket = &CategoryBreakdown{Category: category, Total: decimal.Zero}
		b.buckets[category] = bucket
		b.order = append(b.order, category)
	}
	bucket.Count++
	bucket.Total = bucket.Total.Add(member.Amount)
	bucket.Members = append(bucket.Members, member)
}

func (b *breakdownBuilder) build() []CategoryBreakdown {
	result := make([]CategoryBreakdown, 0, len(b.order))
	for _, category := range b.order {
		result = append(result, *b.buckets[category])
	}
	return result
}

func assetBreakdown(assets []finance.Asset) []CategoryBreakdown {
	b := newBreakdownBuilder()
	for _, a := range assets {
		b.add(a.Type.String(), BreakdownMember{ID: a.ID, Label: a.Name, Amount: a.CurrentValue})
	}
	return b.build()
}

func incomeBreakdown(income []finance.IncomeRecord) []CategoryBreakdown {
	b := newBreakdownBuilder()
	for _, r := range income {
		b.add(r.Source, BreakdownMember{ID: r.ID, Label: r.Source, Amount: r.Amount})
	}
	return b.build()
}

func liabilityBreakdown(liabilities []finance.Liability) []CategoryBreakdown {
	b := newBreakdownBuilder()
	for _, l := range liabilities {
		b.add(l.Type.String(), BreakdownMember{ID: l.ID, Label: l.Name, Amount: l.Principal})
	}
	return b.build()
}

// generateInsights evaluates each rule independently, in a fixed order.
// Every applicable insight is emitted.
func generateInsights(s MetricsSnapshot) []Insight {
	insights := make([]Insight, 0, 4)

	if s.NetWorth.IsPositive() {
		insights = append(insights, Insight{
			Type:     InsightPositive,
			Category: InsightCategoryNetWorth,
			Message:  fmt.Sprintf("Your net worth is positive at %s. Keep it up!", s.NetWorth.StringFixed(2)),
		})
	} else if s.NetWorth.IsNegative() {
		insights = append(insights, Insight{
			Type:     InsightWarning,
			Category: InsightCategoryNetWorth,
			Message:  fmt.Sprintf("Your net worth is negative at %s. Focus on paying down debt.", s.NetWorth.StringFixed(2)),
		})
	}

	if s.CreditUtilization.GreaterThan(utilizationWarnPct) {
		insights = append(insights, Insight{
			Type:     InsightWarning,
			Category: InsightCategoryCreditUtilization,
			Message:  fmt.Sprintf("Credit utilization is %s%%, above the recommended 30%%.", s.CreditUtilization.StringFixed(1)),
		})
	} else if s.CreditUtilization.LessThanOrEqual(utilizationGoodPct) {
		insights = append(insights, Insight{
			Type:     InsightPositive,
			Category: InsightCategoryCreditUtilization,
			Message:  fmt.Sprintf("Credit utilization is a healthy %s%%.", s.CreditUtilization.StringFixed(1)),
		})
	}

	if s.DebtToIncomeRatio.GreaterThan(debtToIncomeWarn) {
		insights = append(insights, Insight{
			Type:     InsightWarning,
			Category: InsightCategoryDebtToIncome,
			Message:  fmt.Sprintf("Debt-to-income ratio is %s, above the recommended 0.4.", s.DebtToIncomeRatio.StringFixed(2)),
		})
	}

	// A portfolio with no assets at all always lacks an emergency fund,
	// including the degenerate zero-income case.
	emergencyTarget := s.MonthlyIncome.Mul(emergencyFundMonths)
	if s.TotalAssets.LessThan(emergencyTarget) || s.TotalAssets.IsZero() {
		insights = append(insights, Insight{
			Type:     InsightRecommendation,
			Category: InsightCategoryEmergencyFund,
			Message:  fmt.Sprintf("Build an emergency fund of %s (six months of income).", emergencyTarget.StringFixed(2)),
		})
	}

	return insights
}
