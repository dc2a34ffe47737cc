package advisor

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InsightType classifies the tone of a generated insight
type InsightType string

const (
	InsightPositive       InsightType = "positive"
	InsightWarning        InsightType = "warning"
	InsightRecommendation InsightType = "recommendation"
)

// Insight categories
const (
	InsightCategoryNetWorth          = "net_worth"
	InsightCategoryCreditUtilization = "credit_utilization"
	InsightCategoryDebtToIncome      = "debt_to_income"
	InsightCategoryEmergencyFund     = "emergency_fund"
)

// Insight is a qualitative observation derived from the aggregated metrics
type Insight struct {
	Type     InsightType `json:"type"`
	Category string      `json:"category"`
	Message  string      `json:"message"`
}

// BreakdownMember identifies one record contributing to a category bucket
type BreakdownMember struct {
	ID     uuid.UUID       `json:"id"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryBreakdown accumulates the records of one category bucket.
// Buckets keep the insertion order of their first occurrence.
type CategoryBreakdown struct {
	Category string            `json:"category"`
	Count    int               `json:"count"`
	Total    decimal.Decimal   `json:"total"`
	Members  []BreakdownMember `json:"members"`
}

// MetricsSnapshot is an immutable view of the user's aggregated financial
// position at one point in time. It is a pure function of the four input
// collections: equal inputs always produce an equal snapshot.
type MetricsSnapshot struct {
	TotalAssets         decimal.Decimal     `json:"total_assets"`
	TotalIncome         decimal.Decimal     `json:"total_income"`
	MonthlyIncome       decimal.Decimal     `json:"monthly_income"`
	TotalLiabilities    decimal.Decimal     `json:"total_liabilities"`
	TotalCreditCardDebt decimal.Decimal     `json:"total_credit_card_debt"`
	TotalCreditLimit    decimal.Decimal     `json:"total_credit_limit"`
	AvailableCredit     decimal.Decimal     `json:"available_credit"`
	NetWorth            decimal.Decimal     `json:"net_worth"`
	CreditUtilization   decimal.Decimal     `json:"credit_utilization"`
	DebtToIncomeRatio   decimal.Decimal     `json:"debt_to_income_ratio"`
	AssetBreakdown      []CategoryBreakdown `json:"asset_breakdown"`
	IncomeBreakdown     []CategoryBreakdown `json:"income_breakdown"`
	LiabilityBreakdown  []CategoryBreakdown `json:"liability_breakdown"`
	Insights            []Insight           `json:"insights"`
}
