package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/finsight/backend/internal/domain/advisor"
	"github.com/shopspring/decimal"
)

var (
	sixMonths          = decimal.NewFromInt(6)
	highUtilization    = decimal.NewFromInt(30)
	extremeUtilization = decimal.NewFromInt(70)
	highDebtRatio      = decimal.NewFromFloat(0.36)
	investableShare    = decimal.NewFromFloat(0.6)
)

// RulesGenerator produces recommendations from fixed heuristics over the
// metrics snapshot. It serves as the fallback when no external advisory
// engine is configured.
type RulesGenerator struct{}

// NewRulesGenerator creates a heuristics-based generator
func NewRulesGenerator() *RulesGenerator {
	return &RulesGenerator{}
}

// Generate builds a recommendation of the given type from the snapshot
func (g *RulesGenerator) Generate(_ context.Context, recType advisor.RecommendationType, snapshot advisor.MetricsSnapshot) (advisor.RecommendationPayload, error) {
	var summary string
	var suggestions []string

	switch recType {
	case advisor.RecommendationBudget:
		summary, suggestions = g.budgetAdvice(snapshot)
	case advisor.RecommendationInvestment:
		summary, suggestions = g.investmentAdvice(snapshot)
	case advisor.RecommendationSavings:
		summary, suggestions = g.savingsAdvice(snapshot)
	case advisor.RecommendationDebt:
		summary, suggestions = g.debtAdvice(snapshot)
	default:
		return advisor.RecommendationPayload{}, fmt.Errorf("unsupported recommendation type: %s", recType)
	}

	return advisor.RecommendationPayload{
		Type:        recType,
		Summary:     summary,
		Suggestions: suggestions,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (g *RulesGenerator) budgetAdvice(s advisor.MetricsSnapshot) (string, []string) {
	suggestions := []string{
		"Track expenses against the 50/30/20 split of needs, wants and savings",
	}
	if s.MonthlyIncome.IsZero() {
		return "No recurring income on record, so budgeting guidance is limited",
			append(suggestions, "Record income sources with their frequency to unlock income-based budgeting")
	}
	if s.TotalCreditCardDebt.GreaterThan(s.MonthlyIncome) {
		suggestions = append(suggestions,
			fmt.Sprintf("Credit card balances (%s) exceed one month of income; budget a fixed paydown amount", s.TotalCreditCardDebt.StringFixed(2)))
	}
	return fmt.Sprintf("Monthly income of %s gives room for a structured budget", s.MonthlyIncome.StringFixed(2)), suggestions
}

func (g *RulesGenerator) investmentAdvice(s advisor.MetricsSnapshot) (string, []string) {
	emergencyTarget := s.MonthlyIncome.Mul(sixMonths)
	if s.TotalAssets.LessThan(emergencyTarget) {
		return "Build an emergency fund before expanding investments",
			[]string{
				fmt.Sprintf("Target %s in liquid reserves before adding market exposure", emergencyTarget.StringFixed(2)),
			}
	}
	investable := s.TotalAssets.Sub(emergencyTarget).Mul(investableShare)
	return "Reserves are covered, so surplus assets can work harder",
		[]string{
			fmt.Sprintf("Roughly %s could move into diversified index funds", investable.StringFixed(2)),
			"Rebalance holdings at least once a year",
		}
}

func (g *RulesGenerator) savingsAdvice(s advisor.MetricsSnapshot) (string, []string) {
	emergencyTarget := s.MonthlyIncome.Mul(sixMonths)
	if s.TotalAssets.GreaterThanOrEqual(emergencyTarget) && !emergencyTarget.IsZero() {
		return "Emergency savings target is met",
			[]string{"Consider moving surplus cash into higher-yield accounts"}
	}
	shortfall := emergencyTarget.Sub(s.TotalAssets)
	return "Savings are below the six-month income buffer",
		[]string{
			fmt.Sprintf("Close the %s gap with automatic transfers each pay cycle", shortfall.StringFixed(2)),
			"Keep the buffer in an account you can access within days",
		}
}

func (g *RulesGenerator) debtAdvice(s advisor.MetricsSnapshot) (string, []string) {
	var suggestions []string
	if s.CreditUtilization.GreaterThan(extremeUtilization) {
		suggestions = append(suggestions,
			fmt.Sprintf("Credit utilization of %s%% is critical; prioritize card paydown above all other goals", s.CreditUtilization.StringFixed(1)))
	} else if s.CreditUtilization.GreaterThan(highUtilization) {
		suggestions = append(suggestions,
			fmt.Sprintf("Credit utilization of %s%% is above the 30%% guideline", s.CreditUtilization.StringFixed(1)))
	}
	if s.DebtToIncomeRatio.GreaterThan(highDebtRatio) {
		suggestions = append(suggestions,
			"Debt-to-income ratio exceeds 36%; avoid taking on new loans")
	}
	if len(suggestions) == 0 {
		return "Debt levels look manageable",
			[]string{"Keep paying balances in full to avoid interest charges"}
	}
	return "Debt load needs attention", append(suggestions,
		"Pay down the highest-APR balance first")
}
