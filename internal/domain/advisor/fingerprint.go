package advisor

import (
	"encoding/json"
)

// fingerprintFields is the fixed scalar subset that addresses cache entries.
// Snapshots that agree on these values share a fingerprint even when their
// breakdowns differ; that normalization is intentional. Decimal values are
// rendered with String(), which trims trailing zeros, so equal metric tuples
// always serialize identically.
type fingerprintFields struct {
	TotalAssets         string `json:"total_assets"`
	TotalLiabilities    string `json:"total_liabilities"`
	TotalCreditCardDebt string `json:"total_credit_card_debt"`
	MonthlyIncome       string `json:"monthly_income"`
	NetWorth            string `json:"net_worth"`
	CreditUtilization   string `json:"credit_utilization"`
}

// Fingerprint derives the deterministic cache key for a recommendation type
// and metrics snapshot.
func Fingerprint(recType RecommendationType, snapshot MetricsSnapshot) string {
	fields := fingerprintFields{
		TotalAssets:         snapshot.TotalAssets.String(),
		TotalLiabilities:    snapshot.TotalLiabilities.String(),
		TotalCreditCardDebt: snapshot.TotalCreditCardDebt.String(),
		MonthlyIncome:       snapshot.MonthlyIncome.String(),
		NetWorth:            snapshot.NetWorth.String(),
		CreditUtilization:   snapshot.CreditUtilization.String(),
	}

	// Struct fields marshal in declaration order, giving a stable encoding.
	encoded, err := json.Marshal(fields)
	if err != nil {
		// Marshaling a struct of strings cannot fail.
		panic(err)
	}

	return recType.String() + "_" + string(encoded)
}

// TypePrefix returns the key prefix shared by all entries of one
// recommendation type.
func TypePrefix(recType RecommendationType) string {
	return recType.String() + "_"
}
