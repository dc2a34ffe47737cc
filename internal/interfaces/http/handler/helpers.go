package handler

import "github.com/shopspring/decimal"

// toDecimalPtr converts a float64 to a *decimal.Decimal
func toDecimalPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// toDecimal converts a float64 to a decimal.Decimal
func toDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// toDecimalPtrFrom converts an optional float64 to an optional decimal
func toDecimalPtrFrom(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	return toDecimalPtr(*f)
}
