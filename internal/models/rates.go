package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateTable is an immutable snapshot of "KRW per 1 unit" for every supported
// currency. It is either all zero or fully populated with positive rates.
type RateTable struct {
	rates map[Code]decimal.Decimal
	asOf  string
}

// ZeroRates returns the table used before, or instead of, a successful fetch
func ZeroRates() RateTable {
	rates := make(map[Code]decimal.Decimal, len(supportedCodes))
	for _, code := range supportedCodes {
		rates[code] = decimal.Zero
	}
	return RateTable{rates: rates}
}

// NewRateTable builds a populated table. Every supported code must be present
// with a positive rate; unsupported keys are rejected.
func NewRateTable(rates map[Code]decimal.Decimal, asOf string) (RateTable, error) {
	table := make(map[Code]decimal.Decimal, len(supportedCodes))
	for code, rate := range rates {
		if !code.IsSupported() {
			return RateTable{}, fmt.Errorf("unsupported currency %q", code)
		}
		table[code] = rate
	}

	for _, code := range supportedCodes {
		rate, ok := table[code]
		if !ok {
			return RateTable{}, fmt.Errorf("missing rate for %s", code)
		}
		if !rate.IsPositive() {
			return RateTable{}, fmt.Errorf("rate for %s must be positive, got %s", code, rate)
		}
	}

	return RateTable{rates: table, asOf: asOf}, nil
}

// Rate returns KRW per 1 unit of code, zero when unknown
func (t RateTable) Rate(code Code) decimal.Decimal {
	rate, ok := t.rates[code]
	if !ok {
		return decimal.Zero
	}
	return rate
}

// IsZero reports whether the table carries no usable rates
func (t RateTable) IsZero() bool {
	for _, rate := range t.rates {
		if !rate.IsZero() {
			return false
		}
	}
	return true
}

// AsOf is the upstream date of the quotes, empty for the zero table
func (t RateTable) AsOf() string {
	return t.asOf
}
