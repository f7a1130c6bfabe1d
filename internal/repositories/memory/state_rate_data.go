package memory

import (
	"github.com/lukemcknight/reserve/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultStateRates returns the curated seed table: a flat effective income-tax
// rate per state plus DC. States with no income tax on wages carry a 0 rate;
// anything not listed here resolves to 0% at the service layer.
func DefaultStateRates() []domain.StateRate {
	entry := func(code, name, rate string) domain.StateRate {
		return domain.StateRate{Code: code, Name: name, Rate: decimal.RequireFromString(rate)}
	}
	return []domain.StateRate{
		entry("AL", "Alabama", "0.04"),
		entry("AK", "Alaska", "0"),
		entry("AZ", "Arizona", "0.025"),
		entry("AR", "Arkansas", "0.044"),
		entry("CA", "California", "0.06"),
		entry("CO", "Colorado", "0.044"),
		entry("CT", "Connecticut", "0.05"),
		entry("DE", "Delaware", "0.048"),
		entry("DC", "District of Columbia", "0.06"),
		entry("FL", "Florida", "0"),
		entry("GA", "Georgia", "0.0549"),
		entry("HI", "Hawaii", "0.0625"),
		entry("ID", "Idaho", "0.058"),
		entry("IL", "Illinois", "0.0495"),
		entry("IN", "Indiana", "0.0305"),
		entry("IA", "Iowa", "0.049"),
		entry("KS", "Kansas", "0.0525"),
		entry("KY", "Kentucky", "0.04"),
		entry("LA", "Louisiana", "0.0425"),
		entry("ME", "Maine", "0.06"),
		entry("MD", "Maryland", "0.0475"),
		entry("MA", "Massachusetts", "0.05"),
		entry("MI", "Michigan", "0.0425"),
		entry("MN", "Minnesota", "0.062"),
		entry("MS", "Mississippi", "0.044"),
		entry("MO", "Missouri", "0.045"),
		entry("MT", "Montana", "0.054"),
		entry("NE", "Nebraska", "0.045"),
		entry("NV", "Nevada", "0"),
		entry("NH", "New Hampshire", "0"),
		entry("NJ", "New Jersey", "0.055"),
		entry("NM", "New Mexico", "0.045"),
		entry("NY", "New York", "0.06"),
		entry("NC", "North Carolina", "0.045"),
		entry("ND", "North Dakota", "0.02"),
		entry("OH", "Ohio", "0.03"),
		entry("OK", "Oklahoma", "0.0475"),
		entry("OR", "Oregon", "0.075"),
		entry("PA", "Pennsylvania", "0.0307"),
		entry("RI", "Rhode Island", "0.049"),
		entry("SC", "South Carolina", "0.052"),
		entry("SD", "South Dakota", "0"),
		entry("TN", "Tennessee", "0"),
		entry("TX", "Texas", "0"),
		entry("UT", "Utah", "0.0465"),
		entry("VT", "Vermont", "0.06"),
		entry("VA", "Virginia", "0.0525"),
		entry("WA", "Washington", "0"),
		entry("WV", "West Virginia", "0.048"),
		entry("WI", "Wisconsin", "0.05"),
		entry("WY", "Wyoming", "0"),
	}
}
