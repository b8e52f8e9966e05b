// Package lending provides the residential and commercial underwriting
// calculators that sit alongside the MLI Select engine: HELOC limits, cap
// rates, the mortgage stress test, GDS/TDS ratios and rental cash flow.
package lending

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/iwvelando/mli-select/pkg/loans"
	"github.com/iwvelando/mli-select/pkg/mathutil"
)

// ErrInvalidInput is returned when a divisor such as a property value or
// income is zero, negative or non-finite.
var ErrInvalidInput = errors.New("invalid lending input")

// HELOC limits.
const (
	HELOCMaxCombinedLTV     = 0.65
	HELOCMaxLimit           = 500000.0
	HELOCMinLimit           = 10000.0
	HELOCMaxPaymentToIncome = 0.05
)

type rateBand struct {
	minScore int
	rate     float64
}

// helocRates are ordered from the best credit band down.
var helocRates = []rateBand{
	{780, 6.95},
	{720, 7.45},
	{680, 7.95},
	{640, 8.95},
}

const helocFallbackRate = 10.45

// HELOCInput holds the borrower facts for a home equity line of credit.
type HELOCInput struct {
	HomeValue       float64
	MortgageBalance float64
	CreditScore     int
	Income          float64 // annual gross; qualification uses the monthly equivalent
}

// HELOCResult holds the HELOC limit and its carrying cost.
type HELOCResult struct {
	AvailableEquity     float64
	Limit               float64
	Rate                float64
	InterestOnlyPayment float64
	Qualifies           bool
	MeetsMinimum        bool
	CurrentLTV          float64
	NewLTV              float64
}

// HELOCRate returns the credit-banded annual rate for a HELOC.
func HELOCRate(creditScore int) float64 {
	for _, b := range helocRates {
		if creditScore >= b.minScore {
			return b.rate
		}
	}
	return helocFallbackRate
}

// HELOC sizes a home equity line of credit: combined borrowing is capped at
// 65% of home value and the line at 500,000. The line is withdrawn when the
// interest-only payment exceeds 5% of gross monthly income.
func HELOC(in HELOCInput) (HELOCResult, error) {
	if !mathutil.IsFinite(in.HomeValue) || in.HomeValue <= 0 {
		return HELOCResult{}, fmt.Errorf("home value %v: %w", in.HomeValue, ErrInvalidInput)
	}

	availableEquity := math.Max(0, in.HomeValue*HELOCMaxCombinedLTV-in.MortgageBalance)
	limit := math.Min(availableEquity, HELOCMaxLimit)
	rate := HELOCRate(in.CreditScore)
	payment := loans.CalculateInterestPayment(limit, rate)
	qualifies := payment <= in.Income/constants.MonthsPerYear*HELOCMaxPaymentToIncome

	result := HELOCResult{
		AvailableEquity:     availableEquity,
		Rate:                rate,
		InterestOnlyPayment: payment,
		Qualifies:           qualifies,
		MeetsMinimum:        limit >= HELOCMinLimit,
		CurrentLTV:          mathutil.CalculatePercentage(in.MortgageBalance, in.HomeValue),
		NewLTV:              mathutil.CalculatePercentage(in.MortgageBalance+limit, in.HomeValue),
	}
	if qualifies {
		result.Limit = limit
	}
	return result, nil
}

// CapRate returns net operating income as a percentage of market value.
func CapRate(noi, marketValue float64) (float64, error) {
	if !mathutil.IsFinite(marketValue) || marketValue <= 0 {
		return 0, fmt.Errorf("market value %v: %w", marketValue, ErrInvalidInput)
	}
	return noi / marketValue * constants.PercentageMultiplier, nil
}

// ImpliedValue returns the value at which noi yields the target cap rate.
func ImpliedValue(noi, capRatePercent float64) (float64, error) {
	if !mathutil.IsFinite(capRatePercent) || capRatePercent <= 0 {
		return 0, fmt.Errorf("cap rate %v: %w", capRatePercent, ErrInvalidInput)
	}
	return noi / (capRatePercent / constants.PercentageMultiplier), nil
}

// RequiredNOI returns the income a property must earn to hit a target cap rate.
func RequiredNOI(marketValue, capRatePercent float64) float64 {
	return mathutil.ApplyPercentage(marketValue, capRatePercent)
}

// StressTestRate returns the qualifying rate: the contract rate plus two
// points, or the floor if that is higher. A non-positive floor uses 5.25%.
func StressTestRate(quotedPercent, floorPercent float64) float64 {
	if floorPercent <= 0 {
		floorPercent = constants.DefaultStressTestFloor
	}
	return math.Max(quotedPercent+constants.StressTestBuffer, floorPercent)
}

// DebtServiceRatios holds gross and total debt service as percentages of income.
type DebtServiceRatios struct {
	GDS float64
	TDS float64
}

// CalculateDebtServiceRatios computes GDS and TDS from annual amounts.
func CalculateDebtServiceRatios(incomeAnnual, housingCostsAnnual, otherDebtAnnual float64) (DebtServiceRatios, error) {
	if !mathutil.IsFinite(incomeAnnual) || incomeAnnual <= 0 {
		return DebtServiceRatios{}, fmt.Errorf("income %v: %w", incomeAnnual, ErrInvalidInput)
	}
	return DebtServiceRatios{
		GDS: mathutil.CalculatePercentage(housingCostsAnnual, incomeAnnual),
		TDS: mathutil.CalculatePercentage(housingCostsAnnual+otherDebtAnnual, incomeAnnual),
	}, nil
}
