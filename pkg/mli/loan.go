package mli

import (
	"fmt"

	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/iwvelando/mli-select/pkg/loans"
	"github.com/iwvelando/mli-select/pkg/mathutil"
)

// ErrInvalidInput aliases the loans sentinel so callers can match either package.
var ErrInvalidInput = loans.ErrInvalidInput

// PremiumResult holds the insurance premium before and after the tier discount.
// Rates are percentages of the insured amount.
type PremiumResult struct {
	BaseRate  float64
	Discount  float64
	FinalRate float64
	BaseCost  float64
	FinalCost float64
	Savings   float64
}

// MaxLoan returns valueOrCost times the tier's leverage cap. A non-positive or
// non-finite value yields 0.
func MaxLoan(valueOrCost float64, tier Tier, project ProjectType) (float64, error) {
	leverage, err := MaxLeverage(tier, project)
	if err != nil {
		return 0, err
	}
	if !mathutil.IsFinite(valueOrCost) || valueOrCost <= 0 {
		return 0, nil
	}
	return valueOrCost * leverage, nil
}

// Premium applies the tier discount to basePremiumRate and prices it on amount.
func Premium(amount, basePremiumRate float64, tier Tier) (PremiumResult, error) {
	discount, err := PremiumDiscount(tier)
	if err != nil {
		return PremiumResult{}, err
	}
	if !mathutil.IsFinite(basePremiumRate) || basePremiumRate < 0 {
		return PremiumResult{}, fmt.Errorf("base premium rate %v: %w", basePremiumRate, ErrInvalidInput)
	}
	if !mathutil.IsFinite(amount) || amount < 0 {
		amount = 0
	}

	finalRate := basePremiumRate * (1 - discount)
	return PremiumResult{
		BaseRate:  basePremiumRate,
		Discount:  discount,
		FinalRate: finalRate,
		BaseCost:  amount * basePremiumRate / constants.PercentageMultiplier,
		FinalCost: amount * finalRate / constants.PercentageMultiplier,
		Savings:   amount * (basePremiumRate - finalRate) / constants.PercentageMultiplier,
	}, nil
}

// DSCRMaxLoan returns the largest loan whose payments net operating income
// covers at minDCR. Non-positive NOI supports no loan.
func DSCRMaxLoan(noi, annualInterestRate float64, years int, minDCR float64) (float64, error) {
	if !mathutil.IsFinite(minDCR) || minDCR <= 0 {
		return 0, fmt.Errorf("minimum coverage ratio %v: %w", minDCR, ErrInvalidInput)
	}
	paymentPerDollar, err := loans.MonthlyPayment(annualInterestRate, years, 1)
	if err != nil {
		return 0, err
	}
	if !mathutil.IsFinite(noi) || noi <= 0 {
		return 0, nil
	}
	requiredMonthly := noi / minDCR / constants.MonthsPerYear
	return requiredMonthly / paymentPerDollar, nil
}

// BreakEvenRentPerUnit returns the monthly rent each unit must bring in to cover
// debt service and operating costs, plus an optional margin (0.1 = 10%).
func BreakEvenRentPerUnit(monthlyDebtService, otherMonthlyOpex float64, units int, targetMargin float64) float64 {
	if units <= 0 {
		return 0
	}
	needed := (monthlyDebtService + otherMonthlyOpex) * (1 + targetMargin)
	return needed / float64(units)
}

// RentCapFromMedian returns the highest monthly rent that still counts as
// affordable for a given median annual renter income.
func RentCapFromMedian(medianAnnualIncome float64) float64 {
	return medianAnnualIncome * constants.RentCapIncomeShare / constants.MonthsPerYear
}

// RentWithinCap reports whether monthlyRent respects the affordability cap.
func RentWithinCap(monthlyRent, medianAnnualIncome float64) bool {
	return monthlyRent <= RentCapFromMedian(medianAnnualIncome)
}
