// Package loans provides level-payment and construction-draw loan calculations.
package loans

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/iwvelando/mli-select/pkg/mathutil"
)

// ErrInvalidInput is returned when a calculation is asked to work on a
// negative or non-finite rate, a non-positive term, or a non-positive principal.
var ErrInvalidInput = errors.New("invalid loan input")

// TermSummary holds the cost of borrowing a principal over one amortization length.
type TermSummary struct {
	Years         int
	Payment       float64
	TotalInterest float64
	TotalPaid     float64
}

// BiweeklyComparison holds monthly vs bi-weekly payment figures for one loan.
type BiweeklyComparison struct {
	Monthly       float64
	Biweekly      float64
	AnnualSavings float64
}

// CalculatePayment calculates the level payment for a loan using the standard
// amortization formula over the given number of periods, where the annual rate
// is compounded paymentsPerYear times a year.
func CalculatePayment(principal, annualInterestRate float64, periods, paymentsPerYear int) (float64, error) {
	if err := validateLoan(principal, annualInterestRate, periods); err != nil {
		return 0, err
	}
	if paymentsPerYear <= 0 {
		return 0, fmt.Errorf("payments per year must be positive, got %d: %w", paymentsPerYear, ErrInvalidInput)
	}

	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(periods), nil
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * float64(paymentsPerYear))
	power := math.Pow((1.00 + periodicInterestRate), float64(periods))
	discountFactor := (power - 1.00) / power
	payment := principal * periodicInterestRate / discountFactor
	if !mathutil.IsFinite(payment) {
		return 0, fmt.Errorf("payment at %v%% over %d periods is not finite: %w", annualInterestRate, periods, ErrInvalidInput)
	}
	return payment, nil
}

// MonthlyPayment returns the monthly payment that retires principal over the
// given number of years at an annual percentage rate.
func MonthlyPayment(annualInterestRate float64, years int, principal float64) (float64, error) {
	return CalculatePayment(principal, annualInterestRate, years*constants.MonthsPerYear, constants.MonthsPerYear)
}

// CalculateInterestPayment calculates the interest portion of a monthly payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * monthlyRate(annualInterestRate)
}

// CompareTerms prices the same principal over several amortization lengths.
// Without explicit terms the default comparison (25, 40 and 50 years) is used.
func CompareTerms(annualInterestRate, principal float64, years ...int) ([]TermSummary, error) {
	if len(years) == 0 {
		years = constants.DefaultComparisonTerms
	}

	summaries := make([]TermSummary, 0, len(years))
	for _, y := range years {
		payment, err := MonthlyPayment(annualInterestRate, y, principal)
		if err != nil {
			return nil, fmt.Errorf("failed to price %d-year term: %w", y, err)
		}
		totalPaid := payment * float64(y*constants.MonthsPerYear)
		summaries = append(summaries, TermSummary{
			Years:         y,
			Payment:       payment,
			TotalInterest: totalPaid - principal,
			TotalPaid:     totalPaid,
		})
	}
	return summaries, nil
}

// BiweeklySavings compares a monthly payment with a bi-weekly payment over
// the same amortization and reports the difference in annual outlay.
func BiweeklySavings(principal, annualInterestRate float64, years int) (BiweeklyComparison, error) {
	monthly, err := MonthlyPayment(annualInterestRate, years, principal)
	if err != nil {
		return BiweeklyComparison{}, err
	}
	biweekly, err := CalculatePayment(principal, annualInterestRate,
		years*constants.BiweeklyPaymentsPerYear, constants.BiweeklyPaymentsPerYear)
	if err != nil {
		return BiweeklyComparison{}, err
	}

	return BiweeklyComparison{
		Monthly:       monthly,
		Biweekly:      biweekly,
		AnnualSavings: monthly*constants.MonthsPerYear - biweekly*constants.BiweeklyPaymentsPerYear,
	}, nil
}

func monthlyRate(annualInterestRate float64) float64 {
	return annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

func validateRate(annualInterestRate float64) error {
	if !mathutil.IsFinite(annualInterestRate) || annualInterestRate < 0 {
		return fmt.Errorf("interest rate %v: %w", annualInterestRate, ErrInvalidInput)
	}
	return nil
}

func validateLoan(principal, annualInterestRate float64, periods int) error {
	if err := validateRate(annualInterestRate); err != nil {
		return err
	}
	if periods <= 0 {
		return fmt.Errorf("term of %d periods: %w", periods, ErrInvalidInput)
	}
	if !mathutil.IsFinite(principal) || principal <= 0 {
		return fmt.Errorf("principal %v: %w", principal, ErrInvalidInput)
	}
	return nil
}
