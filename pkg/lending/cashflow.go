package lending

import (
	"fmt"

	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/iwvelando/mli-select/pkg/loans"
	"github.com/iwvelando/mli-select/pkg/mathutil"
)

// RentalInput describes a financed rental purchase with monthly figures.
type RentalInput struct {
	Price           float64
	DownPayment     float64
	InterestRate    float64
	AmortYears      int
	RentMonthly     float64
	VacancyPercent  float64
	ExpensesMonthly float64
}

// RentalCashFlow holds the monthly economics of a rental property.
type RentalCashFlow struct {
	Loan          float64
	Payment       float64
	EffectiveRent float64
	NOI           float64
	CashFlow      float64
	CapRate       float64
	DSCR          float64
}

// CalculateRentalCashFlow prices the mortgage on a rental and nets it against
// vacancy-adjusted rent. A fully paid purchase carries no payment and a DSCR of 0.
func CalculateRentalCashFlow(in RentalInput) (RentalCashFlow, error) {
	if !mathutil.IsFinite(in.Price) || in.Price <= 0 {
		return RentalCashFlow{}, fmt.Errorf("price %v: %w", in.Price, ErrInvalidInput)
	}

	loan := in.Price - in.DownPayment
	var payment float64
	if loan > 0 {
		var err error
		payment, err = loans.MonthlyPayment(in.InterestRate, in.AmortYears, loan)
		if err != nil {
			return RentalCashFlow{}, err
		}
	}

	effectiveRent := in.RentMonthly * (1 - mathutil.ClampPercent(in.VacancyPercent)/constants.PercentageMultiplier)
	noi := effectiveRent - in.ExpensesMonthly
	capRate, err := CapRate(noi*constants.MonthsPerYear, in.Price)
	if err != nil {
		return RentalCashFlow{}, err
	}

	result := RentalCashFlow{
		Loan:          loan,
		Payment:       payment,
		EffectiveRent: effectiveRent,
		NOI:           noi,
		CashFlow:      noi - payment,
		CapRate:       capRate,
	}
	if payment > 0 {
		result.DSCR = noi / payment
	}
	return result, nil
}
