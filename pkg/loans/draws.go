package loans

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/iwvelando/mli-select/pkg/mathutil"
)

// Draw is a construction-loan disbursement in a given project month (1-based).
type Draw struct {
	Month  int
	Amount float64
}

// PercentDraw is a disbursement expressed as a share of the total loan.
type PercentDraw struct {
	Month       int
	Percent     float64
	Description string
}

// DrawInterval is the interest accrued on the cumulative balance between one
// draw and the next.
type DrawInterval struct {
	Month             int
	Drawn             float64
	CumulativeBalance float64
	MonthlyInterest   float64
	Months            int
	Interest          float64
}

// DrawResult is the interest-only cost of a progressive draw schedule.
type DrawResult struct {
	Intervals              []DrawInterval
	TotalInterest          float64
	FinalBalance           float64
	AverageMonthlyInterest float64
	HorizonMonths          int
}

// DrawInterest accrues interest-only cost on a progressive draw schedule.
// Each draw's cumulative balance accrues until the next draw, the last one
// until the horizon (12 months when horizonMonths <= 0) or its own month if
// that is later. Draws are sorted by month first; the input is not modified.
func DrawInterest(draws []Draw, annualInterestRate float64, horizonMonths int) (DrawResult, error) {
	if err := validateRate(annualInterestRate); err != nil {
		return DrawResult{}, err
	}
	if horizonMonths <= 0 {
		horizonMonths = constants.DefaultDrawHorizonMonths
	}
	for _, d := range draws {
		if d.Month < 1 {
			return DrawResult{}, fmt.Errorf("draw month %d: %w", d.Month, ErrInvalidInput)
		}
		if !mathutil.IsFinite(d.Amount) || d.Amount < 0 {
			return DrawResult{}, fmt.Errorf("draw amount %v in month %d: %w", d.Amount, d.Month, ErrInvalidInput)
		}
	}

	sorted := slices.Clone(draws)
	slices.SortStableFunc(sorted, func(a, b Draw) int {
		return cmp.Compare(a.Month, b.Month)
	})

	end := horizonMonths
	if n := len(sorted); n > 0 && sorted[n-1].Month > end {
		end = sorted[n-1].Month
	}

	rate := monthlyRate(annualInterestRate)
	result := DrawResult{
		Intervals:     make([]DrawInterval, 0, len(sorted)),
		HorizonMonths: end,
	}
	cumulative := 0.0
	for i, d := range sorted {
		cumulative += d.Amount
		next := end
		if i+1 < len(sorted) {
			next = sorted[i+1].Month
		}
		months := next - d.Month
		interest := cumulative * rate * float64(months)
		result.TotalInterest += interest
		result.Intervals = append(result.Intervals, DrawInterval{
			Month:             d.Month,
			Drawn:             d.Amount,
			CumulativeBalance: cumulative,
			MonthlyInterest:   cumulative * rate,
			Months:            months,
			Interest:          interest,
		})
	}
	result.FinalBalance = cumulative
	result.AverageMonthlyInterest = result.TotalInterest / float64(end)
	return result, nil
}

// DrawsFromPercentages converts percentage draws into amounts of totalLoan.
// The summed percentage is returned so callers can flag schedules that do
// not disburse exactly 100%.
func DrawsFromPercentages(totalLoan float64, draws []PercentDraw) ([]Draw, float64) {
	amounts := make([]Draw, 0, len(draws))
	totalPercent := 0.0
	for _, d := range draws {
		totalPercent += d.Percent
		amounts = append(amounts, Draw{
			Month:  d.Month,
			Amount: mathutil.ApplyPercentage(totalLoan, d.Percent),
		})
	}
	return amounts, totalPercent
}
