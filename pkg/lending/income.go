package lending

import (
	"fmt"

	"github.com/iwvelando/mli-select/pkg/mathutil"
)

// SelfEmployedInput holds three years of Notice of Assessment line 15000
// income, most recent first, plus recurring business addbacks.
type SelfEmployedInput struct {
	MostRecent float64
	Prior      float64
	ThirdYear  float64
	Addbacks   float64
}

// SelfEmployedIncome holds the income a lender underwrites for a
// self-employed borrower.
type SelfEmployedIncome struct {
	QualifyingIncome float64
	ThreeYearAverage float64
}

// NormalizeSelfEmployedIncome qualifies on the lower of the two-year average
// and the weaker of the two latest years, each with addbacks. The three-year
// average is reported for trend only.
func NormalizeSelfEmployedIncome(in SelfEmployedInput) (SelfEmployedIncome, error) {
	for _, v := range []float64{in.MostRecent, in.Prior, in.ThirdYear, in.Addbacks} {
		if !mathutil.IsFinite(v) {
			return SelfEmployedIncome{}, fmt.Errorf("assessed income %v: %w", v, ErrInvalidInput)
		}
	}

	twoYearAverage := (in.MostRecent+in.Prior)/2 + in.Addbacks
	weakerYear := min(in.MostRecent, in.Prior) + in.Addbacks
	return SelfEmployedIncome{
		QualifyingIncome: min(twoYearAverage, weakerYear),
		ThreeYearAverage: (in.MostRecent+in.Prior+in.ThirdYear)/3 + in.Addbacks,
	}, nil
}
