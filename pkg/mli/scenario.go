package mli

import (
	"fmt"

	"github.com/iwvelando/mli-select/pkg/loans"
	"github.com/iwvelando/mli-select/pkg/mathutil"
)

// Scenario is one project evaluated end to end. The affordability track is
// taken from ProjectType; Affordability.IsNewConstruction is ignored.
type Scenario struct {
	Name               string
	ProjectType        ProjectType
	Affordability      AffordabilityInput
	Energy             EnergyInput
	Accessibility      AccessibilityInput
	ValueOrCost        float64
	BasePremiumRate    float64
	InterestRate       float64
	NetOperatingIncome float64 // optional; enables the coverage-constrained loan
}

// Result is everything derived from a Scenario.
type Result struct {
	Name           string
	ProjectType    ProjectType
	Scores         PillarScores
	Total          int
	Tier           Tier
	Benefits       Benefits
	MaxLoan        float64
	DSCRMaxLoan    float64 // 0 when no NOI was supplied
	QualifiedLoan  float64 // MaxLoan, further limited by DSCRMaxLoan when NOI was supplied
	Premium        PremiumResult
	MonthlyPayment float64 // on QualifiedLoan at the tier's maximum amortization
	TotalInterest  float64
}

// Evaluate runs the full pipeline: pillar scores, total, tier, benefits,
// maximum loan, premium and payment. Identical scenarios always produce
// identical results.
func Evaluate(s Scenario) (Result, error) {
	if !s.ProjectType.Valid() {
		return Result{}, fmt.Errorf("scenario %q: %q: %w", s.Name, string(s.ProjectType), ErrUnknownProjectType)
	}

	affordability := s.Affordability
	affordability.IsNewConstruction = s.ProjectType == NewConstruction
	scores := Score(affordability, s.Energy, s.Accessibility)
	tier := scores.Tier()

	benefits, err := BenefitsFor(tier, s.ProjectType)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	maxLoan, err := MaxLoan(s.ValueOrCost, tier, s.ProjectType)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	premium, err := Premium(s.ValueOrCost, s.BasePremiumRate, tier)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	result := Result{
		Name:          s.Name,
		ProjectType:   s.ProjectType,
		Scores:        scores,
		Total:         scores.Total(),
		Tier:          tier,
		Benefits:      benefits,
		MaxLoan:       maxLoan,
		QualifiedLoan: maxLoan,
		Premium:       premium,
	}

	if s.NetOperatingIncome > 0 {
		dscrLoan, err := DSCRMaxLoan(s.NetOperatingIncome, s.InterestRate, benefits.MaxAmortizationYears, benefits.RequiredDSCR)
		if err != nil {
			return Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		result.DSCRMaxLoan = dscrLoan
		if maxLoan > 0 {
			result.QualifiedLoan = min(maxLoan, dscrLoan)
		}
	}

	if result.QualifiedLoan > 0 {
		schedule, err := loans.NewSchedule(s.InterestRate, benefits.MaxAmortizationYears, result.QualifiedLoan)
		if err != nil {
			return Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		result.MonthlyPayment = schedule.Payment()
		result.TotalInterest = schedule.TotalInterest()
	} else if !mathutil.IsFinite(s.InterestRate) || s.InterestRate < 0 {
		return Result{}, fmt.Errorf("scenario %q: interest rate %v: %w", s.Name, s.InterestRate, ErrInvalidInput)
	}

	return result, nil
}

// Compare evaluates scenarios in order, stopping at the first invalid one.
func Compare(scenarios ...Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		r, err := Evaluate(s)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
