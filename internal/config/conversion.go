package config

import (
	"fmt"

	"github.com/iwvelando/mli-select/pkg/loans"
	"github.com/iwvelando/mli-select/pkg/mli"
)

// ToScenario converts a configured scenario into the engine's input.
func (s *Scenario) ToScenario() (mli.Scenario, error) {
	project, err := mli.ParseProjectType(s.ProjectType)
	if err != nil {
		return mli.Scenario{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	affordablePercent := s.AffordablePercent
	if affordablePercent == 0 {
		affordablePercent = mli.AffordablePercentFromUnits(s.AffordableUnits, s.Units)
	}

	return mli.Scenario{
		Name:        s.Name,
		ProjectType: project,
		Affordability: mli.AffordabilityInput{
			IsNewConstruction: project == mli.NewConstruction,
			AffordablePercent: affordablePercent,
			CommitmentYears:   s.CommitmentYears,
		},
		Energy: mli.EnergyInput{ImprovementPercent: s.EnergyImprovement},
		Accessibility: mli.AccessibilityInput{
			AllUnitsVisitable:      s.VisitableAll,
			CommonsBarrierFree:     s.CommonsBarrierFree,
			AccessiblePercent:      s.AccessiblePercent,
			UniversalDesignPercent: s.UniversalDesignPercent,
			RHFScore:               s.RHFScore,
		},
		ValueOrCost:        s.ValueOrCost,
		BasePremiumRate:    s.BasePremiumRate,
		InterestRate:       s.Rate(),
		NetOperatingIncome: s.NetOperatingIncome,
	}, nil
}

// ToDraws converts the construction draw percentages into amounts and
// returns the summed percentage alongside them.
func (c *Construction) ToDraws() ([]loans.Draw, float64) {
	if c == nil {
		return nil, 0
	}
	percentDraws := make([]loans.PercentDraw, 0, len(c.Draws))
	for _, d := range c.Draws {
		percentDraws = append(percentDraws, loans.PercentDraw{
			Month:       d.Month,
			Percent:     d.Percentage,
			Description: d.Description,
		})
	}
	return loans.DrawsFromPercentages(c.TotalLoan, percentDraws)
}
