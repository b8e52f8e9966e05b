// Package evaluate runs the configured scenarios through the MLI Select
// engine and collects the results for rendering.
package evaluate

import (
	"fmt"

	"github.com/iwvelando/mli-select/internal/config"
	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/iwvelando/mli-select/pkg/format"
	"github.com/iwvelando/mli-select/pkg/loans"
	"github.com/iwvelando/mli-select/pkg/mathutil"
	"github.com/iwvelando/mli-select/pkg/mli"
	"go.uber.org/zap"
)

// Evaluation holds all information derived for one scenario.
type Evaluation struct {
	Name   string
	Result mli.Result
	Draws  *loans.DrawResult
	Notes  []string
}

// Evaluate processes every active scenario in file order.
func Evaluate(logger *zap.Logger, conf config.Configuration) ([]Evaluation, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	active := conf.ActiveScenarios()
	if skipped := len(conf.Scenarios) - len(active); skipped > 0 {
		logger.Debug(fmt.Sprintf("skipping %d inactive scenarios", skipped),
			zap.String("op", "evaluate.Evaluate"),
		)
	}

	var evaluations []Evaluation
	for _, scenario := range active {
		evaluation, err := Scenario(logger, scenario)
		if err != nil {
			return evaluations, err
		}
		evaluations = append(evaluations, evaluation)
	}

	return evaluations, nil
}

// Scenario evaluates a single configured scenario, including its optional
// construction draw schedule.
func Scenario(logger *zap.Logger, scenario config.Scenario) (Evaluation, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	input, err := scenario.ToScenario()
	if err != nil {
		return Evaluation{}, err
	}

	result, err := mli.Evaluate(input)
	if err != nil {
		return Evaluation{}, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	logger.Debug("scored scenario",
		zap.String("op", "evaluate.Scenario"),
		zap.String("scenario", scenario.Name),
		zap.Int("points", result.Total),
		zap.Stringer("tier", result.Tier),
	)

	evaluation := Evaluation{Name: scenario.Name, Result: result}
	evaluation.Notes = append(evaluation.Notes, tierNotes(result)...)

	if result.DSCRMaxLoan > 0 && result.DSCRMaxLoan < result.MaxLoan {
		evaluation.Notes = append(evaluation.Notes, fmt.Sprintf("debt coverage limits the loan to %s of the %s leverage maximum",
			format.Currency(result.QualifiedLoan), format.Currency(result.MaxLoan)))
	}

	if scenario.Construction != nil && len(scenario.Construction.Draws) > 0 {
		drawResult, totalPercent, err := Draws(logger, scenario.Name, scenario.Construction)
		if err != nil {
			return Evaluation{}, err
		}
		evaluation.Draws = &drawResult
		if !mathutil.IsZero(totalPercent - constants.MaxPercentage) {
			evaluation.Notes = append(evaluation.Notes, fmt.Sprintf("draw schedule disburses %s of the construction loan",
				format.Percent(totalPercent, 2)))
		}
	}

	return evaluation, nil
}

// Draws computes progressive-draw interest for a construction loan and
// returns the summed draw percentage alongside it.
func Draws(logger *zap.Logger, name string, construction *config.Construction) (loans.DrawResult, float64, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	draws, totalPercent := construction.ToDraws()
	result, err := loans.DrawInterest(draws, construction.Rate(), construction.HorizonMonths)
	if err != nil {
		return loans.DrawResult{}, totalPercent, fmt.Errorf("scenario %q construction draws: %w", name, err)
	}
	logger.Debug("computed construction draw interest",
		zap.String("op", "evaluate.Draws"),
		zap.String("scenario", name),
		zap.Int("draws", len(draws)),
		zap.Float64("totalInterest", result.TotalInterest),
	)

	return result, totalPercent, nil
}

func tierNotes(result mli.Result) []string {
	var notes []string
	for _, tier := range mli.Tiers() {
		if tier.Rank() <= result.Tier.Rank() {
			continue
		}
		notes = append(notes, fmt.Sprintf("%d points short of %s", tier.Threshold()-result.Total, tier))
		break
	}
	if result.Scores.Affordability == 0 {
		notes = append(notes, fmt.Sprintf("no affordability points; commitments under %d years do not score", mli.MinCommitmentYears))
	}
	return notes
}
