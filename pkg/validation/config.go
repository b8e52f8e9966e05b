// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"math"

	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/iwvelando/mli-select/pkg/mathutil"
	"github.com/iwvelando/mli-select/pkg/mli"
)

// drawTotalTolerance is how far, in percentage points, a draw schedule may
// stray from 100% before it is reported.
const drawTotalTolerance = 0.01

// ValidatePercentage reports a value the scoring engine will clamp into [0, 100].
func ValidatePercentage(label, field string, value float64) string {
	if math.IsNaN(value) {
		return fmt.Sprintf("%s %s is not a number - treated as 0", label, field)
	}
	if value < 0 || value > constants.MaxPercentage {
		return fmt.Sprintf("%s %s of %.2f is outside 0-100 - clamped to %.0f",
			label, field, value, mathutil.ClampPercent(value))
	}
	return ""
}

// ValidateDrawTotal checks that a draw schedule disburses the whole loan.
func ValidateDrawTotal(label string, percentages []float64) string {
	if len(percentages) == 0 {
		return ""
	}
	total := 0.0
	for _, p := range percentages {
		total += p
	}
	if !mathutil.WithinTolerance(total, constants.MaxPercentage, drawTotalTolerance) {
		return fmt.Sprintf("%s draws total %.2f%% instead of 100%%", label, total)
	}
	return ""
}

// ConfigValidator checks a set of scenarios for values the engine will
// silently correct or ignore.
type ConfigValidator struct {
	Scenarios []ScenarioConfig
}

// ScenarioConfig is the validation view of one configured scenario.
type ScenarioConfig struct {
	Name            string
	Active          bool
	ProjectType     string
	Units           int
	AffordableUnits int
	CommitmentYears int
	Percentages     []Field
	DrawMonths      []int
	DrawPercentages []float64
}

// Field is a named percentage-valued input.
type Field struct {
	Name  string
	Value float64
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	seen := make(map[string]bool, len(cv.Scenarios))
	for _, scenario := range cv.Scenarios {
		if seen[scenario.Name] {
			warnings = append(warnings, fmt.Sprintf("Scenario name '%s' is used more than once", scenario.Name))
		}
		seen[scenario.Name] = true
	}

	for _, scenario := range cv.Scenarios {
		if !scenario.Active {
			continue
		}
		label := fmt.Sprintf("Scenario '%s'", scenario.Name)

		if _, err := mli.ParseProjectType(scenario.ProjectType); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s has unknown project type '%s'", label, scenario.ProjectType))
		}

		if scenario.AffordableUnits > 0 && scenario.Units <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s lists %d affordable units but no total units - affordability scored as 0%%",
				label, scenario.AffordableUnits))
		}
		if scenario.Units > 0 && scenario.AffordableUnits > scenario.Units {
			warnings = append(warnings, fmt.Sprintf("%s lists more affordable units (%d) than units (%d)",
				label, scenario.AffordableUnits, scenario.Units))
		}

		if scenario.CommitmentYears < 0 {
			warnings = append(warnings, fmt.Sprintf("%s commitment years %d is negative - treated as 0", label, scenario.CommitmentYears))
		}

		for _, f := range scenario.Percentages {
			if w := ValidatePercentage(label, f.Name, f.Value); w != "" {
				warnings = append(warnings, w)
			}
		}

		for _, month := range scenario.DrawMonths {
			if month < 1 {
				warnings = append(warnings, fmt.Sprintf("%s has a draw in month %d - months start at 1", label, month))
			}
		}
		if w := ValidateDrawTotal(label, scenario.DrawPercentages); w != "" {
			warnings = append(warnings, w)
		}
	}

	return warnings
}
