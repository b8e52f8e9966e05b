package mli

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/iwvelando/mli-select/pkg/constants"
)

// DefaultMedianRenterIncome is the annual median renter income assumed for
// cities missing from the table.
const DefaultMedianRenterIncome = 60000.0

// medianRenterIncome holds annual median renter household income in CAD.
var medianRenterIncome = map[string]float64{
	"Vancouver, BC":   65000,
	"Surrey, BC":      62000,
	"Burnaby, BC":     63000,
	"Victoria, BC":    60000,
	"Calgary, AB":     64000,
	"Edmonton, AB":    60000,
	"Toronto, ON":     72000,
	"Mississauga, ON": 69000,
	"Brampton, ON":    68000,
	"Ottawa, ON":      68000,
	"Montreal, QC":    53000,
	"Quebec City, QC": 50000,
	"Winnipeg, MB":    52000,
	"Saskatoon, SK":   51000,
	"Halifax, NS":     52000,
}

// RentCap is the affordable rent threshold for one city.
type RentCap struct {
	City         string
	MedianIncome float64
	Known        bool // false when DefaultMedianRenterIncome was assumed
	MonthlyCap   float64
}

// UnitsRequirement is the affordable unit count a project needs to earn the
// points of one affordability band.
type UnitsRequirement struct {
	Points  int
	Percent float64
	Units   int
}

// Cities returns the cities with a known median renter income, sorted.
func Cities() []string {
	return slices.Sorted(maps.Keys(medianRenterIncome))
}

// MedianRenterIncome returns the annual median renter income for city.
func MedianRenterIncome(city string) (float64, bool) {
	income, ok := medianRenterIncome[city]
	return income, ok
}

// RentCapForCity returns the affordable monthly rent for city, using
// DefaultMedianRenterIncome when the city is unknown.
func RentCapForCity(city string) RentCap {
	income, ok := MedianRenterIncome(city)
	if !ok {
		income = DefaultMedianRenterIncome
	}
	return RentCap{
		City:         city,
		MedianIncome: income,
		Known:        ok,
		MonthlyCap:   RentCapFromMedian(income),
	}
}

// AffordableUnitsRequired lists, from the lowest band up, how many of units
// must be affordable to reach each affordability band before any commitment
// bonus. Counts round up to whole units.
func AffordableUnitsRequired(units int, project ProjectType) ([]UnitsRequirement, error) {
	if !project.Valid() {
		return nil, fmt.Errorf("%q: %w", string(project), ErrUnknownProjectType)
	}
	bands := existingAffordabilityBands
	if project == NewConstruction {
		bands = newConstructionAffordabilityBands
	}

	requirements := make([]UnitsRequirement, 0, len(bands))
	for _, b := range slices.Backward(bands) {
		requirements = append(requirements, UnitsRequirement{
			Points:  b.points,
			Percent: b.min,
			Units:   int(math.Ceil(b.min * float64(max(units, 0)) / constants.PercentageMultiplier)),
		})
	}
	return requirements, nil
}
