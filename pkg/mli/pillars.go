package mli

import (
	"github.com/iwvelando/mli-select/pkg/mathutil"
)

// Pillar caps.
const (
	MaxAffordabilityPoints = 50
	MaxEnergyPoints        = 25
	MaxAccessibilityPoints = 25
	MaxTotalPoints         = 100
)

// Affordability commitment rules.
const (
	MinCommitmentYears    = 10
	BonusCommitmentYears  = 20
	CommitmentBonusPoints = 10
)

// AffordabilityInput holds the affordability facts of a project.
type AffordabilityInput struct {
	IsNewConstruction bool
	AffordablePercent float64
	CommitmentYears   int
}

// EnergyInput holds the efficiency improvement over the baseline building.
type EnergyInput struct {
	ImprovementPercent float64
}

// AccessibilityInput holds the accessibility facts of a project. RHFScore is
// the Rick Hansen Foundation accessibility rating on its 0-100 scale.
type AccessibilityInput struct {
	AllUnitsVisitable      bool
	CommonsBarrierFree     bool
	AccessiblePercent      float64
	UniversalDesignPercent float64
	RHFScore               float64
}

// PillarScores holds the points earned in each pillar.
type PillarScores struct {
	Affordability int
	Energy        int
	Accessibility int
}

// Total returns the combined score, bounded to [0, MaxTotalPoints].
func (p PillarScores) Total() int {
	return mathutil.ClampInt(p.Affordability+p.Energy+p.Accessibility, 0, MaxTotalPoints)
}

// Tier returns the tier unlocked by the combined score.
func (p PillarScores) Tier() Tier {
	return TierFromPoints(p.Total())
}

// band awards points when a value meets min. Band lists are ordered from the
// highest threshold down and are never modified.
type band struct {
	min    float64
	points int
}

var (
	newConstructionAffordabilityBands = []band{{50, 50}, {40, 40}, {30, 30}}
	existingAffordabilityBands        = []band{{80, 50}, {60, 40}, {40, 30}}
	energyBands                       = []band{{40, 25}, {25, 20}, {15, 15}}
	universalDesignBands              = []band{{85, 5}, {15, 2}}
	rhfBands                          = []band{{80, 5}, {60, 3}}
)

// Accessibility sub-criterion points.
const (
	visitabilityPoints       = 5
	barrierFreeCommonsPoints = 5
	accessibleUnitsPoints    = 5
	accessibleUnitsMinimum   = 15.0
)

func bandPoints(value float64, bands []band) int {
	for _, b := range bands {
		if value >= b.min {
			return b.points
		}
	}
	return 0
}

// AffordabilityScore scores the share of affordable units held for the
// commitment period. Commitments shorter than MinCommitmentYears earn nothing;
// commitments of BonusCommitmentYears or more add CommitmentBonusPoints to a
// non-zero base.
func AffordabilityScore(in AffordabilityInput) int {
	if in.CommitmentYears < MinCommitmentYears {
		return 0
	}

	bands := existingAffordabilityBands
	if in.IsNewConstruction {
		bands = newConstructionAffordabilityBands
	}
	points := bandPoints(mathutil.ClampPercent(in.AffordablePercent), bands)
	if points > 0 && in.CommitmentYears >= BonusCommitmentYears {
		points += CommitmentBonusPoints
	}
	return mathutil.ClampInt(points, 0, MaxAffordabilityPoints)
}

// EnergyScore scores the efficiency improvement over the baseline building.
func EnergyScore(in EnergyInput) int {
	return mathutil.ClampInt(bandPoints(mathutil.ClampPercent(in.ImprovementPercent), energyBands), 0, MaxEnergyPoints)
}

// AccessibilityScore adds up the independent accessibility sub-criteria.
func AccessibilityScore(in AccessibilityInput) int {
	points := 0
	if in.AllUnitsVisitable {
		points += visitabilityPoints
	}
	if in.CommonsBarrierFree {
		points += barrierFreeCommonsPoints
	}
	if mathutil.ClampPercent(in.AccessiblePercent) >= accessibleUnitsMinimum {
		points += accessibleUnitsPoints
	}
	points += bandPoints(mathutil.ClampPercent(in.UniversalDesignPercent), universalDesignBands)
	points += bandPoints(mathutil.ClampPercent(in.RHFScore), rhfBands)
	return mathutil.ClampInt(points, 0, MaxAccessibilityPoints)
}

// Score evaluates all three pillars.
func Score(a AffordabilityInput, e EnergyInput, acc AccessibilityInput) PillarScores {
	return PillarScores{
		Affordability: AffordabilityScore(a),
		Energy:        EnergyScore(e),
		Accessibility: AccessibilityScore(acc),
	}
}

// AffordablePercentFromUnits converts an affordable-unit count to a percentage
// of all units. A project without units is 0% affordable.
func AffordablePercentFromUnits(affordableUnits, units int) float64 {
	if units <= 0 {
		return 0
	}
	return mathutil.CalculatePercentage(float64(affordableUnits), float64(units))
}
