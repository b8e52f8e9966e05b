package mli

import "fmt"

// Benefits are the loan terms granted at a tier.
type Benefits struct {
	MaxAmortizationYears int
	MaxLeverage          float64 // loan-to-value (existing) or loan-to-cost (new)
	PremiumDiscount      float64 // fraction of the base insurance premium waived
	RequiredDSCR         float64
}

// benefitTable is the single source of tier terms. Amortization and premium
// discount are the same on both tracks; leverage and DSCR are not.
var benefitTable = map[ProjectType]map[Tier]Benefits{
	NewConstruction: {
		TierNone: {MaxAmortizationYears: 25, MaxLeverage: 0.85, PremiumDiscount: 0.00, RequiredDSCR: 1.00},
		Tier50:   {MaxAmortizationYears: 30, MaxLeverage: 0.90, PremiumDiscount: 0.10, RequiredDSCR: 1.00},
		Tier70:   {MaxAmortizationYears: 35, MaxLeverage: 0.95, PremiumDiscount: 0.25, RequiredDSCR: 0.95},
		Tier100:  {MaxAmortizationYears: 40, MaxLeverage: 0.95, PremiumDiscount: 0.50, RequiredDSCR: 0.90},
	},
	ExistingProperty: {
		TierNone: {MaxAmortizationYears: 25, MaxLeverage: 0.80, PremiumDiscount: 0.00, RequiredDSCR: 1.10},
		Tier50:   {MaxAmortizationYears: 30, MaxLeverage: 0.85, PremiumDiscount: 0.10, RequiredDSCR: 1.10},
		Tier70:   {MaxAmortizationYears: 35, MaxLeverage: 0.90, PremiumDiscount: 0.25, RequiredDSCR: 1.05},
		Tier100:  {MaxAmortizationYears: 40, MaxLeverage: 0.95, PremiumDiscount: 0.50, RequiredDSCR: 1.00},
	},
}

// BenefitsFor returns the terms for a tier on the given project track.
func BenefitsFor(tier Tier, project ProjectType) (Benefits, error) {
	track, ok := benefitTable[project]
	if !ok {
		return Benefits{}, fmt.Errorf("%q: %w", string(project), ErrUnknownProjectType)
	}
	b, ok := track[tier]
	if !ok {
		return Benefits{}, fmt.Errorf("%s: %w", tier, ErrUnknownTier)
	}
	return b, nil
}

// MaxAmortizationYears returns the longest amortization allowed at a tier.
func MaxAmortizationYears(tier Tier) (int, error) {
	b, err := BenefitsFor(tier, NewConstruction)
	if err != nil {
		return 0, err
	}
	return b.MaxAmortizationYears, nil
}

// PremiumDiscount returns the fraction of the base premium waived at a tier.
func PremiumDiscount(tier Tier) (float64, error) {
	b, err := BenefitsFor(tier, NewConstruction)
	if err != nil {
		return 0, err
	}
	return b.PremiumDiscount, nil
}

// MaxLeverage returns the leverage cap for a tier on the given project track.
func MaxLeverage(tier Tier, project ProjectType) (float64, error) {
	b, err := BenefitsFor(tier, project)
	if err != nil {
		return 0, err
	}
	return b.MaxLeverage, nil
}
