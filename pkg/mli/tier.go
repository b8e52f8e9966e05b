// Package mli implements the CMHC MLI Select points and tier scoring engine
// and the tier-dependent loan terms derived from it.
//
// Every function is a pure computation over its arguments: nothing is
// cached, logged or retained between calls, so the package is safe for
// concurrent use without coordination.
package mli

import (
	"errors"
	"fmt"
)

// Tier is the MLI Select qualification level unlocked by a total point score.
type Tier int

const (
	TierNone Tier = iota
	Tier50
	Tier70
	Tier100
)

// Point thresholds for each tier.
const (
	Tier50Threshold  = 50
	Tier70Threshold  = 70
	Tier100Threshold = 100
)

var (
	// ErrUnknownTier is returned when a Tier value outside the defined set is used.
	ErrUnknownTier = errors.New("unknown tier")
	// ErrUnknownProjectType is returned for project types other than new construction or existing.
	ErrUnknownProjectType = errors.New("unknown project type")
)

// Tiers lists every tier in ascending order.
func Tiers() []Tier {
	return []Tier{TierNone, Tier50, Tier70, Tier100}
}

// TierFromPoints maps a total score to its tier.
func TierFromPoints(points int) Tier {
	switch {
	case points >= Tier100Threshold:
		return Tier100
	case points >= Tier70Threshold:
		return Tier70
	case points >= Tier50Threshold:
		return Tier50
	default:
		return TierNone
	}
}

// Valid reports whether t is one of the defined tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierNone, Tier50, Tier70, Tier100:
		return true
	}
	return false
}

// Rank orders tiers; a higher rank always carries equal or better terms.
func (t Tier) Rank() int {
	return int(t)
}

// Threshold returns the minimum total score for the tier.
func (t Tier) Threshold() int {
	switch t {
	case Tier50:
		return Tier50Threshold
	case Tier70:
		return Tier70Threshold
	case Tier100:
		return Tier100Threshold
	default:
		return 0
	}
}

func (t Tier) String() string {
	switch t {
	case TierNone:
		return "None"
	case Tier50:
		return "Tier50"
	case Tier70:
		return "Tier70"
	case Tier100:
		return "Tier100"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ProjectType selects the leverage and coverage track of the benefit table.
type ProjectType string

const (
	NewConstruction  ProjectType = "new"
	ExistingProperty ProjectType = "existing"
)

// ParseProjectType accepts "new"/"new-construction" and "existing"/"existing-property".
func ParseProjectType(s string) (ProjectType, error) {
	switch s {
	case "new", "new-construction", "newConstruction":
		return NewConstruction, nil
	case "existing", "existing-property", "existingProperty":
		return ExistingProperty, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownProjectType)
}

// Valid reports whether p is a known project type.
func (p ProjectType) Valid() bool {
	return p == NewConstruction || p == ExistingProperty
}
