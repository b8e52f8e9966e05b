package mli

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestRentCapForCity(t *testing.T) {
	tests := []struct {
		city     string
		median   float64
		known    bool
		expected float64
	}{
		{"Surrey, BC", 62000, true, 1550},
		{"Toronto, ON", 72000, true, 1800},
		{"Quebec City, QC", 50000, true, 1250},
		{"Whitehorse, YT", DefaultMedianRenterIncome, false, 1500},
		{"surrey, bc", DefaultMedianRenterIncome, false, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			got := RentCapForCity(tt.city)
			if got.City != tt.city || got.MedianIncome != tt.median || got.Known != tt.known {
				t.Errorf("RentCapForCity(%q) = %+v", tt.city, got)
			}
			if math.Abs(got.MonthlyCap-tt.expected) > 1e-9 {
				t.Errorf("MonthlyCap = %v, expected %v", got.MonthlyCap, tt.expected)
			}
		})
	}
}

func TestCities(t *testing.T) {
	cities := Cities()
	if len(cities) != 15 {
		t.Fatalf("Cities() returned %d cities, expected 15", len(cities))
	}
	if !slices.IsSorted(cities) {
		t.Errorf("Cities() not sorted: %v", cities)
	}
	if cities[0] != "Brampton, ON" || cities[len(cities)-1] != "Winnipeg, MB" {
		t.Errorf("Cities() bounds = %q .. %q", cities[0], cities[len(cities)-1])
	}
	for _, city := range cities {
		if _, ok := MedianRenterIncome(city); !ok {
			t.Errorf("MedianRenterIncome(%q) not found", city)
		}
	}
}

func TestAffordableUnitsRequired(t *testing.T) {
	tests := []struct {
		name     string
		units    int
		project  ProjectType
		expected []UnitsRequirement
	}{
		{
			name:    "New construction 100 units",
			units:   100,
			project: NewConstruction,
			expected: []UnitsRequirement{
				{Points: 30, Percent: 30, Units: 30},
				{Points: 40, Percent: 40, Units: 40},
				{Points: 50, Percent: 50, Units: 50},
			},
		},
		{
			name:    "New construction rounds up",
			units:   45,
			project: NewConstruction,
			expected: []UnitsRequirement{
				{Points: 30, Percent: 30, Units: 14},
				{Points: 40, Percent: 40, Units: 18},
				{Points: 50, Percent: 50, Units: 23},
			},
		},
		{
			name:    "Existing property",
			units:   45,
			project: ExistingProperty,
			expected: []UnitsRequirement{
				{Points: 30, Percent: 40, Units: 18},
				{Points: 40, Percent: 60, Units: 27},
				{Points: 50, Percent: 80, Units: 36},
			},
		},
		{
			name:    "Negative units need none",
			units:   -5,
			project: ExistingProperty,
			expected: []UnitsRequirement{
				{Points: 30, Percent: 40, Units: 0},
				{Points: 40, Percent: 60, Units: 0},
				{Points: 50, Percent: 80, Units: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AffordableUnitsRequired(tt.units, tt.project)
			if err != nil {
				t.Fatalf("AffordableUnitsRequired() error = %v", err)
			}
			if !slices.Equal(got, tt.expected) {
				t.Errorf("AffordableUnitsRequired(%d, %s) = %+v, expected %+v", tt.units, tt.project, got, tt.expected)
			}
		})
	}
}

func TestAffordableUnitsRequiredMeetsScore(t *testing.T) {
	requirements, err := AffordableUnitsRequired(45, NewConstruction)
	if err != nil {
		t.Fatalf("AffordableUnitsRequired() error = %v", err)
	}
	for _, r := range requirements {
		in := AffordabilityInput{
			IsNewConstruction: true,
			AffordablePercent: AffordablePercentFromUnits(r.Units, 45),
			CommitmentYears:   MinCommitmentYears,
		}
		if got := AffordabilityScore(in); got < r.Points {
			t.Errorf("%d of 45 units scored %d, expected at least %d", r.Units, got, r.Points)
		}
	}
}

func TestAffordableUnitsRequiredUnknownProject(t *testing.T) {
	if _, err := AffordableUnitsRequired(10, ProjectType("condo")); !errors.Is(err, ErrUnknownProjectType) {
		t.Errorf("AffordableUnitsRequired() error = %v, expected ErrUnknownProjectType", err)
	}
}
