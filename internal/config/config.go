// Package config defines the data structures related to configuration and
// includes functions for loading, defaulting and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/iwvelando/mli-select/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mli-select.
type Configuration struct {
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
	Defaults  Defaults      `yaml:"defaults,omitempty"`
	Scenarios []Scenario    `yaml:"scenarios"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, yaml
}

// Defaults fill scenario fields left at zero.
type Defaults struct {
	InterestRate      float64 `yaml:"interestRate,omitempty"`
	BasePremiumRate   float64 `yaml:"basePremiumRate,omitempty"`
	DrawHorizonMonths int     `yaml:"drawHorizonMonths,omitempty"`
}

// Scenario holds the inputs for one MLI Select project.
type Scenario struct {
	Name        string
	Active      bool
	ProjectType string // new, existing

	// Affordability. AffordablePercent wins over the unit counts when set.
	Units             int
	AffordableUnits   int
	AffordablePercent float64
	CommitmentYears   int

	EnergyImprovement float64

	VisitableAll           bool
	CommonsBarrierFree     bool
	AccessiblePercent      float64
	UniversalDesignPercent float64
	RHFScore               float64

	ValueOrCost        float64
	BasePremiumRate    float64
	InterestRate       *float64 // nil takes defaults.interestRate; 0 is interest-free
	NetOperatingIncome float64

	Construction *Construction
}

// Construction is an optional progressive-draw construction loan. An absent
// InterestRate inherits the scenario rate.
type Construction struct {
	TotalLoan     float64
	InterestRate  *float64
	HorizonMonths int
	Draws         []Draw
}

// Draw is one scheduled disbursement as a percentage of the construction loan.
type Draw struct {
	Month       int
	Percentage  float64
	Description string
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	v.SetDefault("defaults.interestRate", constants.DefaultInterestRate)
	v.SetDefault("defaults.basePremiumRate", constants.DefaultBasePremiumRate)
	v.SetDefault("defaults.drawHorizonMonths", constants.DefaultDrawHorizonMonths)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	configuration.ApplyDefaults()

	return &configuration, nil
}

// ApplyDefaults copies the configured defaults into every scenario field
// left unset.
func (conf *Configuration) ApplyDefaults() {
	for i := range conf.Scenarios {
		s := &conf.Scenarios[i]
		if s.InterestRate == nil {
			rate := conf.Defaults.InterestRate
			s.InterestRate = &rate
		}
		if s.BasePremiumRate == 0 {
			s.BasePremiumRate = conf.Defaults.BasePremiumRate
		}
		if s.Construction == nil {
			continue
		}
		if s.Construction.HorizonMonths == 0 {
			s.Construction.HorizonMonths = conf.Defaults.DrawHorizonMonths
		}
		if s.Construction.InterestRate == nil {
			rate := *s.InterestRate
			s.Construction.InterestRate = &rate
		}
	}
}

// Rate returns the scenario interest rate, or 0 when none is set.
func (s *Scenario) Rate() float64 {
	return rateOf(s.InterestRate)
}

// Rate returns the construction loan interest rate, or 0 when none is set.
func (c *Construction) Rate() float64 {
	return rateOf(c.InterestRate)
}

func rateOf(rate *float64) float64 {
	if rate == nil {
		return 0
	}
	return *rate
}

// ActiveScenarios returns the scenarios marked active, in file order.
func (conf *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, s := range conf.Scenarios {
		if s.Active {
			active = append(active, s)
		}
	}
	return active
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	var scenarios []validation.ScenarioConfig
	for _, s := range conf.Scenarios {
		sc := validation.ScenarioConfig{
			Name:            s.Name,
			Active:          s.Active,
			ProjectType:     s.ProjectType,
			Units:           s.Units,
			AffordableUnits: s.AffordableUnits,
			CommitmentYears: s.CommitmentYears,
			Percentages: []validation.Field{
				{Name: "affordablePercent", Value: s.AffordablePercent},
				{Name: "energyImprovement", Value: s.EnergyImprovement},
				{Name: "accessiblePercent", Value: s.AccessiblePercent},
				{Name: "universalDesignPercent", Value: s.UniversalDesignPercent},
				{Name: "rhfScore", Value: s.RHFScore},
			},
		}
		if s.Construction != nil {
			for _, d := range s.Construction.Draws {
				sc.DrawMonths = append(sc.DrawMonths, d.Month)
				sc.DrawPercentages = append(sc.DrawPercentages, d.Percentage)
			}
		}
		scenarios = append(scenarios, sc)
	}

	validator := validation.ConfigValidator{Scenarios: scenarios}
	return validator.ValidateAll()
}
