package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/mli-select/pkg/constants"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func rate(percent float64) *float64 {
	return &percent
}

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Example config file",
			configPath: filepath.Join("..", "..", constants.ExampleConfigFile),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationExample(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join("..", "..", constants.ExampleConfigFile))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if len(conf.Scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(conf.Scenarios))
	}
	if got := len(conf.ActiveScenarios()); got != 2 {
		t.Errorf("expected 2 active scenarios, got %d", got)
	}

	a := conf.Scenarios[0]
	if a.Name != "Scenario A" || a.ProjectType != "new" || a.RHFScore != 80 {
		t.Errorf("Scenario A decoded as %+v", a)
	}
	if a.Rate() != 4.5 || a.BasePremiumRate != 3.85 {
		t.Errorf("Scenario A defaults not applied: rate %v, premium %v", a.Rate(), a.BasePremiumRate)
	}
	if a.Construction == nil || len(a.Construction.Draws) != 6 {
		t.Fatalf("Scenario A construction decoded as %+v", a.Construction)
	}
	if a.Construction.Draws[1].Description != "Framing" || a.Construction.Draws[1].Month != 3 {
		t.Errorf("second draw decoded as %+v", a.Construction.Draws[1])
	}

	b := conf.Scenarios[1]
	if b.Rate() != 5 || b.NetOperatingIncome != 500000 {
		t.Errorf("Scenario B decoded as %+v", b)
	}
	if b.Construction != nil {
		t.Errorf("Scenario B should have no construction loan")
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("example config produced warnings: %v", warnings)
	}
}

func TestLoadConfigurationBuiltInDefaults(t *testing.T) {
	path := writeConfig(t, `
scenarios:
  - name: Bare
    active: true
    projectType: existing
    construction:
      totalLoan: 100000
      draws:
        - {month: 1, percentage: 100}
`)
	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	s := conf.Scenarios[0]
	if s.Rate() != constants.DefaultInterestRate {
		t.Errorf("InterestRate = %v, expected %v", s.Rate(), constants.DefaultInterestRate)
	}
	if s.BasePremiumRate != constants.DefaultBasePremiumRate {
		t.Errorf("BasePremiumRate = %v, expected %v", s.BasePremiumRate, constants.DefaultBasePremiumRate)
	}
	if s.Construction.HorizonMonths != constants.DefaultDrawHorizonMonths {
		t.Errorf("HorizonMonths = %d, expected %d", s.Construction.HorizonMonths, constants.DefaultDrawHorizonMonths)
	}
	if s.Construction.Rate() != s.Rate() {
		t.Errorf("construction rate %v did not inherit scenario rate %v", s.Construction.Rate(), s.Rate())
	}
}

func TestLoadConfigurationExplicitZeroRate(t *testing.T) {
	path := writeConfig(t, `
defaults:
  interestRate: 4.5
scenarios:
  - name: Interest free
    active: true
    projectType: existing
    interestRate: 0
    construction:
      totalLoan: 100000
      draws:
        - {month: 1, percentage: 100}
  - name: Interest free construction
    active: true
    projectType: existing
    construction:
      totalLoan: 100000
      interestRate: 0
      draws:
        - {month: 1, percentage: 100}
`)
	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	free := conf.Scenarios[0]
	if free.InterestRate == nil || free.Rate() != 0 {
		t.Errorf("explicit zero rate replaced by %v", free.Rate())
	}
	if free.Construction.Rate() != 0 {
		t.Errorf("construction rate = %v, expected inherited 0", free.Construction.Rate())
	}

	construction := conf.Scenarios[1]
	if construction.Rate() != 4.5 {
		t.Errorf("scenario rate = %v, expected default 4.5", construction.Rate())
	}
	if construction.Construction.InterestRate == nil || construction.Construction.Rate() != 0 {
		t.Errorf("explicit zero construction rate replaced by %v", construction.Construction.Rate())
	}
}

func TestLoadConfigurationMalformed(t *testing.T) {
	path := writeConfig(t, "scenarios: [unclosed\n")
	_, err := LoadConfiguration(path)
	if err == nil {
		t.Fatal("LoadConfiguration() expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "error reading config file") {
		t.Errorf("error = %v, expected it to mention reading the config file", err)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	conf := &Configuration{
		Defaults: Defaults{InterestRate: 4.5, BasePremiumRate: 3.85, DrawHorizonMonths: 12},
		Scenarios: []Scenario{
			{Name: "Explicit", InterestRate: rate(6), BasePremiumRate: 2, Construction: &Construction{InterestRate: rate(8), HorizonMonths: 18}},
		},
	}
	conf.ApplyDefaults()

	s := conf.Scenarios[0]
	if s.Rate() != 6 || s.BasePremiumRate != 2 {
		t.Errorf("explicit rates overwritten: %+v", s)
	}
	if s.Construction.Rate() != 8 || s.Construction.HorizonMonths != 18 {
		t.Errorf("explicit construction values overwritten: %+v", s.Construction)
	}
}

func TestValidateConfiguration(t *testing.T) {
	conf := &Configuration{
		Scenarios: []Scenario{
			{
				Name:              "Out of range",
				Active:            true,
				ProjectType:       "new",
				EnergyImprovement: 130,
				Construction: &Construction{
					Draws: []Draw{{Month: 1, Percentage: 40}, {Month: 2, Percentage: 40}},
				},
			},
			{Name: "Inactive", Active: false, ProjectType: "nonsense"},
		},
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 2 {
		t.Fatalf("ValidateConfiguration() returned %v, expected 2 warnings", warnings)
	}
	if !strings.Contains(warnings[0], "energyImprovement") {
		t.Errorf("first warning = %q, expected energyImprovement", warnings[0])
	}
	if !strings.Contains(warnings[1], "80.00%") {
		t.Errorf("second warning = %q, expected the draw total", warnings[1])
	}
}
