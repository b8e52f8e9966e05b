package evaluate

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/mli-select/internal/config"
	"github.com/iwvelando/mli-select/pkg/loans"
	"github.com/iwvelando/mli-select/pkg/mli"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func rate(percent float64) *float64 {
	return &percent
}

func testConfiguration() config.Configuration {
	return config.Configuration{
		Scenarios: []config.Scenario{
			{
				Name:                   "Scenario A",
				Active:                 true,
				ProjectType:            "new",
				Units:                  100,
				AffordableUnits:        50,
				CommitmentYears:        10,
				EnergyImprovement:      40,
				VisitableAll:           true,
				CommonsBarrierFree:     true,
				AccessiblePercent:      15,
				UniversalDesignPercent: 85,
				RHFScore:               80,
				ValueOrCost:            15000000,
				BasePremiumRate:        3.85,
				InterestRate:           rate(4.5),
				Construction: &config.Construction{
					TotalLoan:     600000,
					InterestRate:  rate(7.25),
					HorizonMonths: 12,
					Draws: []config.Draw{
						{Month: 1, Percentage: 15, Description: "Foundation"},
						{Month: 3, Percentage: 25, Description: "Framing"},
						{Month: 5, Percentage: 20, Description: "Mechanical"},
						{Month: 7, Percentage: 20, Description: "Interior"},
						{Month: 9, Percentage: 15, Description: "Finishing"},
						{Month: 11, Percentage: 5, Description: "Holdback"},
					},
				},
			},
			{
				Name:               "Scenario B",
				Active:             true,
				ProjectType:        "existing",
				Units:              40,
				AffordableUnits:    16,
				CommitmentYears:    10,
				EnergyImprovement:  15,
				VisitableAll:       true,
				CommonsBarrierFree: true,
				ValueOrCost:        10000000,
				BasePremiumRate:    3.85,
				InterestRate:       rate(5),
				NetOperatingIncome: 500000,
			},
			{
				Name:        "Scenario C",
				Active:      false,
				ProjectType: "not checked while inactive",
			},
		},
	}
}

func TestEvaluate(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	evaluations, err := Evaluate(logger, testConfiguration())
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(evaluations) != 2 {
		t.Fatalf("Evaluate() returned %d evaluations, expected 2", len(evaluations))
	}

	a := evaluations[0]
	if a.Name != "Scenario A" || a.Result.Tier != mli.Tier100 {
		t.Errorf("Scenario A = %s/%s, expected Tier100", a.Name, a.Result.Tier)
	}
	if len(a.Notes) != 0 {
		t.Errorf("Scenario A notes = %v, expected none", a.Notes)
	}
	if a.Draws == nil {
		t.Fatal("Scenario A has no draw result")
	}
	if math.Abs(a.Draws.TotalInterest-24650) > 0.01 {
		t.Errorf("Scenario A draw interest = %.2f, expected 24650.00", a.Draws.TotalInterest)
	}

	b := evaluations[1]
	if b.Result.Tier != mli.Tier50 || b.Result.Total != 55 {
		t.Errorf("Scenario B = %d/%s, expected 55/Tier50", b.Result.Total, b.Result.Tier)
	}
	if b.Draws != nil {
		t.Errorf("Scenario B has a draw result without a construction loan")
	}
	if len(b.Notes) != 2 {
		t.Fatalf("Scenario B notes = %v, expected 2", b.Notes)
	}
	if b.Notes[0] != "15 points short of Tier70" {
		t.Errorf("Scenario B first note = %q", b.Notes[0])
	}
	if !strings.Contains(b.Notes[1], "debt coverage limits the loan") {
		t.Errorf("Scenario B second note = %q", b.Notes[1])
	}
}

func TestEvaluateNilLogger(t *testing.T) {
	if _, err := Evaluate(nil, testConfiguration()); err != nil {
		t.Errorf("Evaluate() with nil logger error = %v", err)
	}
}

func TestEvaluateLogsSkippedScenarios(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	if _, err := Evaluate(zap.New(core), testConfiguration()); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	skipped := logs.FilterMessage("skipping 1 inactive scenarios").All()
	if len(skipped) != 1 {
		t.Fatalf("expected one skip entry, got %d", len(skipped))
	}
	if op := skipped[0].ContextMap()["op"]; op != "evaluate.Evaluate" {
		t.Errorf("skip entry op = %v, expected evaluate.Evaluate", op)
	}
}

func TestScenarioZeroRate(t *testing.T) {
	s := testConfiguration().Scenarios[1]
	s.InterestRate = rate(0)

	evaluation, err := Scenario(nil, s)
	if err != nil {
		t.Fatalf("Scenario() error = %v", err)
	}
	r := evaluation.Result
	months := float64(r.Benefits.MaxAmortizationYears * 12)
	if math.Abs(r.MonthlyPayment-r.QualifiedLoan/months) > 1e-6 {
		t.Errorf("MonthlyPayment = %v, expected %v", r.MonthlyPayment, r.QualifiedLoan/months)
	}
	if math.Abs(r.TotalInterest) > 1e-3 {
		t.Errorf("TotalInterest = %v, expected 0", r.TotalInterest)
	}
}

func TestEvaluateErrors(t *testing.T) {
	conf := testConfiguration()
	conf.Scenarios[1].ProjectType = "condo"
	evaluations, err := Evaluate(nil, conf)
	if !errors.Is(err, mli.ErrUnknownProjectType) {
		t.Errorf("Evaluate() error = %v, expected ErrUnknownProjectType", err)
	}
	if len(evaluations) != 1 {
		t.Errorf("Evaluate() returned %d evaluations before the failure, expected 1", len(evaluations))
	}

	conf = testConfiguration()
	conf.Scenarios[0].Construction.Draws[0].Month = 0
	if _, err := Evaluate(nil, conf); !errors.Is(err, loans.ErrInvalidInput) {
		t.Errorf("Evaluate() with month 0 draw error = %v, expected ErrInvalidInput", err)
	}
}

func TestScenarioNotes(t *testing.T) {
	s := testConfiguration().Scenarios[0]
	s.CommitmentYears = 5
	s.Construction.Draws = s.Construction.Draws[:2]

	evaluation, err := Scenario(nil, s)
	if err != nil {
		t.Fatalf("Scenario() error = %v", err)
	}
	// 0 affordability + 25 energy + 25 accessibility.
	expected := []string{
		"20 points short of Tier70",
		"no affordability points; commitments under 10 years do not score",
		"draw schedule disburses 40.00% of the construction loan",
	}
	if len(evaluation.Notes) != len(expected) {
		t.Fatalf("notes = %v, expected %v", evaluation.Notes, expected)
	}
	for i, want := range expected {
		if evaluation.Notes[i] != want {
			t.Errorf("note %d = %q, expected %q", i, evaluation.Notes[i], want)
		}
	}
}

func TestDraws(t *testing.T) {
	c := &config.Construction{
		TotalLoan:     100000,
		InterestRate:  rate(12),
		HorizonMonths: 2,
		Draws:         []config.Draw{{Month: 1, Percentage: 100}},
	}
	result, total, err := Draws(nil, "Single", c)
	if err != nil {
		t.Fatalf("Draws() error = %v", err)
	}
	if total != 100 {
		t.Errorf("total percent = %v, expected 100", total)
	}
	if math.Abs(result.TotalInterest-1000) > 1e-6 {
		t.Errorf("TotalInterest = %.2f, expected 1000.00", result.TotalInterest)
	}
}
