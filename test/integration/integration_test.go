package integration

import (
	"bytes"
	"encoding/csv"
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/mli-select/internal/config"
	"github.com/iwvelando/mli-select/internal/evaluate"
	"github.com/iwvelando/mli-select/pkg/loans"
	"github.com/iwvelando/mli-select/pkg/mli"
	"github.com/iwvelando/mli-select/pkg/output"
	"github.com/iwvelando/mli-select/pkg/testutil"
)

const exampleConfig = "../../config.yaml.example"

func loadExample(t *testing.T) []evaluate.Evaluation {
	t.Helper()
	return testutil.LoadAndEvaluate(t, exampleConfig)
}

// TestExampleBaseline checks the example configuration end to end, the same
// way the evaluate command processes it.
func TestExampleBaseline(t *testing.T) {
	results := loadExample(t)

	if len(results) != 2 {
		t.Fatalf("Expected 2 active scenarios, got %d", len(results))
	}
	if testutil.FindEvaluation(results, "Scenario C") != nil {
		t.Errorf("inactive Scenario C was evaluated")
	}

	a := testutil.FindEvaluation(results, "Scenario A")
	if a == nil {
		t.Fatal("Scenario A missing")
	}
	if a.Result.Tier != mli.Tier100 || a.Result.Benefits.MaxAmortizationYears != 40 {
		t.Errorf("Scenario A = %s/%d years, expected Tier100/40", a.Result.Tier, a.Result.Benefits.MaxAmortizationYears)
	}
	if math.Abs(a.Result.Premium.FinalRate-1.925) > 1e-9 {
		t.Errorf("Scenario A premium = %v, expected 1.925", a.Result.Premium.FinalRate)
	}
	if a.Draws == nil || math.Abs(a.Draws.TotalInterest-24650) > 0.01 {
		t.Errorf("Scenario A draws = %+v, expected 24650 total interest", a.Draws)
	}

	b := testutil.FindEvaluation(results, "Scenario B")
	if b == nil {
		t.Fatal("Scenario B missing")
	}
	if b.Result.Tier != mli.Tier50 || b.Result.Total != 55 {
		t.Errorf("Scenario B = %d/%s, expected 55/Tier50", b.Result.Total, b.Result.Tier)
	}
	if b.Result.QualifiedLoan >= b.Result.MaxLoan {
		t.Errorf("Scenario B coverage did not constrain the loan: %+v", b.Result)
	}
}

func TestExampleOutputFormats(t *testing.T) {
	results := loadExample(t)

	for _, f := range []string{"pretty", "csv", "json", "yaml"} {
		t.Run(f, func(t *testing.T) {
			var buf bytes.Buffer
			if err := output.WriteEvaluations(&buf, f, results); err != nil {
				t.Fatalf("WriteEvaluations(%s) error = %v", f, err)
			}
			out := buf.String()
			if !strings.Contains(out, "Scenario A") || !strings.Contains(out, "Scenario B") {
				t.Errorf("%s output missing a scenario:\n%s", f, out)
			}
		})
	}

	var buf bytes.Buffer
	if err := output.WriteEvaluations(&buf, "csv", results); err != nil {
		t.Fatalf("WriteEvaluations(csv) error = %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("CSV output did not parse: %v", err)
	}
	for i, record := range records {
		if len(record) != len(records[0]) {
			t.Errorf("row %d has %d columns, header has %d", i, len(record), len(records[0]))
		}
	}
}

// TestFiftyYearRegression checks that the 50-year comparison row agrees with
// an independently built schedule.
func TestFiftyYearRegression(t *testing.T) {
	terms, err := loans.CompareTerms(4.5, 15000000)
	if err != nil {
		t.Fatalf("CompareTerms() error = %v", err)
	}
	fifty := terms[len(terms)-1]
	if fifty.Years != 50 {
		t.Fatalf("last term = %d years, expected 50", fifty.Years)
	}

	schedule, err := loans.NewSchedule(4.5, 50, 15000000)
	if err != nil {
		t.Fatalf("NewSchedule() error = %v", err)
	}
	if math.Abs(fifty.Payment*600-15000000-fifty.TotalInterest) > 1e-6 {
		t.Errorf("payment x 600 - principal = %.2f, TotalInterest = %.2f", fifty.Payment*600-15000000, fifty.TotalInterest)
	}
	if math.Abs(schedule.TotalInterest()-fifty.TotalInterest) > 1e-6 {
		t.Errorf("schedule interest %.2f differs from comparison %.2f", schedule.TotalInterest(), fifty.TotalInterest)
	}

	sum := 0.0
	var last loans.Period
	for period := range schedule.All() {
		sum += period.Interest
		last = period
	}
	if math.Abs(last.Balance) > 1e-2 {
		t.Errorf("terminal balance = %v, expected within 0.01 of zero", last.Balance)
	}
	if math.Abs(sum-fifty.TotalInterest) > 1 {
		t.Errorf("summed interest %.2f differs from comparison %.2f", sum, fifty.TotalInterest)
	}
}

func TestTierMonotonicAcrossScores(t *testing.T) {
	previous := mli.TierNone
	for points := 0; points <= 100; points++ {
		tier := mli.TierFromPoints(points)
		if tier.Rank() < previous.Rank() {
			t.Fatalf("tier dropped from %s to %s at %d points", previous, tier, points)
		}
		previous = tier
	}
}

func TestManyScenariosDeterministic(t *testing.T) {
	base, err := config.LoadConfiguration(exampleConfig)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	conf := config.Configuration{}
	for i := 0; i < 200; i++ {
		s := base.Scenarios[i%2]
		s.EnergyImprovement = float64(i % 50)
		s.Active = true
		conf.Scenarios = append(conf.Scenarios, s)
	}

	first, err := evaluate.Evaluate(nil, conf)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	second, err := evaluate.Evaluate(nil, conf)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(first) != 200 || len(second) != 200 {
		t.Fatalf("expected 200 evaluations, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Result != second[i].Result {
			t.Fatalf("evaluation %d differs between runs", i)
		}
	}
}
