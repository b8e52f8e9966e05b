// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/mli-select/internal/config"
	"github.com/iwvelando/mli-select/internal/evaluate"
	"go.uber.org/zap/zaptest"
)

// FindEvaluation returns the first evaluation for the named scenario, or nil.
func FindEvaluation(results []evaluate.Evaluation, name string) *evaluate.Evaluation {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// Rate returns a pointer to an interest rate for config literals.
func Rate(percent float64) *float64 {
	return &percent
}

// LoadAndEvaluate loads the config at path and evaluates its active
// scenarios, logging through the test.
func LoadAndEvaluate(t testing.TB, path string) []evaluate.Evaluation {
	t.Helper()
	conf, err := config.LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration(%q) error = %v", path, err)
	}
	results, err := evaluate.Evaluate(zaptest.NewLogger(t), *conf)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	return results
}
