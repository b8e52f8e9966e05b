// Package output provides utilities for formatting and displaying evaluation results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/mli-select/internal/evaluate"
	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/iwvelando/mli-select/pkg/format"
	"github.com/iwvelando/mli-select/pkg/mathutil"
	"github.com/iwvelando/mli-select/pkg/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

type scoresDocument struct {
	Affordability int `json:"affordability" yaml:"affordability"`
	Energy        int `json:"energy" yaml:"energy"`
	Accessibility int `json:"accessibility" yaml:"accessibility"`
}

type premiumDocument struct {
	BaseRate  float64 `json:"baseRate" yaml:"baseRate"`
	Discount  float64 `json:"discount" yaml:"discount"`
	FinalRate float64 `json:"finalRate" yaml:"finalRate"`
	BaseCost  float64 `json:"baseCost" yaml:"baseCost"`
	FinalCost float64 `json:"finalCost" yaml:"finalCost"`
	Savings   float64 `json:"savings" yaml:"savings"`
}

type evaluationDocument struct {
	Name                 string          `json:"name" yaml:"name"`
	ProjectType          string          `json:"projectType" yaml:"projectType"`
	Scores               scoresDocument  `json:"scores" yaml:"scores"`
	Total                int             `json:"total" yaml:"total"`
	Tier                 string          `json:"tier" yaml:"tier"`
	MaxAmortizationYears int             `json:"maxAmortizationYears" yaml:"maxAmortizationYears"`
	MaxLeverage          float64         `json:"maxLeverage" yaml:"maxLeverage"`
	RequiredDSCR         float64         `json:"requiredDSCR" yaml:"requiredDSCR"`
	MaxLoan              float64         `json:"maxLoan" yaml:"maxLoan"`
	DSCRMaxLoan          float64         `json:"dscrMaxLoan,omitempty" yaml:"dscrMaxLoan,omitempty"`
	QualifiedLoan        float64         `json:"qualifiedLoan" yaml:"qualifiedLoan"`
	Premium              premiumDocument `json:"premium" yaml:"premium"`
	MonthlyPayment       float64         `json:"monthlyPayment" yaml:"monthlyPayment"`
	TotalInterest        float64         `json:"totalInterest" yaml:"totalInterest"`
	Draws                *drawsDocument  `json:"draws,omitempty" yaml:"draws,omitempty"`
	Notes                []string        `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func newEvaluationDocument(e evaluate.Evaluation) evaluationDocument {
	r := e.Result
	doc := evaluationDocument{
		Name:        e.Name,
		ProjectType: string(r.ProjectType),
		Scores: scoresDocument{
			Affordability: r.Scores.Affordability,
			Energy:        r.Scores.Energy,
			Accessibility: r.Scores.Accessibility,
		},
		Total:                r.Total,
		Tier:                 r.Tier.String(),
		MaxAmortizationYears: r.Benefits.MaxAmortizationYears,
		MaxLeverage:          r.Benefits.MaxLeverage,
		RequiredDSCR:         r.Benefits.RequiredDSCR,
		MaxLoan:              mathutil.Round(r.MaxLoan),
		DSCRMaxLoan:          mathutil.Round(r.DSCRMaxLoan),
		QualifiedLoan:        mathutil.Round(r.QualifiedLoan),
		Premium: premiumDocument{
			BaseRate:  r.Premium.BaseRate,
			Discount:  r.Premium.Discount,
			FinalRate: r.Premium.FinalRate,
			BaseCost:  mathutil.Round(r.Premium.BaseCost),
			FinalCost: mathutil.Round(r.Premium.FinalCost),
			Savings:   mathutil.Round(r.Premium.Savings),
		},
		MonthlyPayment: mathutil.Round(r.MonthlyPayment),
		TotalInterest:  mathutil.Round(r.TotalInterest),
		Notes:          e.Notes,
	}
	if e.Draws != nil {
		d := newDrawsDocument(e.Name, *e.Draws)
		doc.Draws = &d
	}
	return doc
}

// WriteEvaluations renders evaluations in the named output format.
func WriteEvaluations(w io.Writer, outputFormat string, results []evaluate.Evaluation) error {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	switch outputFormat {
	case constants.OutputFormatCSV:
		return CsvFormat(w, results)
	case constants.OutputFormatJSON:
		return JSONFormat(w, results)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, results)
	default:
		return PrettyFormat(w, results)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []evaluate.Evaluation) error {
	p := message.NewPrinter(language.English)
	for i, e := range results {
		r := e.Result
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		rows := []string{
			fmt.Sprintf("--- Results for scenario %s ---\n", e.Name),
			fmt.Sprintf("Project type     | %s\n", r.ProjectType),
			fmt.Sprintf("Points           | %d (affordability %d, energy %d, accessibility %d)\n",
				r.Total, r.Scores.Affordability, r.Scores.Energy, r.Scores.Accessibility),
			fmt.Sprintf("Tier             | %s\n", r.Tier),
			fmt.Sprintf("Max amortization | %d years\n", r.Benefits.MaxAmortizationYears),
			fmt.Sprintf("Max leverage     | %s\n", format.Fraction(r.Benefits.MaxLeverage)),
			fmt.Sprintf("Required DSCR    | %s\n", format.Ratio(r.Benefits.RequiredDSCR)),
			p.Sprintf("Max loan         | $%.2f\n", mathutil.Round(r.MaxLoan)),
		}
		if r.DSCRMaxLoan > 0 {
			rows = append(rows, p.Sprintf("DSCR max loan    | $%.2f\n", mathutil.Round(r.DSCRMaxLoan)))
		}
		rows = append(rows,
			p.Sprintf("Qualified loan   | $%.2f\n", mathutil.Round(r.QualifiedLoan)),
			fmt.Sprintf("Premium rate     | %s -> %s (%s discount)\n",
				format.Percent(r.Premium.BaseRate, 2), format.Percent(r.Premium.FinalRate, 3), format.Fraction(r.Premium.Discount)),
			p.Sprintf("Premium savings  | $%.2f\n", mathutil.Round(r.Premium.Savings)),
			p.Sprintf("Monthly payment  | $%.2f\n", mathutil.Round(r.MonthlyPayment)),
			p.Sprintf("Total interest   | $%.2f\n", mathutil.Round(r.TotalInterest)),
		)
		if e.Draws != nil {
			rows = append(rows, p.Sprintf("Draw interest    | $%.2f over %d months\n",
				mathutil.Round(e.Draws.TotalInterest), e.Draws.HorizonMonths))
		}
		if len(e.Notes) > 0 {
			rows = append(rows, fmt.Sprintf("Notes            | %s\n", strings.Join(e.Notes, "; ")))
		}
		for _, row := range rows {
			if _, err := io.WriteString(w, row); err != nil {
				return err
			}
		}
	}
	return nil
}

var csvHeader = []string{
	"scenario", "project type", "affordability", "energy", "accessibility", "total", "tier",
	"max amortization years", "max leverage", "required dscr", "max loan", "dscr max loan",
	"qualified loan", "base premium rate", "final premium rate", "premium savings",
	"monthly payment", "total interest", "draw interest", "notes",
}

// CsvFormat outputs in comma-separated value format, one row per scenario.
func CsvFormat(w io.Writer, results []evaluate.Evaluation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range results {
		r := e.Result
		drawInterest := ""
		if e.Draws != nil {
			drawInterest = money(e.Draws.TotalInterest)
		}
		record := []string{
			e.Name,
			string(r.ProjectType),
			strconv.Itoa(r.Scores.Affordability),
			strconv.Itoa(r.Scores.Energy),
			strconv.Itoa(r.Scores.Accessibility),
			strconv.Itoa(r.Total),
			r.Tier.String(),
			strconv.Itoa(r.Benefits.MaxAmortizationYears),
			strconv.FormatFloat(r.Benefits.MaxLeverage, 'f', -1, 64),
			strconv.FormatFloat(r.Benefits.RequiredDSCR, 'f', -1, 64),
			money(r.MaxLoan),
			money(r.DSCRMaxLoan),
			money(r.QualifiedLoan),
			strconv.FormatFloat(r.Premium.BaseRate, 'f', -1, 64),
			strconv.FormatFloat(r.Premium.FinalRate, 'f', -1, 64),
			money(r.Premium.Savings),
			money(r.MonthlyPayment),
			money(r.TotalInterest),
			drawInterest,
			strings.Join(e.Notes, ","),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONFormat outputs the evaluations as an indented JSON array.
func JSONFormat(w io.Writer, results []evaluate.Evaluation) error {
	docs := make([]evaluationDocument, 0, len(results))
	for _, e := range results {
		docs = append(docs, newEvaluationDocument(e))
	}
	return encodeJSON(w, docs)
}

// YAMLFormat outputs the evaluations as a YAML sequence.
func YAMLFormat(w io.Writer, results []evaluate.Evaluation) error {
	docs := make([]evaluationDocument, 0, len(results))
	for _, e := range results {
		docs = append(docs, newEvaluationDocument(e))
	}
	return encodeYAML(w, docs)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// money renders an amount as plain cents for machine-readable formats.
func money(amount float64) string {
	return strconv.FormatFloat(mathutil.Round(amount), 'f', 2, 64)
}
