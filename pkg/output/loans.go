package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/mli-select/internal/evaluate"
	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/iwvelando/mli-select/pkg/loans"
	"github.com/iwvelando/mli-select/pkg/mathutil"
	"github.com/iwvelando/mli-select/pkg/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type periodDocument struct {
	Number    int     `json:"number" yaml:"number"`
	Interest  float64 `json:"interest" yaml:"interest"`
	Principal float64 `json:"principal" yaml:"principal"`
	Balance   float64 `json:"balance" yaml:"balance"`
}

type scheduleDocument struct {
	Principal     float64          `json:"principal" yaml:"principal"`
	Payment       float64          `json:"payment" yaml:"payment"`
	Periods       int              `json:"periods" yaml:"periods"`
	TotalInterest float64          `json:"totalInterest" yaml:"totalInterest"`
	Schedule      []periodDocument `json:"schedule" yaml:"schedule"`
}

type termDocument struct {
	Years         int     `json:"years" yaml:"years"`
	Payment       float64 `json:"payment" yaml:"payment"`
	TotalInterest float64 `json:"totalInterest" yaml:"totalInterest"`
	TotalPaid     float64 `json:"totalPaid" yaml:"totalPaid"`
}

type intervalDocument struct {
	Month             int     `json:"month" yaml:"month"`
	Drawn             float64 `json:"drawn" yaml:"drawn"`
	CumulativeBalance float64 `json:"cumulativeBalance" yaml:"cumulativeBalance"`
	Months            int     `json:"months" yaml:"months"`
	Interest          float64 `json:"interest" yaml:"interest"`
}

type drawsDocument struct {
	Scenario               string             `json:"scenario,omitempty" yaml:"scenario,omitempty"`
	HorizonMonths          int                `json:"horizonMonths" yaml:"horizonMonths"`
	TotalInterest          float64            `json:"totalInterest" yaml:"totalInterest"`
	FinalBalance           float64            `json:"finalBalance" yaml:"finalBalance"`
	AverageMonthlyInterest float64            `json:"averageMonthlyInterest" yaml:"averageMonthlyInterest"`
	Intervals              []intervalDocument `json:"intervals" yaml:"intervals"`
}

func newDrawsDocument(name string, d loans.DrawResult) drawsDocument {
	doc := drawsDocument{
		Scenario:               name,
		HorizonMonths:          d.HorizonMonths,
		TotalInterest:          mathutil.Round(d.TotalInterest),
		FinalBalance:           mathutil.Round(d.FinalBalance),
		AverageMonthlyInterest: mathutil.Round(d.AverageMonthlyInterest),
		Intervals:              make([]intervalDocument, 0, len(d.Intervals)),
	}
	for _, in := range d.Intervals {
		doc.Intervals = append(doc.Intervals, intervalDocument{
			Month:             in.Month,
			Drawn:             mathutil.Round(in.Drawn),
			CumulativeBalance: mathutil.Round(in.CumulativeBalance),
			Months:            in.Months,
			Interest:          mathutil.Round(in.Interest),
		})
	}
	return doc
}

// includePeriod reports whether a period is shown when printing every nth
// period; the final period is always shown.
func includePeriod(number, total, every int) bool {
	return every <= 1 || number%every == 0 || number == total
}

// WriteSchedule renders an amortization schedule, keeping every nth period.
func WriteSchedule(w io.Writer, outputFormat string, s *loans.Schedule, every int) error {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		p := message.NewPrinter(language.English)
		if _, err := p.Fprintf(w, "Principal $%.2f | Payment $%.2f | Periods %d | Total interest $%.2f\n",
			mathutil.Round(s.Principal()), mathutil.Round(s.Payment()), s.Periods(), mathutil.Round(s.TotalInterest())); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Period | Interest | Principal | Balance\n"); err != nil {
			return err
		}
		for period := range s.All() {
			if !includePeriod(period.Number, s.Periods(), every) {
				continue
			}
			if _, err := p.Fprintf(w, "%d | $%.2f | $%.2f | $%.2f\n", period.Number,
				mathutil.Round(period.Interest), mathutil.Round(period.Principal), mathutil.Round(period.Balance)); err != nil {
				return err
			}
		}
		return nil
	case constants.OutputFormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"period", "interest", "principal", "balance"}); err != nil {
			return err
		}
		for period := range s.All() {
			if !includePeriod(period.Number, s.Periods(), every) {
				continue
			}
			if err := cw.Write([]string{strconv.Itoa(period.Number), money(period.Interest), money(period.Principal), money(period.Balance)}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	doc := scheduleDocument{
		Principal:     mathutil.Round(s.Principal()),
		Payment:       mathutil.Round(s.Payment()),
		Periods:       s.Periods(),
		TotalInterest: mathutil.Round(s.TotalInterest()),
	}
	for period := range s.All() {
		if !includePeriod(period.Number, s.Periods(), every) {
			continue
		}
		doc.Schedule = append(doc.Schedule, periodDocument{
			Number:    period.Number,
			Interest:  mathutil.Round(period.Interest),
			Principal: mathutil.Round(period.Principal),
			Balance:   mathutil.Round(period.Balance),
		})
	}
	if outputFormat == constants.OutputFormatJSON {
		return encodeJSON(w, doc)
	}
	return encodeYAML(w, doc)
}

// WriteTerms renders a term comparison.
func WriteTerms(w io.Writer, outputFormat string, terms []loans.TermSummary) error {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		p := message.NewPrinter(language.English)
		if _, err := fmt.Fprintf(w, "Years | Monthly payment | Total interest | Total paid\n"); err != nil {
			return err
		}
		for _, term := range terms {
			if _, err := p.Fprintf(w, "%d | $%.2f | $%.2f | $%.2f\n", term.Years,
				mathutil.Round(term.Payment), mathutil.Round(term.TotalInterest), mathutil.Round(term.TotalPaid)); err != nil {
				return err
			}
		}
		return nil
	case constants.OutputFormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"years", "payment", "total interest", "total paid"}); err != nil {
			return err
		}
		for _, term := range terms {
			if err := cw.Write([]string{strconv.Itoa(term.Years), money(term.Payment), money(term.TotalInterest), money(term.TotalPaid)}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	docs := make([]termDocument, 0, len(terms))
	for _, term := range terms {
		docs = append(docs, termDocument{
			Years:         term.Years,
			Payment:       mathutil.Round(term.Payment),
			TotalInterest: mathutil.Round(term.TotalInterest),
			TotalPaid:     mathutil.Round(term.TotalPaid),
		})
	}
	if outputFormat == constants.OutputFormatJSON {
		return encodeJSON(w, docs)
	}
	return encodeYAML(w, docs)
}

// WriteDraws renders the construction draw interest of every evaluation
// that carries a draw schedule.
func WriteDraws(w io.Writer, outputFormat string, results []evaluate.Evaluation) error {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	var withDraws []evaluate.Evaluation
	for _, e := range results {
		if e.Draws != nil {
			withDraws = append(withDraws, e)
		}
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		p := message.NewPrinter(language.English)
		for i, e := range withDraws {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "--- Construction draws for scenario %s ---\n", e.Name); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "Month | Drawn | Balance | Months | Interest\n"); err != nil {
				return err
			}
			for _, in := range e.Draws.Intervals {
				if _, err := p.Fprintf(w, "%d | $%.2f | $%.2f | %d | $%.2f\n", in.Month,
					mathutil.Round(in.Drawn), mathutil.Round(in.CumulativeBalance), in.Months, mathutil.Round(in.Interest)); err != nil {
					return err
				}
			}
			if _, err := p.Fprintf(w, "Total interest $%.2f over %d months (average $%.2f per month)\n",
				mathutil.Round(e.Draws.TotalInterest), e.Draws.HorizonMonths, mathutil.Round(e.Draws.AverageMonthlyInterest)); err != nil {
				return err
			}
		}
		return nil
	case constants.OutputFormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"scenario", "month", "drawn", "balance", "months", "interest"}); err != nil {
			return err
		}
		for _, e := range withDraws {
			for _, in := range e.Draws.Intervals {
				record := []string{e.Name, strconv.Itoa(in.Month), money(in.Drawn), money(in.CumulativeBalance),
					strconv.Itoa(in.Months), money(in.Interest)}
				if err := cw.Write(record); err != nil {
					return err
				}
			}
		}
		cw.Flush()
		return cw.Error()
	}

	docs := make([]drawsDocument, 0, len(withDraws))
	for _, e := range withDraws {
		docs = append(docs, newDrawsDocument(e.Name, *e.Draws))
	}
	if outputFormat == constants.OutputFormatJSON {
		return encodeJSON(w, docs)
	}
	return encodeYAML(w, docs)
}
