package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/iwvelando/mli-select/pkg/mathutil"
	"github.com/iwvelando/mli-select/pkg/mli"
	"github.com/iwvelando/mli-select/pkg/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type unitsDocument struct {
	Points  int     `json:"points" yaml:"points"`
	Percent float64 `json:"percent" yaml:"percent"`
	Units   int     `json:"units" yaml:"units"`
}

type rentCapDocument struct {
	City         string          `json:"city" yaml:"city"`
	MedianIncome float64         `json:"medianIncome" yaml:"medianIncome"`
	KnownCity    bool            `json:"knownCity" yaml:"knownCity"`
	MonthlyCap   float64         `json:"monthlyCap" yaml:"monthlyCap"`
	Units        int             `json:"units" yaml:"units"`
	Required     []unitsDocument `json:"required" yaml:"required"`
}

// WriteRentCap renders the affordable rent threshold for a city and the
// affordable units each affordability band requires.
func WriteRentCap(w io.Writer, outputFormat string, rentCap mli.RentCap, units int, required []mli.UnitsRequirement) error {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		p := message.NewPrinter(language.English)
		source := ""
		if !rentCap.Known {
			source = " (default, city not in table)"
		}
		if _, err := p.Fprintf(w, "Median renter income in %s: $%.2f/yr%s\n", rentCap.City, mathutil.Round(rentCap.MedianIncome), source); err != nil {
			return err
		}
		if _, err := p.Fprintf(w, "Affordable rent cap: $%.2f/month\n", mathutil.Round(rentCap.MonthlyCap)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Points | Share | Units of %d\n", units); err != nil {
			return err
		}
		for _, r := range required {
			if _, err := fmt.Fprintf(w, "%d | %g%% | %d\n", r.Points, r.Percent, r.Units); err != nil {
				return err
			}
		}
		return nil
	case constants.OutputFormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"city", "median income", "monthly cap", "points", "percent", "units"}); err != nil {
			return err
		}
		for _, r := range required {
			record := []string{rentCap.City, money(rentCap.MedianIncome), money(rentCap.MonthlyCap),
				strconv.Itoa(r.Points), strconv.FormatFloat(r.Percent, 'f', -1, 64), strconv.Itoa(r.Units)}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	doc := rentCapDocument{
		City:         rentCap.City,
		MedianIncome: mathutil.Round(rentCap.MedianIncome),
		KnownCity:    rentCap.Known,
		MonthlyCap:   mathutil.Round(rentCap.MonthlyCap),
		Units:        units,
	}
	for _, r := range required {
		doc.Required = append(doc.Required, unitsDocument{Points: r.Points, Percent: r.Percent, Units: r.Units})
	}
	if outputFormat == constants.OutputFormatJSON {
		return encodeJSON(w, doc)
	}
	return encodeYAML(w, doc)
}
