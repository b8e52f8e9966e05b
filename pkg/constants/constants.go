// Package constants provides shared constants for the mli-select application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// BiweeklyPaymentsPerYear is the number of accelerated bi-weekly payments in a year
	BiweeklyPaymentsPerYear = 26

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyPlaces is the number of decimal places kept for currency values
	CurrencyPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// MaxPercentage is the upper bound for any percentage input
	MaxPercentage = 100.0
)

// Calculator defaults
const (
	// DefaultDrawHorizonMonths is the construction period assumed when a draw
	// schedule does not state one
	DefaultDrawHorizonMonths = 12

	// DefaultBasePremiumRate is the baseline mortgage insurance premium (percent of loan)
	DefaultBasePremiumRate = 3.85

	// DefaultInterestRate is the annual rate used when a scenario omits one
	DefaultInterestRate = 4.5

	// RentCapIncomeShare is the share of median income that affordable rent may not exceed
	RentCapIncomeShare = 0.30

	// DefaultStressTestFloor is the minimum qualifying rate for the mortgage stress test
	DefaultStressTestFloor = 5.25

	// StressTestBuffer is added to the contract rate for the mortgage stress test
	StressTestBuffer = 2.0
)

// DefaultComparisonTerms are the amortization lengths compared side by side
// when no terms are requested.
var DefaultComparisonTerms = []int{25, 40, 50}

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
