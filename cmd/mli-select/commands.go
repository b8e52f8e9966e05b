package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mli-select/internal/config"
	"github.com/iwvelando/mli-select/internal/evaluate"
	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/iwvelando/mli-select/pkg/loans"
	"github.com/iwvelando/mli-select/pkg/mli"
	"github.com/iwvelando/mli-select/pkg/output"
	"github.com/iwvelando/mli-select/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resolveOutputFormat applies the CLI override over the configured format.
func resolveOutputFormat(configured, override string) (string, error) {
	outputFormat := configured
	if override != "" {
		outputFormat = override
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return "", err
	}
	return outputFormat, nil
}

// loadAndEvaluate loads the configuration, reports its warnings and
// evaluates every active scenario.
func loadAndEvaluate(g *globalFlags) (*zap.Logger, []evaluate.Evaluation, string, error) {
	conf, err := config.LoadConfiguration(g.configPath)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load configuration at %s: %w", g.configPath, err)
	}

	logger, err := initializeLogger(conf.Logging, g.logLevel)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to initialize logger: %w", err)
	}

	outputFormat, err := resolveOutputFormat(conf.Output.Format, g.outputFormat)
	if err != nil {
		logger.Error(err.Error(),
			zap.String("op", "main.loadAndEvaluate"),
		)
		return logger, nil, "", err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.loadAndEvaluate"),
		)
	}

	results, err := evaluate.Evaluate(logger, *conf)
	if err != nil {
		logger.Error("failed to evaluate scenarios",
			zap.String("op", "main.loadAndEvaluate"),
			zap.Error(err),
		)
		return logger, nil, "", err
	}
	logger.Info("evaluated scenarios",
		zap.String("op", "main.loadAndEvaluate"),
		zap.Int("scenarios", len(results)),
	)

	return logger, results, outputFormat, nil
}

func runEvaluate(out io.Writer, g *globalFlags) error {
	logger, results, outputFormat, err := loadAndEvaluate(g)
	if logger != nil {
		defer func() {
			_ = logger.Sync()
		}()
	}
	if err != nil {
		return err
	}
	return output.WriteEvaluations(out, outputFormat, results)
}

func runDraws(out io.Writer, g *globalFlags) error {
	logger, results, outputFormat, err := loadAndEvaluate(g)
	if logger != nil {
		defer func() {
			_ = logger.Sync()
		}()
	}
	if err != nil {
		return err
	}
	return output.WriteDraws(out, outputFormat, results)
}

func newEvaluateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Score every active scenario and report its tier, loan and premium",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd.OutOrStdout(), g)
		},
	}
}

func newDrawsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "draws",
		Short: "Report construction draw interest for scenarios with a draw schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraws(cmd.OutOrStdout(), g)
		},
	}
}

type scheduleFlags struct {
	rate      float64
	years     int
	principal float64
	every     int
}

func runSchedule(out io.Writer, g *globalFlags, f *scheduleFlags) error {
	outputFormat, err := resolveOutputFormat("", g.outputFormat)
	if err != nil {
		return err
	}
	schedule, err := loans.NewSchedule(f.rate, f.years, f.principal)
	if err != nil {
		return err
	}
	return output.WriteSchedule(out, outputFormat, schedule, f.every)
}

func newScheduleCmd(g *globalFlags) *cobra.Command {
	f := &scheduleFlags{}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the amortization schedule of a level-payment loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd.OutOrStdout(), g, f)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&f.rate, "rate", constants.DefaultInterestRate, "annual interest rate in percent")
	flags.IntVar(&f.years, "years", 40, "amortization in years")
	flags.Float64Var(&f.principal, "principal", 0, "loan principal")
	flags.IntVar(&f.every, "every", constants.MonthsPerYear, "print every nth period (the last is always printed)")
	_ = cmd.MarkFlagRequired("principal")

	return cmd
}

type termsFlags struct {
	rate      float64
	principal float64
	years     []int
}

func runTerms(out io.Writer, g *globalFlags, f *termsFlags) error {
	outputFormat, err := resolveOutputFormat("", g.outputFormat)
	if err != nil {
		return err
	}
	terms, err := loans.CompareTerms(f.rate, f.principal, f.years...)
	if err != nil {
		return err
	}
	return output.WriteTerms(out, outputFormat, terms)
}

func newTermsCmd(g *globalFlags) *cobra.Command {
	f := &termsFlags{}

	cmd := &cobra.Command{
		Use:   "terms",
		Short: "Compare payments and interest across amortization lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerms(cmd.OutOrStdout(), g, f)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&f.rate, "rate", constants.DefaultInterestRate, "annual interest rate in percent")
	flags.Float64Var(&f.principal, "principal", 0, "loan principal")
	flags.IntSliceVar(&f.years, "years", constants.DefaultComparisonTerms, "amortization lengths in years")
	_ = cmd.MarkFlagRequired("principal")

	return cmd
}

type rentCapFlags struct {
	city    string
	units   int
	project string
}

func runRentCap(out io.Writer, g *globalFlags, f *rentCapFlags) error {
	outputFormat, err := resolveOutputFormat("", g.outputFormat)
	if err != nil {
		return err
	}
	project, err := mli.ParseProjectType(f.project)
	if err != nil {
		return err
	}
	required, err := mli.AffordableUnitsRequired(f.units, project)
	if err != nil {
		return err
	}
	return output.WriteRentCap(out, outputFormat, mli.RentCapForCity(f.city), f.units, required)
}

func newRentCapCmd(g *globalFlags) *cobra.Command {
	f := &rentCapFlags{}

	cmd := &cobra.Command{
		Use:   "rent-cap",
		Short: "Show a city's affordable rent cap and the affordable units each band needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRentCap(cmd.OutOrStdout(), g, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.city, "city", "Surrey, BC", "city for the median renter income lookup: "+strings.Join(mli.Cities(), "; "))
	flags.IntVar(&f.units, "units", 100, "total units in the project")
	flags.StringVar(&f.project, "project", string(mli.NewConstruction), "project type: new or existing")

	return cmd
}
