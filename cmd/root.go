package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jkeogh/t212cgt/app"
	"github.com/jkeogh/t212cgt/app/outfmt"
	"github.com/jkeogh/t212cgt/config"
	"github.com/jkeogh/t212cgt/date"
	"github.com/jkeogh/t212cgt/log"
	"github.com/jkeogh/t212cgt/util"
)

var (
	YearOpt      int
	StartDateOpt string
	EndDateOpt   string
	CsvFileOpt   string
	CurrencyOpt  string
	TaxRateOpt   string
	ConfigOpt    string
	TableOutput  bool
	CsvOutDir    string
)

// resolveWindow validates the window selection: exactly one of --year or
// a full --start/--end pair must be given.
func resolveWindow() (date.Range, error) {
	var startOpt, endOpt util.Optional[date.Date]
	if StartDateOpt != "" {
		d, err := date.Parse(date.DefaultFormat, StartDateOpt)
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid --start: %w", err)
		}
		startOpt.Set(d)
	}
	if EndDateOpt != "" {
		d, err := date.Parse(date.DefaultFormat, EndDateOpt)
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid --end: %w", err)
		}
		endOpt.Set(d)
	}

	yearGiven := YearOpt != 0
	rangeGiven := startOpt.Present() || endOpt.Present()
	if yearGiven == rangeGiven {
		return date.Range{}, fmt.Errorf(
			"exactly one of --year or --start/--end must be provided")
	}
	if yearGiven {
		return date.YearRange(YearOpt), nil
	}
	if !startOpt.Present() || !endOpt.Present() {
		return date.Range{}, fmt.Errorf("--start and --end must be provided together")
	}
	return date.NewRange(startOpt.MustGet(), endOpt.MustGet())
}

func runRootCmd(cmd *cobra.Command, args []string) error {
	window, err := resolveWindow()
	if err != nil {
		return err
	}
	cfg, err := config.Load(config.Overrides{
		Currency: CurrencyOpt,
		TaxRate:  TaxRateOpt,
		File:     ConfigOpt,
	})
	if err != nil {
		return err
	}

	var writer outfmt.ReportWriter = outfmt.NewTextWriter(os.Stdout)
	if TableOutput {
		writer = outfmt.NewTableWriter(os.Stdout)
	} else if CsvOutDir != "" {
		writer, err = outfmt.NewCSVWriter(CsvOutDir)
		if err != nil {
			return err
		}
	}

	fp, err := os.Open(CsvFileOpt)
	if err != nil {
		return err
	}
	defer fp.Close()

	// Past this point errors are computation failures, not usage errors.
	cmd.SilenceUsage = true
	errPrinter := &log.StderrErrorPrinter{}
	readers := []app.DescribedReader{{Desc: CsvFileOpt, Reader: fp}}
	if err := app.RunCgtApp(readers, cfg, window, writer, errPrinter); err != nil {
		os.Exit(1)
	}
	return nil
}

func cmdName() string {
	return filepath.Base(os.Args[0])
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   cmdName(),
	Short: "Capital gains tax (CGT) calculator for T212 exports",
	Long: `A cli tool which computes capital-gains-tax liability from a
Trading212-style CSV transaction export.

Shares sold are matched against the oldest still-unmatched purchases
(first in, first out), carrying forward unmatched purchase quantity from
periods before the reporting window. Prices in a foreign currency are
converted with the export's own exchange rate column.`,
	RunE:          runRootCmd,
	SilenceErrors: true,
	Version:       "0.1.0",
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&log.VerboseEnabled, "verbose", "v", false,
		"Print verbose output")
	RootCmd.Flags().IntVar(&YearOpt, "year", 0,
		"Calendar year to compute CGT for (mutually exclusive with --start/--end)")
	RootCmd.Flags().StringVar(&StartDateOpt, "start", "",
		"Reporting window start date (YYYY-MM-DD, inclusive)")
	RootCmd.Flags().StringVar(&EndDateOpt, "end", "",
		"Reporting window end date (YYYY-MM-DD, inclusive)")
	RootCmd.Flags().StringVar(&CsvFileOpt, "csv", "",
		"Path to CSV file containing buy/sell information")
	RootCmd.Flags().StringVar(&CurrencyOpt, "currency", "",
		"Reporting currency (defaults to "+config.CurrencyEnvVar+" env var or "+
			config.DefaultCurrency+")")
	RootCmd.Flags().StringVar(&TaxRateOpt, "rate", "",
		"CGT tax rate (defaults to "+config.TaxRateEnvVar+" env var or "+
			config.DefaultTaxRate+")")
	RootCmd.Flags().StringVar(&ConfigOpt, "config", "",
		"Optional YAML config file providing currency/rate defaults")
	RootCmd.Flags().BoolVar(&TableOutput, "table", false,
		"Render the report as an aligned table")
	RootCmd.Flags().StringVar(&CsvOutDir, "csv-out", "",
		"Write the report as gains.csv into this directory")
	cobra.CheckErr(RootCmd.MarkFlagRequired("csv"))
}
