package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bryan-cox/repohours/internal/clipboard"
	"github.com/bryan-cox/repohours/internal/config"
	"github.com/bryan-cox/repohours/internal/ledger"
	"github.com/bryan-cox/repohours/internal/model"
	"github.com/bryan-cox/repohours/internal/output"
	"github.com/bryan-cox/repohours/internal/report"
	"github.com/bryan-cox/repohours/internal/source"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes reported to the shell.
const (
	exitFailure    = 1
	exitUnreadable = 2
	exitUnwritable = 3
)

// --- Cobra Command Definitions ---

var (
	// Used for flags.
	cfgFile   string
	filePath  string
	startDate string
	endDate   string
	copyCSV   bool
	dryRun    bool

	// now is the clock used to name generated reports.
	now = time.Now

	// cfg is loaded before any subcommand runs.
	cfg *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "repohours",
		Short: "A CLI tool to turn a repository work log into a billable hours report.",
		Long: `RepoHours reads a log of timestamped work entries (repo, date, time, task) and
produces a per-day, per-repository report of billed hours and deduplicated tasks.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}

	// generateCmd represents the generate command
	generateCmd = &cobra.Command{
		Use:   "generate [entries.csv]",
		Short: "Write the hours report as a CSV file.",
		Long:  `Groups entries by date and repository, bills each group and writes the rows, most recent date first, to a CSV file named after the current and previous month.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGenerateCommand,
	}

	// summaryCmd represents the summary command
	summaryCmd = &cobra.Command{
		Use:   "summary [entries.csv]",
		Short: "Print the hours report as text.",
		Long:  `Prints the same rows the generate command would write, as a human-readable report on standard output.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSummaryCommand,
	}

	// hoursCmd represents the hours command
	hoursCmd = &cobra.Command{
		Use:   "hours [entries.csv]",
		Short: "Calculate total billed hours.",
		Long:  `Calculates the total billed hours over all groups in the work log. You can specify a single date or a range.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHoursCommand,
	}
)

// Execute runs the root command and exits with a status matching the failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("repohours failed", "error", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, source.ErrUnreadable):
		return exitUnreadable
	case errors.Is(err, output.ErrUnwritable):
		return exitUnwritable
	default:
		return exitFailure
	}
}

func init() {
	// Add persistent flags to the root command (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is $HOME/.config/repohours/config.yaml).")
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "entries.csv", "Path to the CSV or YAML work log file.")
	rootCmd.PersistentFlags().StringVar(&startDate, "start-date", "", "Start date (YYYY-MM-DD).")
	rootCmd.PersistentFlags().StringVar(&endDate, "end-date", "", "End date (YYYY-MM-DD).")
	rootCmd.PersistentFlags().String("log-format", "json", "Log format: json or text.")
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add local flags to the 'generate' command
	generateCmd.Flags().String("output-dir", ".", "Directory to write the report into.")
	generateCmd.Flags().String("author", "", "Prefix for the generated file name.")
	generateCmd.Flags().BoolVar(&copyCSV, "copy", false, "Copy the generated CSV to the clipboard.")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Assemble the report without writing it.")
	_ = viper.BindPFlag("output_dir", generateCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("author", generateCmd.Flags().Lookup("author"))

	// Add subcommands to the root command
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(hoursCmd)
}

// --- Main Application Entry Point ---

func main() {
	// Setup structured JSON logger until the configuration picks a format.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)
	Execute()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	// e.g. REPOHOURS_REPORT_GRANULARITY_MINUTES for report.granularity_minutes
	viper.SetEnvPrefix("REPOHOURS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("could not read config file: %w", err)
		}
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded
	slog.SetDefault(cfg.Logger())
	return nil
}

// --- Command Execution Logic ---

func runGenerateCommand(cmd *cobra.Command, args []string) error {
	rows, err := buildRows(inputPath(args))
	if err != nil {
		return err
	}

	name := report.ArtifactName(cfg.Author, now())
	if dryRun {
		cmd.Printf("Would generate: %s (%d rows)\n", name, len(rows))
		return nil
	}

	sink := output.NewFileSink(cfg.OutputDir)
	path, err := sink.WriteReport(name, rows)
	if err != nil {
		return err
	}
	slog.Info("report written", "path", path, "rows", len(rows))

	if copyCSV {
		var buf bytes.Buffer
		if err := report.EncodeCSV(&buf, rows); err == nil {
			if err := clipboard.CopyText(buf.String()); err != nil {
				slog.Warn("failed to copy report to clipboard", "error", err)
			}
		}
	}

	cmd.Printf("File generated: %s\n", path)
	return nil
}

func runSummaryCommand(cmd *cobra.Command, args []string) error {
	rows, err := buildRows(inputPath(args))
	if err != nil {
		return err
	}

	first, last := dateBounds(rows)
	title := fmt.Sprintf("Time Report (%s to %s)", first, last)
	report.PrintSummary(cmd.OutOrStdout(), title, rows)
	return nil
}

func runHoursCommand(cmd *cobra.Command, args []string) error {
	rows, err := buildRows(inputPath(args))
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data found for the specified date range")
	}

	first, last := dateBounds(rows)
	cmd.Printf("Total hours billed from %s to %s: %.2f\n", first, last, report.TotalHours(rows))
	return nil
}

// --- Helper Functions ---

func inputPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return filePath
}

// buildRows runs the whole pipeline: read, normalize, filter, group, assemble.
func buildRows(path string) ([]model.ReportRow, error) {
	entries, err := source.Load(path)
	if err != nil {
		return nil, err
	}

	normalized := ledger.NormalizeAll(entries)
	events, err := ledger.FilterRange(normalized.Events, startDate, endDate)
	if err != nil {
		return nil, err
	}

	groups := ledger.Group(events)
	rows := report.Assemble(groups, cfg.Policy())
	slog.Info("work log processed",
		"path", path,
		"entries", len(entries),
		"skipped", normalized.Skipped,
		"events", len(events),
		"groups", len(groups))
	return rows, nil
}

// dateBounds returns the oldest and newest dates of rows sorted newest first.
func dateBounds(rows []model.ReportRow) (string, string) {
	if len(rows) == 0 {
		return "-", "-"
	}
	return rows[len(rows)-1].Day.Format(model.DateLayout), rows[0].Day.Format(model.DateLayout)
}
