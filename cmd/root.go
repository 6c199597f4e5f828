package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hrs/internal/config"
	"hrs/internal/report"
	"hrs/internal/timelog"
)

var rootCmd = &cobra.Command{
	Use:   "hrs <file> <date>",
	Short: "Summarise one day of a plain-text time log",
	Long: `hrs reads a free-form time-log text file, picks out the block of lines
belonging to the given date, and prints per-entry durations, per-tag totals
and the day total compared against the expected workday length.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDay,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(outlookCmd)
}

func runDay(cmd *cobra.Command, args []string) error {
	path, date := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", path, err)
	}

	return writeDayReport(os.Stdout, string(data), date, cfg.WorkdayLength())
}

// writeDayReport runs the full pipeline for one day and writes the three
// report sections.
func writeDayReport(w io.Writer, content, date string, workday time.Duration) error {
	block := timelog.FindDayBlock(content, date)
	entries := timelog.ParseDay(block)

	lines, byTag := timelog.Aggregate(entries)
	totals, grand := timelog.Summarize(byTag)

	if err := report.WriteLines(w, lines); err != nil {
		return err
	}
	if err := report.WriteSummary(w, totals); err != nil {
		return err
	}
	return report.WriteTotal(w, grand, workday)
}
