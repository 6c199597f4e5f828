package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"hrs/internal/report"
	"hrs/internal/timelog"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <file> <date>",
	Short: "Export one day's parsed entries to stdout",
	Args:  cobra.ExactArgs(2),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json")
}

func runExport(cmd *cobra.Command, args []string) error {
	path, date := args[0], args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", path, err)
	}

	entries := timelog.ParseDay(timelog.FindDayBlock(string(data), date))

	switch exportFormat {
	case "json":
		return writeJSON(os.Stdout, entries)
	case "csv":
		return writeCSV(os.Stdout, entries)
	default:
		return fmt.Errorf("unknown export format %q", exportFormat)
	}
}

// exportRow is the flat shape shared by both output formats.
type exportRow struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	Tag             string `json:"tag"`
	DurationMinutes int64  `json:"duration_minutes"`
	Line            string `json:"line"`
}

func exportRows(entries []timelog.Entry) []exportRow {
	rows := make([]exportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, exportRow{
			Start:           report.Span(e.Start),
			End:             report.Span(e.End),
			Tag:             e.Tag,
			DurationMinutes: int64(e.Span().Minutes()),
			Line:            e.Line,
		})
	}
	return rows
}

func writeJSON(w io.Writer, entries []timelog.Entry) error {
	data, err := json.MarshalIndent(exportRows(entries), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeCSV(w io.Writer, entries []timelog.Entry) error {
	if _, err := fmt.Fprintln(w, "start,end,tag,duration_minutes,line"); err != nil {
		return err
	}
	for _, r := range exportRows(entries) {
		_, err := fmt.Fprintf(w, "%s,%s,%s,%d,%s\n",
			r.Start, r.End, csvEscape(r.Tag), r.DurationMinutes, csvEscape(r.Line))
		if err != nil {
			return err
		}
	}
	return nil
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
