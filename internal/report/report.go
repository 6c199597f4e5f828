// Package report renders parsed day data as colored text sections.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"hrs/internal/timelog"
)

// separator opens each report section.
const separator = "----"

// Styles for the three report sections and the signed diff.
var (
	LineStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	TagStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	TotalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	GainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	LossStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Span formats a duration as zero-padded HH:MM, magnitude only. Hours grow
// past two digits unclipped.
func Span(d time.Duration) string {
	m := int(d / time.Minute)
	if m < 0 {
		m = -m
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Diff formats a signed difference: green with a leading + when the day ran
// long (or exactly on time), red with a leading - when it ran short.
func Diff(d time.Duration) string {
	if d < 0 {
		return LossStyle.Render("-" + Span(d))
	}
	return GainStyle.Render("+" + Span(d))
}

// WriteLines prints the per-line section: each entry's duration followed by
// the original log line, in file order.
func WriteLines(w io.Writer, lines []timelog.LineDuration) error {
	if _, err := fmt.Fprintln(w, separator); err != nil {
		return err
	}
	for _, ld := range lines {
		if _, err := fmt.Fprintf(w, "%s %s\n", LineStyle.Render(Span(ld.Span)), ld.Line); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary prints the per-tag section, one row per tag in the order
// given (Summarize sorts ascending).
func WriteSummary(w io.Writer, totals []timelog.TagTotal) error {
	if _, err := fmt.Fprintln(w, separator); err != nil {
		return err
	}
	for _, tt := range totals {
		if _, err := fmt.Fprintf(w, "%s %s\n", TagStyle.Render(Span(tt.Span)), tt.Tag); err != nil {
			return err
		}
	}
	return nil
}

// WriteTotal prints the grand total and, unless the day matched the expected
// length exactly, the signed difference.
func WriteTotal(w io.Writer, total, expected time.Duration) error {
	if _, err := fmt.Fprintln(w, separator); err != nil {
		return err
	}
	diff, nonzero := timelog.Compare(total, expected)
	if !nonzero {
		_, err := fmt.Fprintln(w, TotalStyle.Render(Span(total)))
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s\n", TotalStyle.Render(Span(total)), Diff(diff))
	return err
}
