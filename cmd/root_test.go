package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrs/internal/report"
	"hrs/internal/timelog"
)

func loadFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/hours.txt")
	require.NoError(t, err)
	return string(data)
}

func line(d, text string) string {
	return report.LineStyle.Render(d) + " " + text
}

func tag(d, text string) string {
	return report.TagStyle.Render(d) + " " + text
}

func TestWriteDayReportFullDay(t *testing.T) {
	content := loadFixture(t)

	var out bytes.Buffer
	require.NoError(t, writeDayReport(&out, content, "1.3", timelog.Workday))

	want := "----\n" +
		line("02:00", "8-10 [TAG-1] desc") + "\n" +
		line("00:30", "10-10.30 tagless desc") + "\n" +
		line("01:30", "10.30-12 [TAG-1] desc, and some more desc") + "\n" +
		line("00:30", `12.30-13 -"-`) + "\n" +
		line("01:00", "13-14 another tagless desc") + "\n" +
		line("00:30", "14-14.30 [TAG-1] desc") + "\n" +
		line("00:30", "14.30-15 yet another tagless desc") + "\n" +
		line("02:15", "16-18.15 [TAG-1] desc") + "\n" +
		"----\n" +
		tag("06:45", "[TAG-1]") + "\n" +
		tag("01:00", "another tagless desc") + "\n" +
		tag("00:30", "tagless desc") + "\n" +
		tag("00:30", "yet another tagless desc") + "\n" +
		"----\n" +
		report.TotalStyle.Render("08:45") + " " + report.GainStyle.Render("+01:15") + "\n"

	assert.Equal(t, want, out.String())
}

func TestWriteDayReportMultipleTags(t *testing.T) {
	content := loadFixture(t)

	var out bytes.Buffer
	require.NoError(t, writeDayReport(&out, content, "2.3", timelog.Workday))

	want := "----\n" +
		line("02:00", "8-10 [TAG-1] desc") + "\n" +
		line("00:45", "10-10.45 tagless desc") + "\n" +
		line("00:15", "10.45-11 [TAG-2] [SECONDARY TAG] desc") + "\n" +
		line("02:00", "11.15-13.15 [TAG-3] desc") + "\n" +
		line("02:00", `13.30-15.30 -"-`) + "\n" +
		"----\n" +
		tag("02:00", "[TAG-1]") + "\n" +
		tag("00:15", "[TAG-2]") + "\n" +
		tag("04:00", "[TAG-3]") + "\n" +
		tag("00:45", "tagless desc") + "\n" +
		"----\n" +
		report.TotalStyle.Render("07:00") + " " + report.LossStyle.Render("-00:30") + "\n"

	assert.Equal(t, want, out.String())
}

func TestWriteDayReportEmptyDay(t *testing.T) {
	content := loadFixture(t)

	var out bytes.Buffer
	require.NoError(t, writeDayReport(&out, content, "4.3", timelog.Workday))

	want := "----\n----\n----\n" +
		report.TotalStyle.Render("00:00") + " " + report.LossStyle.Render("-07:30") + "\n"
	assert.Equal(t, want, out.String())
}

func TestWriteDayReportMissingDay(t *testing.T) {
	content := loadFixture(t)

	var out bytes.Buffer
	require.NoError(t, writeDayReport(&out, content, "24.12", timelog.Workday))

	want := "----\n----\n----\n" +
		report.TotalStyle.Render("00:00") + " " + report.LossStyle.Render("-07:30") + "\n"
	assert.Equal(t, want, out.String())
}

func TestRunDayUnreadableFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep the first-run config template out of the real home

	rootCmd.SetArgs([]string{"test/file/doesnt/exist", "1.3"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read file")
}

func TestWriteDayReportExactWorkday(t *testing.T) {
	content := "5.3\n8-15.30 [TAG-1] a full day\n"

	var out bytes.Buffer
	require.NoError(t, writeDayReport(&out, content, "5.3", timelog.Workday))

	want := "----\n" +
		line("07:30", "8-15.30 [TAG-1] a full day") + "\n" +
		"----\n" +
		tag("07:30", "[TAG-1]") + "\n" +
		"----\n" +
		report.TotalStyle.Render("07:30") + "\n"
	assert.Equal(t, want, out.String())
}
