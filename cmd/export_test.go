package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrs/internal/timelog"
)

func TestCsvEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"with space", "with space"},
		{"with,comma", `"with,comma"`},
		{`with"quote`, `"with""quote"`},
		{"with\nnewline", "\"with\nnewline\""},
		{"with\rreturn", "\"with\rreturn\""},
		{"", ""},
	}
	for _, tt := range tests {
		got := csvEscape(tt.input)
		if got != tt.want {
			t.Errorf("csvEscape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func exportEntries() []timelog.Entry {
	return []timelog.Entry{
		{
			Start: 8 * time.Hour,
			End:   10*time.Hour + 15*time.Minute,
			Tag:   "[TAG-1]",
			Line:  "8-10.15 [TAG-1] desc",
		},
		{
			Start: 10*time.Hour + 15*time.Minute,
			End:   11 * time.Hour,
			Tag:   "reading, notes",
			Line:  "10.15-11 reading, notes",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeCSV(&out, exportEntries()))

	want := "start,end,tag,duration_minutes,line\n" +
		"08:00,10:15,[TAG-1],135,8-10.15 [TAG-1] desc\n" +
		"10:15,11:00,\"reading, notes\",45,\"10.15-11 reading, notes\"\n"
	assert.Equal(t, want, out.String())
}

func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeJSON(&out, exportEntries()))

	assert.JSONEq(t, `[
		{"start":"08:00","end":"10:15","tag":"[TAG-1]","duration_minutes":135,"line":"8-10.15 [TAG-1] desc"},
		{"start":"10:15","end":"11:00","tag":"reading, notes","duration_minutes":45,"line":"10.15-11 reading, notes"}
	]`, out.String())
}

func TestWriteJSONEmptyDay(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeJSON(&out, nil))
	assert.JSONEq(t, `[]`, out.String())
}
