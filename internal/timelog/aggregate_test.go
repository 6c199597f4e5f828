package timelog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrs/internal/timelog"
)

func entry(start, end time.Duration, tag, line string) timelog.Entry {
	return timelog.Entry{Start: start, End: end, Tag: tag, Line: line}
}

func TestAggregate(t *testing.T) {
	entries := []timelog.Entry{
		entry(8*time.Hour, 10*time.Hour, "[tag1]", "8-10 [tag1] a"),
		entry(10*time.Hour, 10*time.Hour+30*time.Minute, "breakfast", "10-10.30 breakfast"),
		entry(10*time.Hour+30*time.Minute, 11*time.Hour, "[tag1]", "10.30-11 [tag1] b"),
	}

	lines, byTag := timelog.Aggregate(entries)

	require.Len(t, lines, 3)
	// Original order preserved.
	assert.Equal(t, "8-10 [tag1] a", lines[0].Line)
	assert.Equal(t, "10-10.30 breakfast", lines[1].Line)
	assert.Equal(t, "10.30-11 [tag1] b", lines[2].Line)
	assert.Equal(t, 2*time.Hour, lines[0].Span)

	assert.Equal(t, map[string]time.Duration{
		"[tag1]":    2*time.Hour + 30*time.Minute,
		"breakfast": 30 * time.Minute,
	}, byTag)
}

func TestAggregateEmpty(t *testing.T) {
	lines, byTag := timelog.Aggregate(nil)
	assert.Empty(t, lines)
	assert.Empty(t, byTag)

	totals, grand := timelog.Summarize(byTag)
	assert.Empty(t, totals)
	assert.Zero(t, grand)
}

func TestAggregateNegativeSpans(t *testing.T) {
	entries := []timelog.Entry{
		entry(18*time.Hour, 9*time.Hour, "[tag1]", "18-9 typo"),
		entry(9*time.Hour, 10*time.Hour, "[tag1]", "9-10 [tag1] a"),
	}
	_, byTag := timelog.Aggregate(entries)
	// Negative spans accumulate unclamped.
	assert.Equal(t, -8*time.Hour, byTag["[tag1]"])
}

func TestSummarize(t *testing.T) {
	byTag := map[string]time.Duration{
		"desc without tag 2": 45 * time.Minute,
		"[tag1]":             2*time.Hour + 30*time.Minute,
		"desc without tag 1": 3*time.Hour + 15*time.Minute,
		"[tag2]":             time.Hour + 45*time.Minute,
	}

	totals, grand := timelog.Summarize(byTag)

	require.Len(t, totals, 4)
	// Strictly ascending by tag text; brackets sort before letters.
	assert.Equal(t, []timelog.TagTotal{
		{Tag: "[tag1]", Span: 2*time.Hour + 30*time.Minute},
		{Tag: "[tag2]", Span: time.Hour + 45*time.Minute},
		{Tag: "desc without tag 1", Span: 3*time.Hour + 15*time.Minute},
		{Tag: "desc without tag 2", Span: 45 * time.Minute},
	}, totals)

	// Grand total equals the sum over tags.
	var sum time.Duration
	for _, d := range byTag {
		sum += d
	}
	assert.Equal(t, sum, grand)
	assert.Equal(t, 8*time.Hour+15*time.Minute, grand)
}
