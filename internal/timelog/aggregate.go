package timelog

import (
	"sort"
	"time"
)

// LineDuration pairs a parsed duration with its original log line.
type LineDuration struct {
	Span time.Duration
	Line string
}

// TagTotal is one row of the per-tag summary.
type TagTotal struct {
	Tag  string
	Span time.Duration
}

// Aggregate turns parsed entries into the per-line listing (original order
// preserved) and the per-tag duration sums. Tags are grouped by exact text,
// brackets included.
func Aggregate(entries []Entry) ([]LineDuration, map[string]time.Duration) {
	lines := make([]LineDuration, 0, len(entries))
	byTag := make(map[string]time.Duration, len(entries))
	for _, e := range entries {
		lines = append(lines, LineDuration{Span: e.Span(), Line: e.Line})
		byTag[e.Tag] += e.Span()
	}
	return lines, byTag
}

// Summarize sorts the per-tag sums ascending by tag text and returns them
// together with the grand total.
func Summarize(byTag map[string]time.Duration) ([]TagTotal, time.Duration) {
	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	totals := make([]TagTotal, 0, len(tags))
	var grand time.Duration
	for _, tag := range tags {
		totals = append(totals, TagTotal{Tag: tag, Span: byTag[tag]})
		grand += byTag[tag]
	}
	return totals, grand
}
