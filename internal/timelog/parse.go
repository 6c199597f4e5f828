package timelog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CarryMarker is the shorthand meaning "same tag as the previous entry".
// Only the full three-character prefix triggers carry-over; a lone -" does
// not.
const CarryMarker = `-"-`

// lineRe is the entry grammar: two clock tokens (digits and dots, 1-5
// characters) joined by a hyphen, at least one whitespace character, an
// optional bracketed tag, then free text.
var lineRe = regexp.MustCompile(`^([0-9.]{1,5})-([0-9.]{1,5})\s+(\[.*?\])?(.*)$`)

// Entry is one successfully parsed log line. Start and End are offsets from
// midnight; Span may be negative when the end time precedes the start time
// (overnight entries and typos are passed through, not rejected).
type Entry struct {
	Start time.Duration
	End   time.Duration
	Tag   string
	Line  string
}

// Span returns the entry duration, End minus Start.
func (e Entry) Span() time.Duration {
	return e.End - e.Start
}

// Parser parses the lines of one day block. It carries the tag of the most
// recent entry so that carry-over lines can resolve against it; use a fresh
// Parser per block.
type Parser struct {
	prevTag string
	hasPrev bool
}

// ParseLine parses a single line. Lines that do not match the entry grammar,
// including lines whose clock tokens are out of range, are reported with
// ok == false and leave the carry-over state untouched.
func (p *Parser) ParseLine(line string) (entry Entry, ok bool) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}

	start, err := parseClock(m[1])
	if err != nil {
		return Entry{}, false
	}
	end, err := parseClock(m[2])
	if err != nil {
		return Entry{}, false
	}

	// Bracketed tag wins; otherwise the description after the first run of
	// whitespace is the tag.
	tag := m[3]
	if tag == "" {
		tag = m[4]
	}

	if strings.HasPrefix(tag, CarryMarker) && p.hasPrev {
		tag = p.prevTag
	} else {
		p.prevTag = tag
		p.hasPrev = true
	}

	return Entry{Start: start, End: end, Tag: tag, Line: line}, true
}

// ParseDay parses a day block in order, threading one Parser across all
// lines. Unparseable lines are dropped.
func ParseDay(lines []string) []Entry {
	var entries []Entry
	var p Parser
	for _, line := range lines {
		if e, ok := p.ParseLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// parseClock parses a clock token into an offset from midnight. A dot-free
// token means a full hour ("9" is 09:00); otherwise the token is hour.minute
// with one or two digits each ("9.3" is 09:03).
func parseClock(tok string) (time.Duration, error) {
	if !strings.Contains(tok, ".") {
		tok += ".00"
	}
	parts := strings.Split(tok, ".")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock token %q", tok)
	}
	hour, err := clockField(parts[0], 23)
	if err != nil {
		return 0, err
	}
	minute, err := clockField(parts[1], 59)
	if err != nil {
		return 0, err
	}
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute, nil
}

func clockField(s string, max int) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, fmt.Errorf("clock field %q out of shape", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("clock field %q not numeric: %w", s, err)
	}
	if n < 0 || n > max {
		return 0, fmt.Errorf("clock field %d out of range", n)
	}
	return n, nil
}
