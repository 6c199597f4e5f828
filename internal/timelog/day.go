// Package timelog parses free-form plain-text time logs: locating the block
// of lines belonging to one day, parsing `START-END [tag] description`
// entries, and aggregating durations per tag.
package timelog

import "strings"

// FindDayBlock returns the contiguous lines belonging to the given day.
// A line opens the block when it equals date exactly or starts with
// date followed by a single space (trailing annotations are allowed,
// e.g. "28.2 (day info)" matches "28.2"). The block runs from the header
// line (inclusive) to the first blank line (exclusive) or end of input.
// Only the first matching header counts. A missing day yields nil.
func FindDayBlock(content, date string) []string {
	var block []string
	inDay := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !inDay {
			if line == date || strings.HasPrefix(line, date+" ") {
				inDay = true
				block = append(block, line)
			}
			continue
		}
		if line == "" {
			break
		}
		block = append(block, line)
	}
	return block
}
