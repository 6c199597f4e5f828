package msgraph

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"hrs/internal/timelog"
)

// EventCreator is the Graph surface Push needs; satisfied by *Client.
type EventCreator interface {
	CreateEvent(ctx context.Context, ev Event) error
}

// PushOptions configures a push run.
type PushOptions struct {
	// Day is the calendar day the entries belong to.
	Day time.Time
	// Timezone is the IANA zone stamped onto created events. Empty = UTC.
	Timezone string
	// DryRun prints planned events without creating anything.
	DryRun bool
}

// PushResult holds counters for a push operation.
type PushResult struct {
	Created int
	Skipped int
	Errors  int
}

// ResolveDay parses a log date token like "27.2" (day.month) into the
// matching date of now's year, in now's location.
func ResolveDay(token string, now time.Time) (time.Time, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("date %q is not in day.month form", token)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q has a non-numeric day: %w", token, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q has a non-numeric month: %w", token, err)
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("date %q is out of range", token)
	}
	return time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location()), nil
}

// eventFromEntry maps one parsed entry onto a calendar event for the given
// day. ok is false for entries whose end does not come after their start;
// those cannot be represented as events and are skipped.
func eventFromEntry(e timelog.Entry, day time.Time, timezone string) (Event, bool) {
	if e.Span() <= 0 {
		return Event{}, false
	}

	tz := timezone
	if tz == "" {
		tz = "UTC"
	}

	subject := e.Tag
	var categories []string
	if strings.HasPrefix(e.Tag, "[") && strings.HasSuffix(e.Tag, "]") {
		subject = strings.TrimSuffix(strings.TrimPrefix(e.Tag, "["), "]")
		categories = []string{subject}
	}

	return Event{
		Subject:    subject,
		Body:       EventBody{ContentType: "text", Content: e.Line},
		Start:      EventTime{DateTime: graphTime(day, e.Start), TimeZone: tz},
		End:        EventTime{DateTime: graphTime(day, e.End), TimeZone: tz},
		Categories: categories,
		ShowAs:     "busy",
	}, true
}

// graphTime renders a midnight offset on the given day in the Graph
// dateTime shape (no zone suffix; the zone travels separately).
func graphTime(day time.Time, offset time.Duration) string {
	return day.Add(offset).Format("2006-01-02T15:04:05")
}

// Push creates one calendar event per entry. With DryRun set it only prints
// the planned events; api may then be nil. Individual failures are counted
// and reported on stderr rather than aborting the run.
func Push(ctx context.Context, api EventCreator, entries []timelog.Entry, opts PushOptions) PushResult {
	var result PushResult
	for _, e := range entries {
		ev, ok := eventFromEntry(e, opts.Day, opts.Timezone)
		if !ok {
			result.Skipped++
			continue
		}
		if opts.DryRun {
			fmt.Printf("  would create %s – %s  %s\n", ev.Start.DateTime, ev.End.DateTime, ev.Subject)
			result.Created++
			continue
		}
		if err := api.CreateEvent(ctx, ev); err != nil {
			fmt.Fprintf(os.Stderr, "  error creating event for %q: %v\n", e.Line, err)
			result.Errors++
			continue
		}
		result.Created++
	}
	return result
}
