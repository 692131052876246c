package intent

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dueLayouts are the absolute time formats accepted for a reminder
// due-spec, tried in order.
var dueLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006",
}

// ParseDueSpec resolves a due-spec string to an absolute time, relative to
// now. Accepted forms:
//
//	18:00                clock time today
//	2026-08-25 18:00     date and time
//	2026-08-25           start of that day
//	25.08.2026           start of that day
//	2026-08-25T18:00:00Z RFC 3339
//	in 5 minutes         relative duration (minutes, hours, days)
func ParseDueSpec(spec string, now time.Time) (time.Time, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return time.Time{}, fmt.Errorf("empty due time")
	}

	if strings.HasPrefix(strings.ToLower(spec), "in ") {
		return parseRelative(spec[len("in "):], now)
	}

	// Bare clock time means today at that time.
	if t, err := time.Parse("15:04", spec); err == nil {
		return time.Date(
			now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), 0, 0, now.Location(),
		), nil
	}

	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, spec, now.Location()); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized due time %q", spec)
}

// parseRelative handles the "in <n> <unit>" duration form.
func parseRelative(rest string, now time.Time) (time.Time, error) {
	fields := strings.Fields(strings.ToLower(rest))
	if len(fields) != 2 {
		return time.Time{}, fmt.Errorf("unrecognized duration %q (want e.g. \"in 5 minutes\")", rest)
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return time.Time{}, fmt.Errorf("invalid duration amount %q", fields[0])
	}

	var unit time.Duration
	switch fields[1] {
	case "minute", "minutes", "min", "mins":
		unit = time.Minute
	case "hour", "hours", "h":
		unit = time.Hour
	case "day", "days", "d":
		unit = 24 * time.Hour
	default:
		return time.Time{}, fmt.Errorf("unknown duration unit %q", fields[1])
	}

	return now.Add(time.Duration(n) * unit), nil
}
