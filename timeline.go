package finplan

import (
	"fmt"
	"strings"
)

// Timeline is the human decomposition of the time left until a target date.
type Timeline struct {
	Years  int
	Months int
	Days   int
	Past   bool // true when the target date is strictly before today.
}

// TimelineUntil decomposes the distance from today to target into whole years,
// months and days.
//
// A target equal to today is not past: it yields a zero remaining timeline.
// The same inclusive convention is used everywhere dates are compared against
// today in this package.
func TimelineUntil(today, target Date) Timeline {
	if target.Before(today) {
		return Timeline{Past: true}
	}

	years := target.Year() - today.Year()
	months := int(target.Month() - today.Month())
	days := target.Day() - today.Day()

	if days < 0 {
		// Borrow the length of the month preceding the target.
		days += target.StartOf(Monthly).Add(-1).Day()
		months--
	}
	if months < 0 {
		months += 12
		years--
	}
	return Timeline{Years: years, Months: months, Days: days}
}

// IsZero reports whether no time remains (target is today).
func (t Timeline) IsZero() bool { return !t.Past && t.Years == 0 && t.Months == 0 && t.Days == 0 }

// String renders the timeline the way the dashboard shows it, e.g. "1y 2m 10d".
func (t Timeline) String() string {
	if t.Past {
		return "in the past"
	}
	if t.IsZero() {
		return "today"
	}
	var parts []string
	if t.Years > 0 {
		parts = append(parts, fmt.Sprintf("%dy", t.Years))
	}
	if t.Months > 0 {
		parts = append(parts, fmt.Sprintf("%dm", t.Months))
	}
	if t.Days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", t.Days))
	}
	return strings.Join(parts, " ")
}
