package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	rangeSeparator = " to "
)

// DateRange is a closed interval of calendar days
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange parses a "YYYY-MM-DD to YYYY-MM-DD" range string
func ParseDateRange(s string) (DateRange, error) {
	parts := strings.SplitN(s, rangeSeparator, 2)
	if len(parts) != 2 {
		return DateRange{}, fmt.Errorf("invalid date range %q: expected \"start%send\"", s, rangeSeparator)
	}

	start, err := time.Parse(dateLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date in range %q: %w", s, err)
	}

	end, err := time.Parse(dateLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date in range %q: %w", s, err)
	}

	return DateRange{Start: start, End: end}, nil
}

// Overlaps reports whether two closed intervals share at least one instant.
// Touching endpoints count as overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// String formats the range back into its textual form
func (r DateRange) String() string {
	return r.Start.Format(dateLayout) + rangeSeparator + r.End.Format(dateLayout)
}

// FormatDateRange builds a range string from two dates
func FormatDateRange(start, end time.Time) string {
	return DateRange{Start: start, End: end}.String()
}
