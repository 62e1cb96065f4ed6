package projection

import (
	"strings"
	"time"
)

// Present stands in for a missing end date
const Present = "Present"

var dateLayouts = []struct {
	layout string
	output string
}{
	{"2006-01-02", "January 2006"},
	{"2006-01", "January 2006"},
	{"2006", "2006"},
}

// FormatDate renders an ISO-like date as "January 2023". Values that do not
// parse are returned unchanged.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l.layout, s); err == nil {
			return t.Format(l.output)
		}
	}
	return s
}

// Period renders "start - end" with Present for an empty end. When raw is set
// the dates are shown as entered.
func Period(start, end string, raw bool) string {
	format := FormatDate
	if raw {
		format = strings.TrimSpace
	}

	to := Present
	if strings.TrimSpace(end) != "" {
		to = format(end)
	}
	from := format(start)
	if from == "" {
		return to
	}
	return from + " - " + to
}
