package sink

import (
	"strconv"
	"time"
)

// One canonical string form per field kind, shared by every table.
const (
	dateLayout      = "2006-01-02"
	dateTimeLayout  = "2006-01-02 15:04:05"
	timestampLayout = "2006-01-02T15:04:05"
)

// FormatDate renders a date-only field (signup dates, hire dates).
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatDateTime renders a space-separated datetime (last logins,
// document timestamps).
func FormatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// FormatTimestamp renders an ISO-8601 timestamp (activity and
// prediction timestamps).
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// FormatFloat renders a real number with a fixed decimal precision.
func FormatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// FormatInt renders an integer field.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}
