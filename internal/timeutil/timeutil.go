// Package timeutil parses the wire formats used across the API: dates as
// 2006-01-02 and times of day as 15:04. All values are interpreted in UTC.
package timeutil

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// ParseDateTime combines a calendar date and a time of day into one instant.
func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, dateStr+" "+timeStr, time.UTC)
}
