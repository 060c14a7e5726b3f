// Package utils contains small calendar helpers shared by services and
// repositories. Business dates are Western Indonesia Time (WIB).
package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Location is the business time zone.
var Location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// Today is the business date of now.
func Today(now time.Time) string {
	return now.In(Location).Format(DateLayout)
}

// CurrentMonth is the business month of now, as YYYY-MM.
func CurrentMonth(now time.Time) string {
	return now.In(Location).Format(MonthLayout)
}

// ParseDate checks s is a YYYY-MM-DD date and returns it normalized.
func ParseDate(s string) (string, error) {
	t, err := time.ParseInLocation(DateLayout, s, Location)
	if err != nil {
		return "", fmt.Errorf("invalid date %q", s)
	}
	return t.Format(DateLayout), nil
}

// MonthBounds returns the first day of month and the first day of the next
// month, both YYYY-MM-DD, so a query can use [start, end).
func MonthBounds(month string) (string, string, error) {
	t, err := time.ParseInLocation(MonthLayout, month, Location)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q", month)
	}
	return t.Format(DateLayout), t.AddDate(0, 1, 0).Format(DateLayout), nil
}

// StartOfMonth is midnight of the first day of now's business month.
func StartOfMonth(now time.Time) time.Time {
	n := now.In(Location)
	return time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, Location)
}
