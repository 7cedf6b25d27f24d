// Package dateutils provides date parsing and formatting for e-invoice data.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO     = "2006-01-02"
	DateLayoutSlash   = "2006/01/02"
	DateLayoutCompact = "20060102"
	MonthLayout       = "2006-01"
)

var nonDateChars = regexp.MustCompile(`[^0-9/\-]`)

// ParseInvoiceDate parses the date field of an e-invoice header row.
// Accepted encodings are YYYY/MM/DD, YYYY-MM-DD and YYYYMMDD; any other
// characters are stripped before matching. The constructed date must
// round-trip exactly, so overflow dates like 2024/02/30 are rejected.
func ParseInvoiceDate(dateStr string) (time.Time, error) {
	cleaned := nonDateChars.ReplaceAllString(strings.TrimSpace(dateStr), "")
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("unable to parse invoice date: %q", dateStr)
	}

	var year, month, day int
	switch {
	case strings.Contains(cleaned, "/"):
		if !splitDateParts(cleaned, "/", &year, &month, &day) {
			return time.Time{}, fmt.Errorf("unable to parse invoice date: %q", dateStr)
		}
	case strings.Contains(cleaned, "-"):
		if !splitDateParts(cleaned, "-", &year, &month, &day) {
			return time.Time{}, fmt.Errorf("unable to parse invoice date: %q", dateStr)
		}
	case len(cleaned) == 8:
		year, _ = strconv.Atoi(cleaned[0:4])
		month, _ = strconv.Atoi(cleaned[4:6])
		day, _ = strconv.Atoi(cleaned[6:8])
	default:
		return time.Time{}, fmt.Errorf("unable to parse invoice date: %q", dateStr)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 becomes Mar 1), so an exact
	// round-trip check is what rejects impossible calendar dates.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid calendar date: %q", dateStr)
	}

	return t, nil
}

func splitDateParts(s, sep string, year, month, day *int) bool {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return false
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	if len(parts[0]) != 4 || m < 1 || m > 12 || d < 1 || d > 31 {
		return false
	}
	*year, *month, *day = y, m, d
	return true
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey formats a time.Time as a YYYY-MM bucket key for monthly statistics.
func MonthKey(date time.Time) string {
	return date.Format(MonthLayout)
}

// CompareDates compares the calendar-day portion of two dates and returns
// -1, 0 or 1.
func CompareDates(date1, date2 time.Time) int {
	date1 = time.Date(date1.Year(), date1.Month(), date1.Day(), 0, 0, 0, 0, time.UTC)
	date2 = time.Date(date2.Year(), date2.Month(), date2.Day(), 0, 0, 0, 0, time.UTC)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	}
	return 0
}
