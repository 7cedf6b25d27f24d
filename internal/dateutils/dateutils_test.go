package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvoiceDate(t *testing.T) {
	tests := []struct {
		name       string
		dateStr    string
		expectedOk bool
		expectedY  int
		expectedM  time.Month
		expectedD  int
	}{
		{"slash format", "2024/01/15", true, 2024, time.January, 15},
		{"ISO format", "2024-01-15", true, 2024, time.January, 15},
		{"compact format", "20240115", true, 2024, time.January, 15},
		{"full-width noise stripped", "2024年01月15日", true, 2024, time.January, 15},
		{"surrounding whitespace", " 2024/01/15 ", true, 2024, time.January, 15},
		{"empty string", "", false, 0, 0, 0},
		{"not a date", "hello", false, 0, 0, 0},
		{"overflow date", "2024/02/30", false, 0, 0, 0},
		{"month out of range", "2024/13/01", false, 0, 0, 0},
		{"two-digit year", "24/01/15", false, 0, 0, 0},
		{"too few parts", "2024/01", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseInvoiceDate(tc.dateStr)

			if !tc.expectedOk {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedY, date.Year())
			assert.Equal(t, tc.expectedM, date.Month())
			assert.Equal(t, tc.expectedD, date.Day())
		})
	}
}

func TestToISODate(t *testing.T) {
	date := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-07", ToISODate(date))
}

func TestMonthKey(t *testing.T) {
	date := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03", MonthKey(date))
}

func TestCompareDates(t *testing.T) {
	earlier := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	later := time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
	sameDayDifferentTime := time.Date(2024, time.January, 15, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, -1, CompareDates(earlier, later))
	assert.Equal(t, 1, CompareDates(later, earlier))
	assert.Equal(t, 0, CompareDates(earlier, sameDayDifferentTime))
}
