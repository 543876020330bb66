package util

import (
	"fmt"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
)

// MonthLayout is the canonical month key format, e.g. "2024-03"
const MonthLayout = "2006-01"

// PrettyMonthLayout renders a month for the month selector, e.g. "March, 2024"
const PrettyMonthLayout = "January, 2006"

// PreviousMonth returns the year and month for the previous month
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// ParseMonth parses a "YYYY-MM" month key
func ParseMonth(s string) (int, int, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidMonth, s)
	}
	if t.Year() < domain.MinReportYear || t.Year() > domain.MaxReportYear {
		return 0, 0, fmt.Errorf("%w: year out of range in %q", domain.ErrInvalidMonth, s)
	}
	return t.Year(), int(t.Month()), nil
}

// MonthKey formats a year and month as "YYYY-MM"
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// MonthBoundaries returns the first and last day of a month (both inclusive)
func MonthBoundaries(year, month int) (time.Time, time.Time) {
	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)
	return startDate, endDate
}

// MonthFromDate returns the month key containing t
func MonthFromDate(t time.Time) string {
	return MonthKey(t.Year(), int(t.Month()))
}

// CurrentMonth returns the month key of today in local time
func CurrentMonth() string {
	return MonthFromDate(time.Now())
}

// RangeInclusiveDesc lists month keys from end back to start, both included.
// An empty slice is returned when start is after end.
func RangeInclusiveDesc(start, end string) ([]string, error) {
	startYear, startMonth, err := ParseMonth(start)
	if err != nil {
		return nil, err
	}
	year, month, err := ParseMonth(end)
	if err != nil {
		return nil, err
	}

	months := []string{}
	for year > startYear || (year == startYear && month >= startMonth) {
		months = append(months, MonthKey(year, month))
		year, month = PreviousMonth(year, month)
	}
	return months, nil
}

// FormatMonth renders a month key for display
func FormatMonth(month string) (string, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidMonth, month)
	}
	return t.Format(PrettyMonthLayout), nil
}
