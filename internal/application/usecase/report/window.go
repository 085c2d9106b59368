// Package report contains the monthly aggregation engine and reporting use cases.
package report

import (
	"regexp"
	"time"

	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ValidateMonth checks that month is a present, well-formed YYYY-MM value
// naming a real calendar month.
func ValidateMonth(month string) error {
	if month == "" {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingMonth,
			"month is required",
			domainerror.ErrMissingMonth,
		)
	}
	if !monthPattern.MatchString(month) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthFormat,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonthFormat,
		)
	}
	if _, err := time.ParseInLocation(entity.MonthFormat, month, time.Local); err != nil {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthFormat,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonthFormat,
		)
	}
	return nil
}

// MonthBounds returns the inclusive window for a YYYY-MM month in the local
// calendar: the first day at 00:00:00.000 through the last day at 23:59:59.999.
func MonthBounds(month string) (start, end time.Time, err error) {
	if err := ValidateMonth(month); err != nil {
		return time.Time{}, time.Time{}, err
	}

	first, err := time.ParseInLocation(entity.MonthFormat, month, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthFormat,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonthFormat,
		)
	}

	start = time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.Local)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end, nil
}

// TodayBounds returns the inclusive window covering now's calendar day.
func TodayBounds(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

// MonthToDateBounds returns the inclusive window from the first of now's month
// up to now itself.
func MonthToDateBounds(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, now
}

// MonthLabel formats a YYYY-MM month as a human-readable label like
// "January 2006". Falls back to the raw value when it does not parse.
func MonthLabel(month string) string {
	parsed, err := time.Parse(entity.MonthFormat, month)
	if err != nil {
		return month
	}
	return parsed.Format("January 2006")
}

// PreviousMonth returns the YYYY-MM value for the calendar month before now.
func PreviousMonth(now time.Time) string {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return firstOfMonth.AddDate(0, -1, 0).Format(entity.MonthFormat)
}
