// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"

	"github.com/village-finance/backend/internal/domain/valueobject"
)

// monthAbbreviations maps months to Indonesian abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "Mei",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Agu",
	time.September: "Sep",
	time.October:   "Okt",
	time.November:  "Nov",
	time.December:  "Des",
}

// PeriodKey identifies the bucket a date falls into.
// SortKey is year-first and zero-padded so string order equals chronological order.
type PeriodKey struct {
	SortKey string
	Label   string
}

// ResolvePeriod computes the bucket key and display label for a date.
// Formats:
// - Daily: key "2024-03-05", label "05/03"
// - Weekly: key "2025-01" (ISO week-year and week), label "Week 1"
// - Monthly: key "2024-03", label "Mar"
func ResolvePeriod(date valueobject.CalendarDate, granularity Granularity) (PeriodKey, error) {
	switch granularity {
	case GranularityDaily:
		return PeriodKey{
			SortKey: dayKey(date.Year, date.Month, date.Day),
			Label:   fmt.Sprintf("%02d/%02d", date.Day, int(date.Month)),
		}, nil
	case GranularityWeekly:
		isoYear, week := date.ISOWeek()
		return PeriodKey{
			SortKey: weekKey(isoYear, week),
			Label:   fmt.Sprintf("Week %d", week),
		}, nil
	case GranularityMonthly:
		return PeriodKey{
			SortKey: monthKey(date.Year, date.Month),
			Label:   monthAbbreviations[date.Month],
		}, nil
	default:
		return PeriodKey{}, invalidGranularityError()
	}
}

// Sort keys are only ever built here. Every format starts with a four-digit
// year and pads the sub-period to two digits.

func dayKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

func weekKey(isoYear, week int) string {
	return fmt.Sprintf("%04d-%02d", isoYear, week)
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}
