// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/village-finance/backend/internal/domain/valueobject"
)

const (
	// dailyWindowDays is the number of days shown by the daily chart, today included.
	dailyWindowDays = 30
	// weeklyWindowWeeks is the number of ISO weeks shown by the weekly chart, the current week included.
	weeklyWindowWeeks = 12
)

// Bucket accumulates the totals of one display period.
type Bucket struct {
	SortKey      string
	Label        string
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
}

// BucketSet maps sort keys to buckets for a single granularity.
type BucketSet struct {
	granularity Granularity
	buckets     map[string]*Bucket
}

// newBucketSet creates an empty set for the given granularity.
func newBucketSet(granularity Granularity) *BucketSet {
	return &BucketSet{
		granularity: granularity,
		buckets:     make(map[string]*Bucket),
	}
}

// bucketFor returns the bucket for date, creating an empty one when the date is outside the pre-filled window.
func (s *BucketSet) bucketFor(date valueobject.CalendarDate) (*Bucket, error) {
	period, err := ResolvePeriod(date, s.granularity)
	if err != nil {
		return nil, err
	}

	if b, ok := s.buckets[period.SortKey]; ok {
		return b, nil
	}

	b := &Bucket{
		SortKey:      period.SortKey,
		Label:        period.Label,
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}
	s.buckets[period.SortKey] = b
	return b, nil
}

// PrefillBuckets materializes the fixed display window as empty buckets so the chart never has gaps:
// - Daily: the 30 days ending today
// - Weekly: the 12 ISO weeks ending with the current week
// - Monthly: January to December of the current year
//
// "Today" is the calendar date of now in now's location.
func PrefillBuckets(granularity Granularity, now time.Time) (*BucketSet, error) {
	if !granularity.IsValid() {
		return nil, invalidGranularityError()
	}

	set := newBucketSet(granularity)
	today := valueobject.NewCalendarDate(now)

	var dates []valueobject.CalendarDate
	switch granularity {
	case GranularityDaily:
		for i := dailyWindowDays - 1; i >= 0; i-- {
			dates = append(dates, today.AddDays(-i))
		}
	case GranularityWeekly:
		for i := weeklyWindowWeeks - 1; i >= 0; i-- {
			dates = append(dates, today.AddDays(-7*i))
		}
	case GranularityMonthly:
		for m := time.January; m <= time.December; m++ {
			dates = append(dates, valueobject.CalendarDate{Year: today.Year, Month: m, Day: 1})
		}
	}

	for _, d := range dates {
		if _, err := set.bucketFor(d); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// AccumulateRecords folds both record streams into the set and returns how many
// records were skipped because their date could not be normalized.
// Missing amounts add zero.
func AccumulateRecords(set *BucketSet, income, expense []TransactionRecord) (int, error) {
	skipped := 0

	add := func(records []TransactionRecord, total func(*Bucket) *decimal.Decimal) error {
		for _, r := range records {
			date, err := valueobject.ParseCalendarDate(r.OccurredOn)
			if err != nil {
				skipped++
				continue
			}

			b, err := set.bucketFor(date)
			if err != nil {
				return err
			}

			sum := total(b)
			*sum = sum.Add(r.amount())
		}
		return nil
	}

	if err := add(income, func(b *Bucket) *decimal.Decimal { return &b.IncomeTotal }); err != nil {
		return skipped, err
	}
	if err := add(expense, func(b *Bucket) *decimal.Decimal { return &b.ExpenseTotal }); err != nil {
		return skipped, err
	}
	return skipped, nil
}

// EmitSeries returns the buckets ordered by sort key, projected to chart points.
func EmitSeries(set *BucketSet) []SeriesPoint {
	buckets := make([]*Bucket, 0, len(set.buckets))
	for _, b := range set.buckets {
		buckets = append(buckets, b)
	}

	slices.SortFunc(buckets, func(a, b *Bucket) int {
		return strings.Compare(a.SortKey, b.SortKey)
	})

	points := make([]SeriesPoint, len(buckets))
	for i, b := range buckets {
		points[i] = SeriesPoint{
			Label:        b.Label,
			IncomeTotal:  b.IncomeTotal,
			ExpenseTotal: b.ExpenseTotal,
		}
	}
	return points
}
