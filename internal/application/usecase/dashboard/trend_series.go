// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/village-finance/backend/internal/domain/entity"
)

// TransactionRecord is the part of an income or expense entry the trend engine reads.
type TransactionRecord struct {
	Amount     decimal.NullDecimal
	OccurredOn string
}

func (r TransactionRecord) amount() decimal.Decimal {
	if !r.Amount.Valid {
		return decimal.Zero
	}
	return r.Amount.Decimal
}

// SeriesPoint is one entry of the chart series.
type SeriesPoint struct {
	Label        string          `json:"label"`
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
}

// TrendSeries is the ordered chart series plus the number of records left out of it.
type TrendSeries struct {
	Points         []SeriesPoint
	SkippedRecords int
}

// BuildTrendSeries buckets both record streams by granularity and returns a gap-free series
// ordered by period. Records whose date cannot be normalized are excluded and counted.
func BuildTrendSeries(
	income, expense []TransactionRecord,
	granularity Granularity,
	now time.Time,
) (TrendSeries, error) {
	set, err := PrefillBuckets(granularity, now)
	if err != nil {
		return TrendSeries{}, err
	}

	skipped, err := AccumulateRecords(set, income, expense)
	if err != nil {
		return TrendSeries{}, err
	}

	return TrendSeries{
		Points:         EmitSeries(set),
		SkippedRecords: skipped,
	}, nil
}

// Aggregate returns the chart series for the two record streams.
// It is a pure function of its arguments and is safe for concurrent use.
func Aggregate(
	income, expense []TransactionRecord,
	granularity Granularity,
	now time.Time,
) ([]SeriesPoint, error) {
	series, err := BuildTrendSeries(income, expense, granularity, now)
	if err != nil {
		return nil, err
	}
	return series.Points, nil
}

// ToTransactionRecords projects ledger entities onto engine input.
func ToTransactionRecords(records []*entity.FinanceRecord) []TransactionRecord {
	out := make([]TransactionRecord, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		out = append(out, TransactionRecord{
			Amount:     r.Amount,
			OccurredOn: r.OccurredOn,
		})
	}
	return out
}
