// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/village-finance/backend/internal/application/adapter"
	"github.com/village-finance/backend/internal/domain/entity"
	domainerror "github.com/village-finance/backend/internal/domain/error"
	"github.com/village-finance/backend/internal/domain/valueobject"
)

// TrendCache stores computed trend outputs. Entries are keyed by granularity,
// day and ledger version, so bumping the version makes older entries unreachable.
type TrendCache interface {
	// Version returns the current ledger version.
	Version(ctx context.Context) (int64, error)

	// GetTrend returns a cached output and whether it was found.
	GetTrend(ctx context.Context, key string) (*GetFinancialTrendOutput, bool, error)

	// SetTrend stores an output under key.
	SetTrend(ctx context.Context, key string, output *GetFinancialTrendOutput) error
}

// GetFinancialTrendInput represents the input for getting the financial trend chart.
type GetFinancialTrendInput struct {
	Granularity Granularity
}

// GetFinancialTrendOutput represents the chart series for one granularity.
type GetFinancialTrendOutput struct {
	Granularity    Granularity   `json:"granularity"`
	GeneratedAt    time.Time     `json:"generated_at"`
	Points         []SeriesPoint `json:"points"`
	SkippedRecords int           `json:"skipped_records"`
}

// GetFinancialTrendUseCase handles building the income/expense trend chart.
type GetFinancialTrendUseCase struct {
	recordRepo adapter.RecordRepository
	cache      TrendCache
	clock      adapter.Clock
	location   *time.Location
}

// NewGetFinancialTrendUseCase creates a new GetFinancialTrendUseCase instance.
// cache may be nil, in which case every call recomputes the series.
func NewGetFinancialTrendUseCase(
	recordRepo adapter.RecordRepository,
	cache TrendCache,
	clock adapter.Clock,
	location *time.Location,
) *GetFinancialTrendUseCase {
	if location == nil {
		location = time.UTC
	}
	return &GetFinancialTrendUseCase{
		recordRepo: recordRepo,
		cache:      cache,
		clock:      clock,
		location:   location,
	}
}

// Execute returns the gap-free, period-ordered trend series for the requested granularity.
func (uc *GetFinancialTrendUseCase) Execute(
	ctx context.Context,
	input GetFinancialTrendInput,
) (*GetFinancialTrendOutput, error) {
	if !input.Granularity.IsValid() {
		return nil, invalidGranularityError()
	}

	now := uc.clock.Now().In(uc.location)

	cacheKey, cached := uc.lookupCache(ctx, input.Granularity, now)
	if cached != nil {
		return cached, nil
	}

	income, expense, err := loadLedgers(ctx, uc.recordRepo)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInternalError,
			"failed to load records",
			fmt.Errorf("%w: %w", domainerror.ErrDashboardUnavailable, err),
		)
	}

	series, err := BuildTrendSeries(
		ToTransactionRecords(income),
		ToTransactionRecords(expense),
		input.Granularity,
		now,
	)
	if err != nil {
		return nil, err
	}

	if series.SkippedRecords > 0 {
		slog.Warn("Records with unparseable dates excluded from trend",
			"granularity", input.Granularity,
			"skipped", series.SkippedRecords,
		)
	}

	output := &GetFinancialTrendOutput{
		Granularity:    input.Granularity,
		GeneratedAt:    now,
		Points:         series.Points,
		SkippedRecords: series.SkippedRecords,
	}

	if cacheKey != "" {
		if err := uc.cache.SetTrend(ctx, cacheKey, output); err != nil {
			slog.Warn("Failed to cache trend", "key", cacheKey, "error", err)
		}
	}

	return output, nil
}

// lookupCache returns the cache key for this request and a cached output if one exists.
// Cache failures are logged and treated as a miss.
func (uc *GetFinancialTrendUseCase) lookupCache(
	ctx context.Context,
	granularity Granularity,
	now time.Time,
) (string, *GetFinancialTrendOutput) {
	if uc.cache == nil {
		return "", nil
	}

	version, err := uc.cache.Version(ctx)
	if err != nil {
		slog.Warn("Failed to read trend cache version", "error", err)
		return "", nil
	}

	key := fmt.Sprintf("%s:%s:v%d", granularity, valueobject.NewCalendarDate(now), version)

	output, found, err := uc.cache.GetTrend(ctx, key)
	if err != nil {
		slog.Warn("Failed to read trend cache", "key", key, "error", err)
		return key, nil
	}
	if !found {
		return key, nil
	}
	return key, output
}

// loadLedgers fetches the income and expense ledgers concurrently.
func loadLedgers(
	ctx context.Context,
	repo adapter.RecordRepository,
) (income, expense []*entity.FinanceRecord, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		income, err = repo.ListAll(gctx, entity.RecordKindIncome)
		if err != nil {
			return fmt.Errorf("failed to list income records: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		expense, err = repo.ListAll(gctx, entity.RecordKindExpense)
		if err != nil {
			return fmt.Errorf("failed to list expense records: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return income, expense, nil
}
