// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/village-finance/backend/internal/application/adapter"
	"github.com/village-finance/backend/internal/domain/entity"
	domainerror "github.com/village-finance/backend/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type stubRecordRepository struct {
	mu      sync.Mutex
	records map[entity.RecordKind][]*entity.FinanceRecord
	err     error
	calls   int
}

func newStubRecordRepository() *stubRecordRepository {
	return &stubRecordRepository{records: map[entity.RecordKind][]*entity.FinanceRecord{}}
}

func (s *stubRecordRepository) add(kind entity.RecordKind, amount int64, occurredOn, category string) {
	r := entity.NewFinanceRecord(kind, decimal.NewFromInt(amount), occurredOn, category, "")
	s.records[kind] = append(s.records[kind], r)
}

func (s *stubRecordRepository) ListAll(_ context.Context, kind entity.RecordKind) ([]*entity.FinanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records[kind], nil
}

func (s *stubRecordRepository) Create(context.Context, *entity.FinanceRecord) error { return nil }

func (s *stubRecordRepository) FindByID(context.Context, entity.RecordKind, uuid.UUID) (*entity.FinanceRecord, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (s *stubRecordRepository) FindByFilter(context.Context, adapter.RecordFilter, adapter.RecordPagination) (*entity.RecordListResult, error) {
	return &entity.RecordListResult{}, nil
}

func (s *stubRecordRepository) Update(context.Context, *entity.FinanceRecord) error { return nil }

func (s *stubRecordRepository) Delete(context.Context, entity.RecordKind, uuid.UUID) error { return nil }

type memoryTrendCache struct {
	version int64
	entries map[string]*GetFinancialTrendOutput
	failGet bool
}

func newMemoryTrendCache() *memoryTrendCache {
	return &memoryTrendCache{entries: map[string]*GetFinancialTrendOutput{}}
}

func (c *memoryTrendCache) Version(context.Context) (int64, error) { return c.version, nil }

func (c *memoryTrendCache) GetTrend(_ context.Context, key string) (*GetFinancialTrendOutput, bool, error) {
	if c.failGet {
		return nil, false, errors.New("cache down")
	}
	out, ok := c.entries[key]
	return out, ok, nil
}

func (c *memoryTrendCache) SetTrend(_ context.Context, key string, output *GetFinancialTrendOutput) error {
	c.entries[key] = output
	return nil
}

func TestGetFinancialTrendUseCase_Execute(t *testing.T) {
	repo := newStubRecordRepository()
	repo.add(entity.RecordKindIncome, 500000, "2024-01-15", "Dana Desa")
	repo.add(entity.RecordKindExpense, 200000, "2024-03-02", "Pembangunan")
	repo.records[entity.RecordKindExpense] = append(repo.records[entity.RecordKindExpense],
		&entity.FinanceRecord{Kind: entity.RecordKindExpense, Amount: decimal.NewNullDecimal(decimal.NewFromInt(1)), OccurredOn: "kemarin"})

	clock := fixedClock{now: time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)}
	uc := NewGetFinancialTrendUseCase(repo, nil, clock, time.UTC)

	output, err := uc.Execute(context.Background(), GetFinancialTrendInput{Granularity: GranularityMonthly})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Granularity != GranularityMonthly {
		t.Errorf("expected monthly granularity, got %s", output.Granularity)
	}
	if len(output.Points) != 12 {
		t.Fatalf("expected 12 points, got %d", len(output.Points))
	}
	if output.SkippedRecords != 1 {
		t.Errorf("expected 1 skipped record, got %d", output.SkippedRecords)
	}
	if !output.Points[0].IncomeTotal.Equal(decimal.NewFromInt(500000)) {
		t.Errorf("expected Jan income 500000, got %s", output.Points[0].IncomeTotal)
	}
	if !output.Points[2].ExpenseTotal.Equal(decimal.NewFromInt(200000)) {
		t.Errorf("expected Mar expense 200000, got %s", output.Points[2].ExpenseTotal)
	}
}

func TestGetFinancialTrendUseCase_InvalidGranularity(t *testing.T) {
	uc := NewGetFinancialTrendUseCase(newStubRecordRepository(), nil, fixedClock{now: time.Now()}, nil)

	_, err := uc.Execute(context.Background(), GetFinancialTrendInput{Granularity: "yearly"})

	var dashErr *domainerror.DashboardError
	if !errors.As(err, &dashErr) || dashErr.Code != domainerror.ErrCodeInvalidGranularity {
		t.Fatalf("expected invalid granularity error, got %v", err)
	}
}

func TestGetFinancialTrendUseCase_RepositoryFailure(t *testing.T) {
	repo := newStubRecordRepository()
	repo.err = errors.New("connection refused")
	uc := NewGetFinancialTrendUseCase(repo, nil, fixedClock{now: time.Now()}, time.UTC)

	_, err := uc.Execute(context.Background(), GetFinancialTrendInput{Granularity: GranularityDaily})

	if !errors.Is(err, domainerror.ErrDashboardUnavailable) {
		t.Fatalf("expected ErrDashboardUnavailable, got %v", err)
	}
	var dashErr *domainerror.DashboardError
	if !errors.As(err, &dashErr) || dashErr.Code != domainerror.ErrCodeDashboardInternalError {
		t.Errorf("expected internal dashboard error code, got %v", err)
	}
}

func TestGetFinancialTrendUseCase_UsesCache(t *testing.T) {
	repo := newStubRecordRepository()
	repo.add(entity.RecordKindIncome, 10, "2024-06-01", "")
	cache := newMemoryTrendCache()
	clock := fixedClock{now: time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)}
	uc := NewGetFinancialTrendUseCase(repo, cache, clock, time.UTC)
	input := GetFinancialTrendInput{Granularity: GranularityWeekly}

	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	callsAfterFirst := repo.calls

	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.calls != callsAfterFirst {
		t.Errorf("expected cached result, repository was queried again")
	}
	if second != first {
		t.Errorf("expected the cached output to be returned")
	}
	if _, ok := cache.entries["weekly:2024-06-15:v0"]; !ok {
		t.Errorf("expected cache entry keyed by granularity, day and version, got %v", cache.entries)
	}

	cache.version++
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls == callsAfterFirst {
		t.Errorf("expected a version bump to force recomputation")
	}
}

func TestGetFinancialTrendUseCase_CacheFailureFallsBack(t *testing.T) {
	repo := newStubRecordRepository()
	repo.add(entity.RecordKindIncome, 10, "2024-06-01", "")
	cache := newMemoryTrendCache()
	cache.failGet = true
	uc := NewGetFinancialTrendUseCase(repo, cache, fixedClock{now: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)}, time.UTC)

	output, err := uc.Execute(context.Background(), GetFinancialTrendInput{Granularity: GranularityMonthly})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Points) != 12 {
		t.Errorf("expected 12 points, got %d", len(output.Points))
	}
}

func TestGetSummaryUseCase_Execute(t *testing.T) {
	repo := newStubRecordRepository()
	repo.add(entity.RecordKindIncome, 700, "2024-01-01", "")
	repo.add(entity.RecordKindIncome, 300, "garbage", "")
	repo.add(entity.RecordKindExpense, 250, "2024-01-02", "")
	repo.records[entity.RecordKindExpense] = append(repo.records[entity.RecordKindExpense],
		&entity.FinanceRecord{Kind: entity.RecordKindExpense, OccurredOn: "2024-01-03"})

	output, err := NewGetSummaryUseCase(repo).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalIncome.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected income 1000, got %s", output.TotalIncome)
	}
	if !output.TotalExpense.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected expense 250, got %s", output.TotalExpense)
	}
	if !output.Balance.Equal(decimal.NewFromInt(750)) {
		t.Errorf("expected balance 750, got %s", output.Balance)
	}
	if output.IncomeCount != 2 || output.ExpenseCount != 2 {
		t.Errorf("unexpected counts %d/%d", output.IncomeCount, output.ExpenseCount)
	}
}

func TestGetCategoryBreakdownUseCase_Execute(t *testing.T) {
	repo := newStubRecordRepository()
	repo.add(entity.RecordKindExpense, 600, "2024-01-01", "Pembangunan")
	repo.add(entity.RecordKindExpense, 200, "2024-01-02", "Operasional")
	repo.add(entity.RecordKindExpense, 100, "2024-01-03", " Pembangunan ")
	repo.add(entity.RecordKindExpense, 100, "2024-01-04", "")

	output, err := NewGetCategoryBreakdownUseCase(repo).Execute(
		context.Background(),
		GetCategoryBreakdownInput{Kind: entity.RecordKindExpense},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected total 1000, got %s", output.Total)
	}
	if len(output.Categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(output.Categories))
	}

	first := output.Categories[0]
	if first.CategoryName != "Pembangunan" || first.RecordCount != 2 || first.Percentage != 70 {
		t.Errorf("unexpected first category: %+v", first)
	}

	last := output.Categories[2]
	if last.CategoryName != UncategorizedName || !last.Uncategorized || last.Percentage != 10 {
		t.Errorf("unexpected uncategorized group: %+v", last)
	}
}

func TestGetCategoryBreakdownUseCase_InvalidKind(t *testing.T) {
	_, err := NewGetCategoryBreakdownUseCase(newStubRecordRepository()).Execute(
		context.Background(),
		GetCategoryBreakdownInput{Kind: "transfer"},
	)

	var dashErr *domainerror.DashboardError
	if !errors.As(err, &dashErr) || dashErr.Code != domainerror.ErrCodeInvalidBreakdownKind {
		t.Fatalf("expected invalid kind error, got %v", err)
	}
}
