// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/village-finance/backend/internal/application/adapter"
	"github.com/village-finance/backend/internal/domain/entity"
	domainerror "github.com/village-finance/backend/internal/domain/error"
)

// UncategorizedName groups records recorded without a category.
const UncategorizedName = "Lainnya"

// GetCategoryBreakdownInput represents the input for getting category breakdown.
type GetCategoryBreakdownInput struct {
	Kind entity.RecordKind
}

// CategoryBreakdownItem represents a single category in the breakdown.
type CategoryBreakdownItem struct {
	CategoryName  string          `json:"category_name"`
	Amount        decimal.Decimal `json:"amount"`
	Percentage    float64         `json:"percentage"`
	RecordCount   int             `json:"record_count"`
	Uncategorized bool            `json:"uncategorized"`
}

// GetCategoryBreakdownOutput represents the output of getting category breakdown.
type GetCategoryBreakdownOutput struct {
	Kind       entity.RecordKind       `json:"kind"`
	Total      decimal.Decimal         `json:"total"`
	Categories []CategoryBreakdownItem `json:"categories"`
}

// GetCategoryBreakdownUseCase handles getting totals by category for one ledger.
type GetCategoryBreakdownUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(recordRepo adapter.RecordRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		recordRepo: recordRepo,
	}
}

// Execute retrieves totals by category, largest first.
func (uc *GetCategoryBreakdownUseCase) Execute(
	ctx context.Context,
	input GetCategoryBreakdownInput,
) (*GetCategoryBreakdownOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidBreakdownKind,
			"kind must be: income or expense",
			domainerror.ErrInvalidRecordKind,
		)
	}

	records, err := uc.recordRepo.ListAll(ctx, input.Kind)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInternalError,
			"failed to load records",
			fmt.Errorf("%w: %w", domainerror.ErrDashboardUnavailable, err),
		)
	}

	byName := make(map[string]*CategoryBreakdownItem)
	total := decimal.Zero
	for _, r := range records {
		name := strings.TrimSpace(r.Category)
		uncategorized := name == ""
		if uncategorized {
			name = UncategorizedName
		}

		item, ok := byName[name]
		if !ok {
			item = &CategoryBreakdownItem{
				CategoryName:  name,
				Amount:        decimal.Zero,
				Uncategorized: uncategorized,
			}
			byName[name] = item
		}

		amount := r.AmountOrZero()
		item.Amount = item.Amount.Add(amount)
		item.RecordCount++
		total = total.Add(amount)
	}

	categories := make([]CategoryBreakdownItem, 0, len(byName))
	for _, item := range byName {
		if !total.IsZero() {
			pct := item.Amount.Mul(decimal.NewFromInt(100)).Div(total)
			item.Percentage, _ = pct.Round(2).Float64()
		}
		categories = append(categories, *item)
	}

	slices.SortFunc(categories, func(a, b CategoryBreakdownItem) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.CategoryName, b.CategoryName)
	})

	return &GetCategoryBreakdownOutput{
		Kind:       input.Kind,
		Total:      total,
		Categories: categories,
	}, nil
}
