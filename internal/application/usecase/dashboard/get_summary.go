// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/village-finance/backend/internal/application/adapter"
	"github.com/village-finance/backend/internal/domain/entity"
	domainerror "github.com/village-finance/backend/internal/domain/error"
)

// GetSummaryOutput holds the totals shown on the dashboard cards.
type GetSummaryOutput struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
	IncomeCount  int             `json:"income_count"`
	ExpenseCount int             `json:"expense_count"`
}

// GetSummaryUseCase handles computing ledger totals.
type GetSummaryUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(recordRepo adapter.RecordRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		recordRepo: recordRepo,
	}
}

// Execute sums every income and expense record. Records without an amount count as zero.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	income, expense, err := loadLedgers(ctx, uc.recordRepo)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInternalError,
			"failed to load records",
			fmt.Errorf("%w: %w", domainerror.ErrDashboardUnavailable, err),
		)
	}

	totalIncome := sumRecords(income)
	totalExpense := sumRecords(expense)

	return &GetSummaryOutput{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
		IncomeCount:  len(income),
		ExpenseCount: len(expense),
	}, nil
}

func sumRecords(records []*entity.FinanceRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.AmountOrZero())
	}
	return total
}
