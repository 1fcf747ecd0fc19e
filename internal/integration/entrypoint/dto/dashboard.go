// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/village-finance/backend/internal/application/usecase/dashboard"
)

// TrendResponse represents the response for the financial trend API.
type TrendResponse struct {
	Data TrendData `json:"data"`
}

// TrendData represents the data section of the trend response.
type TrendData struct {
	Granularity    string               `json:"granularity"`
	GeneratedAt    string               `json:"generated_at"`
	SkippedRecords int                  `json:"skipped_records"`
	Points         []TrendPointResponse `json:"points"`
}

// TrendPointResponse represents one chart entry.
type TrendPointResponse struct {
	Label        string  `json:"label"`
	IncomeTotal  float64 `json:"income_total"`
	ExpenseTotal float64 `json:"expense_total"`
}

// SummaryResponse represents the response for the dashboard summary API.
type SummaryResponse struct {
	Data SummaryData `json:"data"`
}

// SummaryData represents the dashboard card totals.
type SummaryData struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
	IncomeCount  int     `json:"income_count"`
	ExpenseCount int     `json:"expense_count"`
}

// CategoryBreakdownResponse represents the response for the category breakdown API.
type CategoryBreakdownResponse struct {
	Data CategoryBreakdownData `json:"data"`
}

// CategoryBreakdownData represents the data section of the category breakdown response.
type CategoryBreakdownData struct {
	Kind       string                  `json:"kind"`
	Total      float64                 `json:"total"`
	Categories []CategoryTotalResponse `json:"categories"`
}

// CategoryTotalResponse represents a single category total.
type CategoryTotalResponse struct {
	CategoryName  string  `json:"category_name"`
	Amount        float64 `json:"amount"`
	Percentage    float64 `json:"percentage"`
	RecordCount   int     `json:"record_count"`
	Uncategorized bool    `json:"uncategorized"`
}

// ToTrendResponse converts a GetFinancialTrendOutput to TrendResponse DTO.
func ToTrendResponse(output *dashboard.GetFinancialTrendOutput) TrendResponse {
	points := make([]TrendPointResponse, len(output.Points))
	for i, p := range output.Points {
		income := chartAmount(p.IncomeTotal)
		expense := chartAmount(p.ExpenseTotal)
		points[i] = TrendPointResponse{
			Label:        p.Label,
			IncomeTotal:  income,
			ExpenseTotal: expense,
		}
	}

	return TrendResponse{
		Data: TrendData{
			Granularity:    string(output.Granularity),
			GeneratedAt:    output.GeneratedAt.Format(time.RFC3339),
			SkippedRecords: output.SkippedRecords,
			Points:         points,
		},
	}
}

// ToSummaryResponse converts a GetSummaryOutput to SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	totalIncome := chartAmount(output.TotalIncome)
	totalExpense := chartAmount(output.TotalExpense)
	balance := chartAmount(output.Balance)

	return SummaryResponse{
		Data: SummaryData{
			TotalIncome:  totalIncome,
			TotalExpense: totalExpense,
			Balance:      balance,
			IncomeCount:  output.IncomeCount,
			ExpenseCount: output.ExpenseCount,
		},
	}
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput to CategoryBreakdownResponse DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	categories := make([]CategoryTotalResponse, len(output.Categories))
	for i, c := range output.Categories {
		amount := chartAmount(c.Amount)
		categories[i] = CategoryTotalResponse{
			CategoryName:  c.CategoryName,
			Amount:        amount,
			Percentage:    c.Percentage,
			RecordCount:   c.RecordCount,
			Uncategorized: c.Uncategorized,
		}
	}

	total := chartAmount(output.Total)
	return CategoryBreakdownResponse{
		Data: CategoryBreakdownData{
			Kind:       string(output.Kind),
			Total:      total,
			Categories: categories,
		},
	}
}

// chartAmount renders a decimal total as a JSON number for the chart client.
// Totals beyond 2^53 are rounded to the nearest float64; record responses keep the exact string.
func chartAmount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
