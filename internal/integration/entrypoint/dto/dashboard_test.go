package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/village-finance/backend/internal/application/usecase/dashboard"
)

func TestToTrendResponse(t *testing.T) {
	output := &dashboard.GetFinancialTrendOutput{
		Granularity:    dashboard.GranularityMonthly,
		GeneratedAt:    time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC),
		SkippedRecords: 1,
		Points: []dashboard.SeriesPoint{
			{Label: "Jan", IncomeTotal: decimal.RequireFromString("500000.25"), ExpenseTotal: decimal.Zero},
		},
	}

	resp := ToTrendResponse(output)

	assert.Equal(t, "monthly", resp.Data.Granularity)
	assert.Equal(t, "2024-06-15T09:00:00Z", resp.Data.GeneratedAt)
	assert.Equal(t, 1, resp.Data.SkippedRecords)
	require.Len(t, resp.Data.Points, 1)
	assert.Equal(t, 500000.25, resp.Data.Points[0].IncomeTotal)
	assert.Equal(t, 0.0, resp.Data.Points[0].ExpenseTotal)
}

func TestChartAmount(t *testing.T) {
	assert.Equal(t, 1234567.89, chartAmount(decimal.RequireFromString("1234567.89")))
	assert.Equal(t, -750000.0, chartAmount(decimal.NewFromInt(-750000)))

	// 2^53 + 1 has no float64 representation and rounds down.
	assert.Equal(t, 9007199254740992.0, chartAmount(decimal.RequireFromString("9007199254740993")))
}
