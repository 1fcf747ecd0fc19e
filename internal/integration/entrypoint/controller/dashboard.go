// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/village-finance/backend/internal/application/usecase/dashboard"
	"github.com/village-finance/backend/internal/domain/entity"
	domainerror "github.com/village-finance/backend/internal/domain/error"
	"github.com/village-finance/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getFinancialTrendUseCase    *dashboard.GetFinancialTrendUseCase
	getSummaryUseCase           *dashboard.GetSummaryUseCase
	getCategoryBreakdownUseCase *dashboard.GetCategoryBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getFinancialTrendUseCase *dashboard.GetFinancialTrendUseCase,
	getSummaryUseCase *dashboard.GetSummaryUseCase,
	getCategoryBreakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
) *DashboardController {
	return &DashboardController{
		getFinancialTrendUseCase:    getFinancialTrendUseCase,
		getSummaryUseCase:           getSummaryUseCase,
		getCategoryBreakdownUseCase: getCategoryBreakdownUseCase,
	}
}

// GetTrend handles GET /dashboard/trend requests.
func (c *DashboardController) GetTrend(ctx *gin.Context) {
	granularity, err := dashboard.ParseGranularity(ctx.Query("granularity"))
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	output, err := c.getFinancialTrendUseCase.Execute(ctx.Request.Context(), dashboard.GetFinancialTrendInput{
		Granularity: granularity,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendResponse(output))
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetCategoryBreakdown handles GET /dashboard/category-breakdown requests.
func (c *DashboardController) GetCategoryBreakdown(ctx *gin.Context) {
	input := dashboard.GetCategoryBreakdownInput{
		Kind: entity.RecordKind(ctx.DefaultQuery("kind", string(entity.RecordKindExpense))),
	}

	output, err := c.getCategoryBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		statusCode := c.getStatusCodeForDashboardError(dashErr.Code)
		if statusCode == http.StatusInternalServerError {
			slog.Error("Dashboard request failed", "path", ctx.FullPath(), "error", err)
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	// Generic server error
	slog.Error("Dashboard request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidGranularity,
		domainerror.ErrCodeMissingGranularity,
		domainerror.ErrCodeInvalidBreakdownKind:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
