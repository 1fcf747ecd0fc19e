// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/village-finance/backend/internal/application/usecase/record"
	"github.com/village-finance/backend/internal/domain/entity"
	domainerror "github.com/village-finance/backend/internal/domain/error"
	"github.com/village-finance/backend/internal/integration/entrypoint/dto"
)

// RecordController handles income and expense endpoints. One instance serves one ledger.
type RecordController struct {
	kind          entity.RecordKind
	listUseCase   *record.ListRecordsUseCase
	createUseCase *record.CreateRecordUseCase
	updateUseCase *record.UpdateRecordUseCase
	deleteUseCase *record.DeleteRecordUseCase
}

// NewRecordController creates a new record controller instance for the given ledger.
func NewRecordController(
	kind entity.RecordKind,
	listUseCase *record.ListRecordsUseCase,
	createUseCase *record.CreateRecordUseCase,
	updateUseCase *record.UpdateRecordUseCase,
	deleteUseCase *record.DeleteRecordUseCase,
) *RecordController {
	return &RecordController{
		kind:          kind,
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /incomes and GET /expenses requests.
func (c *RecordController) List(ctx *gin.Context) {
	input := record.ListRecordsInput{
		Kind:     c.kind,
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
	}

	// Parse pagination
	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordListResponse(output))
}

// Create handles POST /incomes and POST /expenses requests.
func (c *RecordController) Create(ctx *gin.Context) {
	var req dto.CreateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidRecordRequest),
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), record.CreateRecordInput{
		Kind:        c.kind,
		Amount:      *req.Amount,
		OccurredOn:  req.Date,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecordResponse(output))
}

// Update handles PATCH /incomes/:id and PATCH /expenses/:id requests.
func (c *RecordController) Update(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidRecordRequest),
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), record.UpdateRecordInput{
		Kind:        c.kind,
		ID:          id,
		Amount:      req.Amount,
		OccurredOn:  req.Date,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordResponse(output))
}

// Delete handles DELETE /incomes/:id and DELETE /expenses/:id requests.
func (c *RecordController) Delete(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), record.DeleteRecordInput{
		Kind: c.kind,
		ID:   id,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *RecordController) parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
			Code:  string(domainerror.ErrCodeInvalidRecordID),
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleRecordError handles record errors and returns appropriate HTTP responses.
func (c *RecordController) handleRecordError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecordError
	if errors.As(err, &recErr) {
		statusCode := c.getStatusCodeForRecordError(recErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	// Generic server error
	slog.Error("Record request failed", "kind", c.kind, "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeRecordInternalError),
	})
}

// getStatusCodeForRecordError maps record error codes to HTTP status codes.
func (c *RecordController) getStatusCodeForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidRecordKind,
		domainerror.ErrCodeInvalidRecordAmount,
		domainerror.ErrCodeInvalidRecordDate,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeCategoryTooLong,
		domainerror.ErrCodeInvalidRecordID,
		domainerror.ErrCodeInvalidRecordRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
