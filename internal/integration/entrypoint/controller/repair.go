// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/application/usecase/repair"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
	"github.com/repairdesk/backend/internal/integration/entrypoint/dto"
)

// RepairController handles repair ticket endpoints.
type RepairController struct {
	createUseCase *repair.CreateRepairUseCase
	updateUseCase *repair.UpdateRepairUseCase
	listUseCase   *repair.ListRepairsUseCase
	deleteUseCase *repair.DeleteRepairUseCase
}

// NewRepairController creates a new repair controller instance.
func NewRepairController(
	createUseCase *repair.CreateRepairUseCase,
	updateUseCase *repair.UpdateRepairUseCase,
	listUseCase *repair.ListRepairsUseCase,
	deleteUseCase *repair.DeleteRepairUseCase,
) *RepairController {
	return &RepairController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /repairs requests. Supports status, startDate, endDate and
// search query parameters.
func (c *RepairController) List(ctx *gin.Context) {
	var filter adapter.RepairFilter

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.RepairStatus(statusStr)
		filter.Status = &status
	}
	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format, expected YYYY-MM-DD",
			})
			return
		}
		filter.StartDate = &startDate
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format, expected YYYY-MM-DD",
			})
			return
		}
		endOfDay := endDate.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &endOfDay
	}
	filter.Search = ctx.Query("search")

	output, err := c.listUseCase.Execute(ctx.Request.Context(), repair.ListRepairsInput{Filter: filter})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve repairs",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRepairListResponse(output.Repairs))
}

// Create handles POST /repairs requests.
func (c *RepairController) Create(ctx *gin.Context) {
	var req dto.CreateRepairRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := repair.CreateRepairInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Brand:         req.Brand,
		Model:         req.Model,
		Fault:         req.Fault,
		Parts:         req.Parts,
		RepairCost:    decimal.NewFromFloat(req.RepairCost),
		PartsCost:     decimal.NewFromFloat(req.PartsCost),
		Notes:         req.Notes,
	}
	if req.SupplierID != nil {
		supplierID, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid supplier ID format",
			})
			return
		}
		input.SupplierID = &supplierID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRepairError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRepairResponse(output.Repair))
}

// Update handles PATCH /repairs/:id requests.
func (c *RepairController) Update(ctx *gin.Context) {
	repairID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid repair ID format",
		})
		return
	}

	var req dto.UpdateRepairRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := repair.UpdateRepairInput{
		RepairID:      repairID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Brand:         req.Brand,
		Model:         req.Model,
		Fault:         req.Fault,
		ClearSupplier: req.ClearSupplier,
		Notes:         req.Notes,
	}
	if req.Parts != nil {
		input.Parts = *req.Parts
		if input.Parts == nil {
			input.Parts = []string{}
		}
	}
	if req.RepairCost != nil {
		cost := decimal.NewFromFloat(*req.RepairCost)
		input.RepairCost = &cost
	}
	if req.PartsCost != nil {
		cost := decimal.NewFromFloat(*req.PartsCost)
		input.PartsCost = &cost
	}
	if req.Status != nil {
		status := entity.RepairStatus(*req.Status)
		input.Status = &status
	}
	if req.SupplierID != nil {
		supplierID, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid supplier ID format",
			})
			return
		}
		input.SupplierID = &supplierID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRepairError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRepairResponse(output.Repair))
}

// Delete handles DELETE /repairs/:id requests.
func (c *RepairController) Delete(ctx *gin.Context) {
	repairID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid repair ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), repair.DeleteRepairInput{RepairID: repairID}); err != nil {
		c.handleRepairError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRepairError maps repair errors to HTTP responses.
func (c *RepairController) handleRepairError(ctx *gin.Context, err error) {
	var repairErr *domainerror.RepairError
	if errors.As(err, &repairErr) {
		ctx.JSON(statusCodeForRepairError(repairErr.Code), dto.ErrorResponse{
			Error: repairErr.Message,
			Code:  string(repairErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrRepairNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Repair not found",
			Code:  string(domainerror.ErrCodeRepairNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForRepairError maps repair error codes to HTTP status codes.
func statusCodeForRepairError(code domainerror.RepairErrorCode) int {
	switch code {
	case domainerror.ErrCodeRepairNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidRepairStatus,
		domainerror.ErrCodeNegativeRepairCost,
		domainerror.ErrCodeEmptyCustomerName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
