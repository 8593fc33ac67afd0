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
	"github.com/repairdesk/backend/internal/application/usecase/attribution"
	"github.com/repairdesk/backend/internal/application/usecase/ledger"
	"github.com/repairdesk/backend/internal/application/usecase/party"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
	"github.com/repairdesk/backend/internal/domain/valueobject"
	"github.com/repairdesk/backend/internal/integration/entrypoint/dto"
)

// PartyController handles party directory, ledger and activity endpoints.
type PartyController struct {
	createUseCase    *party.CreatePartyUseCase
	updateUseCase    *party.UpdatePartyUseCase
	deleteUseCase    *party.DeletePartyUseCase
	listUseCase      *party.ListPartiesUseCase
	importUseCase    *party.ImportPartiesUseCase
	postUseCase      *ledger.PostAdjustmentUseCase
	entriesUseCase   *ledger.ListEntriesUseCase
	activityUseCase  *attribution.AggregateActivityUseCase
}

// NewPartyController creates a new party controller instance.
func NewPartyController(
	createUseCase *party.CreatePartyUseCase,
	updateUseCase *party.UpdatePartyUseCase,
	deleteUseCase *party.DeletePartyUseCase,
	listUseCase *party.ListPartiesUseCase,
	importUseCase *party.ImportPartiesUseCase,
	postUseCase *ledger.PostAdjustmentUseCase,
	entriesUseCase *ledger.ListEntriesUseCase,
	activityUseCase *attribution.AggregateActivityUseCase,
) *PartyController {
	return &PartyController{
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		listUseCase:     listUseCase,
		importUseCase:   importUseCase,
		postUseCase:     postUseCase,
		entriesUseCase:  entriesUseCase,
		activityUseCase: activityUseCase,
	}
}

// List handles GET /parties requests. The kind query parameter selects
// customers or suppliers; it defaults to customers.
func (c *PartyController) List(ctx *gin.Context) {
	kind := entity.PartyKind(ctx.DefaultQuery("kind", string(entity.PartyKindCustomer)))
	if kind != entity.PartyKindCustomer && kind != entity.PartyKindSupplier {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "kind must be 'customer' or 'supplier'",
			Code:  string(domainerror.ErrCodeInvalidPartyKind),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), party.ListPartiesInput{Kind: kind})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve parties",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPartyListResponse(output.Parties))
}

// Create handles POST /parties requests.
func (c *PartyController) Create(ctx *gin.Context) {
	var req dto.CreatePartyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), party.CreatePartyInput{
		Kind:    entity.PartyKind(req.Kind),
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		c.handlePartyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPartyResponse(output.Party))
}

// Update handles PATCH /parties/:id requests.
func (c *PartyController) Update(ctx *gin.Context) {
	partyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid party ID format",
		})
		return
	}

	var req dto.UpdatePartyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), party.UpdatePartyInput{
		PartyID: partyID,
		Patch: adapter.PartyPatch{
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
			Notes:   req.Notes,
		},
	})
	if err != nil {
		c.handlePartyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPartyResponse(output.Party))
}

// Delete handles DELETE /parties/:id requests. Deleting an unknown party is
// a no-op and still returns 204.
func (c *PartyController) Delete(ctx *gin.Context) {
	partyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid party ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), party.DeletePartyInput{PartyID: partyID}); err != nil {
		c.handlePartyError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// PostAdjustment handles POST /parties/:id/adjustments requests.
func (c *PartyController) PostAdjustment(ctx *gin.Context) {
	partyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid party ID format",
		})
		return
	}

	var req dto.PostAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.postUseCase.Execute(ctx.Request.Context(), ledger.PostAdjustmentInput{
		PartyID:     partyID,
		Kind:        entity.AdjustmentKind(req.Kind),
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
	})
	if err != nil {
		c.handlePartyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPartyResponse(output.Party))
}

// Ledger handles GET /parties/:id/ledger requests.
func (c *PartyController) Ledger(ctx *gin.Context) {
	partyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid party ID format",
		})
		return
	}

	output, err := c.entriesUseCase.Execute(ctx.Request.Context(), ledger.ListEntriesInput{PartyID: partyID})
	if err != nil {
		c.handlePartyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(output.Party, output.Entries))
}

// Activity handles GET /parties/activity requests. The optional startDate
// and endDate query parameters bound the aggregation window inclusively.
func (c *PartyController) Activity(ctx *gin.Context) {
	window := valueobject.DateWindow{}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format, expected YYYY-MM-DD",
			})
			return
		}
		window.Start = &startDate
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format, expected YYYY-MM-DD",
			})
			return
		}
		// Push the bound to the end of the day so the window is inclusive.
		endOfDay := endDate.Add(24*time.Hour - time.Nanosecond)
		window.End = &endOfDay
	}

	output, err := c.activityUseCase.Execute(ctx.Request.Context(), attribution.AggregateActivityInput{Window: window})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to aggregate activity",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityListResponse(output.Parties, output.Activities))
}

// Import handles POST /parties/import requests. It backfills the customer
// directory from historical transaction snapshots.
func (c *PartyController) Import(ctx *gin.Context) {
	output, err := c.importUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to import parties",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportPartiesResponse(output.Created, output.Skipped))
}

// handlePartyError maps party and ledger errors to HTTP responses.
func (c *PartyController) handlePartyError(ctx *gin.Context, err error) {
	var partyErr *domainerror.PartyError
	if errors.As(err, &partyErr) {
		ctx.JSON(statusCodeForPartyError(partyErr.Code), dto.ErrorResponse{
			Error: partyErr.Message,
			Code:  string(partyErr.Code),
		})
		return
	}

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrPartyNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Party not found",
			Code:  string(domainerror.ErrCodePartyNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForPartyError maps party error codes to HTTP status codes.
func statusCodeForPartyError(code domainerror.PartyErrorCode) int {
	switch code {
	case domainerror.ErrCodePartyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmptyPartyName, domainerror.ErrCodeInvalidPartyKind:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusCodeForLedgerError maps ledger error codes to HTTP status codes.
func statusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeLedgerPartyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNonPositiveAmount, domainerror.ErrCodeKindNotAllowed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
