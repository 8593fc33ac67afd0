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
	"github.com/repairdesk/backend/internal/application/usecase/sale"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
	"github.com/repairdesk/backend/internal/integration/entrypoint/dto"
)

// SaleController handles phone sale and product sale endpoints.
type SaleController struct {
	createPhoneSaleUseCase   *sale.CreatePhoneSaleUseCase
	listPhoneSalesUseCase    *sale.ListPhoneSalesUseCase
	deletePhoneSaleUseCase   *sale.DeletePhoneSaleUseCase
	createProductSaleUseCase *sale.CreateProductSaleUseCase
	listProductSalesUseCase  *sale.ListProductSalesUseCase
	deleteProductSaleUseCase *sale.DeleteProductSaleUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	createPhoneSaleUseCase *sale.CreatePhoneSaleUseCase,
	listPhoneSalesUseCase *sale.ListPhoneSalesUseCase,
	deletePhoneSaleUseCase *sale.DeletePhoneSaleUseCase,
	createProductSaleUseCase *sale.CreateProductSaleUseCase,
	listProductSalesUseCase *sale.ListProductSalesUseCase,
	deleteProductSaleUseCase *sale.DeleteProductSaleUseCase,
) *SaleController {
	return &SaleController{
		createPhoneSaleUseCase:   createPhoneSaleUseCase,
		listPhoneSalesUseCase:    listPhoneSalesUseCase,
		deletePhoneSaleUseCase:   deletePhoneSaleUseCase,
		createProductSaleUseCase: createProductSaleUseCase,
		listProductSalesUseCase:  listProductSalesUseCase,
		deleteProductSaleUseCase: deleteProductSaleUseCase,
	}
}

// ListPhoneSales handles GET /phone-sales requests.
func (c *SaleController) ListPhoneSales(ctx *gin.Context) {
	filter, ok := parseSaleFilter(ctx)
	if !ok {
		return
	}

	output, err := c.listPhoneSalesUseCase.Execute(ctx.Request.Context(), sale.ListSalesInput{Filter: filter})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve phone sales",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPhoneSaleListResponse(output.Sales))
}

// CreatePhoneSale handles POST /phone-sales requests.
func (c *SaleController) CreatePhoneSale(ctx *gin.Context) {
	var req dto.CreatePhoneSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createPhoneSaleUseCase.Execute(ctx.Request.Context(), sale.CreatePhoneSaleInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Brand:         req.Brand,
		Model:         req.Model,
		IMEI:          req.IMEI,
		PurchasePrice: decimal.NewFromFloat(req.PurchasePrice),
		SalePrice:     decimal.NewFromFloat(req.SalePrice),
	})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPhoneSaleResponse(output.Sale))
}

// DeletePhoneSale handles DELETE /phone-sales/:id requests.
func (c *SaleController) DeletePhoneSale(ctx *gin.Context) {
	saleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID format",
		})
		return
	}

	if err := c.deletePhoneSaleUseCase.Execute(ctx.Request.Context(), saleID); err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListProductSales handles GET /product-sales requests.
func (c *SaleController) ListProductSales(ctx *gin.Context) {
	filter, ok := parseSaleFilter(ctx)
	if !ok {
		return
	}

	output, err := c.listProductSalesUseCase.Execute(ctx.Request.Context(), sale.ListSalesInput{Filter: filter})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve product sales",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductSaleListResponse(output.Sales))
}

// CreateProductSale handles POST /product-sales requests.
func (c *SaleController) CreateProductSale(ctx *gin.Context) {
	var req dto.CreateProductSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	output, err := c.createProductSaleUseCase.Execute(ctx.Request.Context(), sale.CreateProductSaleInput{
		ProductID:     productID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Quantity:      req.Quantity,
	})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductSaleResponse(output.Sale))
}

// DeleteProductSale handles DELETE /product-sales/:id requests.
func (c *SaleController) DeleteProductSale(ctx *gin.Context) {
	saleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID format",
		})
		return
	}

	if err := c.deleteProductSaleUseCase.Execute(ctx.Request.Context(), saleID); err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseSaleFilter extracts the shared sale filter query parameters. It writes
// the error response itself and reports success via the bool.
func parseSaleFilter(ctx *gin.Context) (adapter.SaleFilter, bool) {
	var filter adapter.SaleFilter

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format, expected YYYY-MM-DD",
			})
			return filter, false
		}
		filter.StartDate = &startDate
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format, expected YYYY-MM-DD",
			})
			return filter, false
		}
		endOfDay := endDate.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &endOfDay
	}
	filter.Search = ctx.Query("search")

	return filter, true
}

// handleSaleError maps sale errors to HTTP responses.
func (c *SaleController) handleSaleError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		ctx.JSON(statusCodeForSaleError(saleErr.Code), dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForSaleError maps sale error codes to HTTP status codes.
func statusCodeForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodePhoneSaleNotFound,
		domainerror.ErrCodeProductSaleNotFound,
		domainerror.ErrCodeProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmptyProductName,
		domainerror.ErrCodeNonPositiveQuantity,
		domainerror.ErrCodeNegativePrice:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
