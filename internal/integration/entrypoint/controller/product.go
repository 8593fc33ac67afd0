// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/application/usecase/product"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
	"github.com/repairdesk/backend/internal/integration/entrypoint/dto"
)

// ProductController handles product catalog endpoints.
type ProductController struct {
	createUseCase *product.CreateProductUseCase
	updateUseCase *product.UpdateProductUseCase
	listUseCase   *product.ListProductsUseCase
	deleteUseCase *product.DeleteProductUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	createUseCase *product.CreateProductUseCase,
	updateUseCase *product.UpdateProductUseCase,
	listUseCase *product.ListProductsUseCase,
	deleteUseCase *product.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve products",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Products))
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), product.CreateProductInput{
		Name:      req.Name,
		Barcode:   req.Barcode,
		CostPrice: decimal.NewFromFloat(req.CostPrice),
		SalePrice: decimal.NewFromFloat(req.SalePrice),
		Stock:     req.Stock,
	})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product))
}

// Update handles PATCH /products/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	patch := adapter.ProductPatch{
		Name:    req.Name,
		Barcode: req.Barcode,
		Stock:   req.Stock,
	}
	if req.CostPrice != nil {
		price := decimal.NewFromFloat(*req.CostPrice)
		patch.CostPrice = &price
	}
	if req.SalePrice != nil {
		price := decimal.NewFromFloat(*req.SalePrice)
		patch.SalePrice = &price
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), product.UpdateProductInput{
		ProductID: productID,
		Patch:     patch,
	})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Delete handles DELETE /products/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), productID); err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleProductError maps product catalog errors to HTTP responses. The
// catalog shares the sale error family.
func (c *ProductController) handleProductError(ctx *gin.Context, err error) {
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
