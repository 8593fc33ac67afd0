// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	Barcode   string  `json:"barcode"`
	CostPrice float64 `json:"cost_price" binding:"gte=0"`
	SalePrice float64 `json:"sale_price" binding:"gte=0"`
	Stock     int     `json:"stock" binding:"gte=0"`
}

// UpdateProductRequest represents the request body for product update.
// Omitted fields are left untouched.
type UpdateProductRequest struct {
	Name      *string  `json:"name,omitempty"`
	Barcode   *string  `json:"barcode,omitempty"`
	CostPrice *float64 `json:"cost_price,omitempty"`
	SalePrice *float64 `json:"sale_price,omitempty"`
	Stock     *int     `json:"stock,omitempty"`
}

// ProductResponse represents a catalog product in API responses.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Barcode   string    `json:"barcode"`
	CostPrice string    `json:"cost_price"`
	SalePrice string    `json:"sale_price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse represents a list of catalog products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID.String(),
		Name:      product.Name,
		Barcode:   product.Barcode,
		CostPrice: product.CostPrice.String(),
		SalePrice: product.SalePrice.String(),
		Stock:     product.Stock,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

// ToProductListResponse converts a slice of products to a ProductListResponse DTO.
func ToProductListResponse(products []*entity.Product) ProductListResponse {
	response := ProductListResponse{
		Products: make([]ProductResponse, len(products)),
	}
	for i, p := range products {
		response.Products[i] = ToProductResponse(p)
	}
	return response
}
