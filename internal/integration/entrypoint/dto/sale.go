// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// CreatePhoneSaleRequest represents the request body for phone sale creation.
type CreatePhoneSaleRequest struct {
	CustomerName  string  `json:"customer_name" binding:"required,min=1,max=255"`
	CustomerPhone string  `json:"customer_phone"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	IMEI          string  `json:"imei"`
	PurchasePrice float64 `json:"purchase_price" binding:"gte=0"`
	SalePrice     float64 `json:"sale_price" binding:"gte=0"`
}

// CreateProductSaleRequest represents the request body for product sale creation.
type CreateProductSaleRequest struct {
	ProductID     string `json:"product_id" binding:"required,uuid"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
}

// PhoneSaleResponse represents a phone sale in API responses.
type PhoneSaleResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	IMEI          string    `json:"imei"`
	PurchasePrice string    `json:"purchase_price"`
	SalePrice     string    `json:"sale_price"`
	Profit        string    `json:"profit"`
	CreatedAt     time.Time `json:"created_at"`
}

// PhoneSaleListResponse represents a list of phone sales.
type PhoneSaleListResponse struct {
	Sales []PhoneSaleResponse `json:"sales"`
}

// ProductSaleResponse represents a product sale in API responses.
type ProductSaleResponse struct {
	ID            string    `json:"id"`
	ProductID     *string   `json:"product_id,omitempty"`
	ProductName   string    `json:"product_name"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Quantity      int       `json:"quantity"`
	UnitPrice     string    `json:"unit_price"`
	TotalPrice    string    `json:"total_price"`
	TotalProfit   string    `json:"total_profit"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProductSaleListResponse represents a list of product sales.
type ProductSaleListResponse struct {
	Sales []ProductSaleResponse `json:"sales"`
}

// ToPhoneSaleResponse converts a domain PhoneSale entity to a DTO.
func ToPhoneSaleResponse(sale *entity.PhoneSale) PhoneSaleResponse {
	return PhoneSaleResponse{
		ID:            sale.ID.String(),
		CustomerName:  sale.CustomerName,
		CustomerPhone: sale.CustomerPhone,
		Brand:         sale.Brand,
		Model:         sale.Model,
		IMEI:          sale.IMEI,
		PurchasePrice: sale.PurchasePrice.String(),
		SalePrice:     sale.SalePrice.String(),
		Profit:        sale.Profit().String(),
		CreatedAt:     sale.CreatedAt,
	}
}

// ToPhoneSaleListResponse converts a slice of phone sales to a DTO.
func ToPhoneSaleListResponse(sales []*entity.PhoneSale) PhoneSaleListResponse {
	response := PhoneSaleListResponse{
		Sales: make([]PhoneSaleResponse, len(sales)),
	}
	for i, s := range sales {
		response.Sales[i] = ToPhoneSaleResponse(s)
	}
	return response
}

// ToProductSaleResponse converts a domain ProductSale entity to a DTO.
func ToProductSaleResponse(sale *entity.ProductSale) ProductSaleResponse {
	response := ProductSaleResponse{
		ID:            sale.ID.String(),
		ProductName:   sale.ProductName,
		CustomerName:  sale.CustomerName,
		CustomerPhone: sale.CustomerPhone,
		Quantity:      sale.Quantity,
		UnitPrice:     sale.UnitPrice.String(),
		TotalPrice:    sale.TotalPrice().String(),
		TotalProfit:   sale.TotalProfit().String(),
		CreatedAt:     sale.CreatedAt,
	}
	if sale.ProductID != nil {
		id := sale.ProductID.String()
		response.ProductID = &id
	}
	return response
}

// ToProductSaleListResponse converts a slice of product sales to a DTO.
func ToProductSaleListResponse(sales []*entity.ProductSale) ProductSaleListResponse {
	response := ProductSaleListResponse{
		Sales: make([]ProductSaleResponse, len(sales)),
	}
	for i, s := range sales {
		response.Sales[i] = ToProductSaleResponse(s)
	}
	return response
}
