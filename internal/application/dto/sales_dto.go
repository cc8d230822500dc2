package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea del carrito.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateSaleRequest entrada para crear una venta.
type CreateSaleRequest struct {
	Items       []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMode string            `json:"payment_mode" validate:"required,oneof=cash upi card"`
}

// BillItemResponse línea de factura con los valores congelados a la venta.
type BillItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    decimal.Decimal `json:"quantity"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// BillResponse factura completa con sus líneas.
type BillResponse struct {
	ID          string             `json:"id"`
	BillNumber  string             `json:"bill_number"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
	TaxAmount   decimal.Decimal    `json:"tax_amount"`
	Total       decimal.Decimal    `json:"total"`
	PaymentMode string             `json:"payment_mode"`
	CreatedAt   time.Time          `json:"created_at"`
	Items       []BillItemResponse `json:"items"`
}

// SaleListResponse lista de facturas recientes.
type SaleListResponse struct {
	Sales []BillResponse `json:"sales"`
}
