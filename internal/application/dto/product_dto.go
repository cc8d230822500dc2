package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Barcode es opcional: si llega vacío se genera uno EAN-13 único.
type CreateProductRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=100"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Barcode      string          `json:"barcode" validate:"omitempty,len=13,numeric"`
	Unit         string          `json:"unit" validate:"required"`
	MRP          decimal.Decimal `json:"mrp"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	MinLevel     decimal.Decimal `json:"min_level"`
}

// UpdateProductRequest entrada para actualizar un producto (ID inmutable).
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit         *string          `json:"unit"`
	MRP          *decimal.Decimal `json:"mrp"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	TaxRate      *decimal.Decimal `json:"tax_rate"`
	MinLevel     *decimal.Decimal `json:"min_level"`
}

// ProductResponse salida de un producto con su stock actual.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	MRP          decimal.Decimal `json:"mrp"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	MinLevel     decimal.Decimal `json:"min_level"`
	QtyOnHand    decimal.Decimal `json:"qty_on_hand"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}
