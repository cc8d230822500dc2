package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest entrada para registrar un movimiento de stock
// (entrada de mercancía, ajuste o devolución; las ventas salen por /sales).
type RegisterMovementRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	QtyDelta  decimal.Decimal `json:"qty_delta"`
	Reason    string          `json:"reason" validate:"required,oneof=PURCHASE ADJUSTMENT RETURN"`
	Notes     string          `json:"notes"`
}

// LedgerEntryResponse una entrada del ledger.
type LedgerEntryResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	QtyDelta    decimal.Decimal `json:"qty_delta"`
	Reason      string          `json:"reason"`
	ReferenceID string          `json:"reference_id,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LedgerListResponse ledger paginado de un producto con su saldo actual.
type LedgerListResponse struct {
	ProductID string                `json:"product_id"`
	QtyOnHand decimal.Decimal       `json:"qty_on_hand"`
	Entries   []LedgerEntryResponse `json:"entries"`
}

// InventoryStats estadísticas del resumen de inventario.
type InventoryStats struct {
	InStock      int             `json:"inStock"`
	LowStock     int             `json:"lowStock"`
	ExpiringSoon int             `json:"expiringSoon"`
	StockValue   decimal.Decimal `json:"stockValue"`
}

// InventoryProduct fila de producto en el resumen de inventario.
type InventoryProduct struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Stock    decimal.Decimal `json:"stock"`
	MinLevel decimal.Decimal `json:"minLevel"`
	Status   string          `json:"status"`
	Forecast string          `json:"forecast"`
	Price    decimal.Decimal `json:"price"`
}

// InventoryOverviewResponse resumen de inventario para la vista principal.
type InventoryOverviewResponse struct {
	Stats    InventoryStats     `json:"stats"`
	Products []InventoryProduct `json:"products"`
}
