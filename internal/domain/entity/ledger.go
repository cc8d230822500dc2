package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Motivos de movimiento del ledger de inventario.
// Delta positivo para entradas (PURCHASE, RETURN, ADJUSTMENT+),
// negativo para salidas (SALE, ADJUSTMENT-).
const (
	LedgerReasonPurchase   = "PURCHASE"
	LedgerReasonAdjustment = "ADJUSTMENT"
	LedgerReasonReturn     = "RETURN"
	LedgerReasonSale       = "SALE"
)

// ValidLedgerReason indica si el motivo pertenece al enumerado.
func ValidLedgerReason(reason string) bool {
	switch reason {
	case LedgerReasonPurchase, LedgerReasonAdjustment, LedgerReasonReturn, LedgerReasonSale:
		return true
	}
	return false
}

// InventoryLedgerEntry es un registro inmutable del ledger de stock.
// Una vez escrito nunca se modifica ni se borra: el ledger es la fuente
// de verdad del historial de inventario.
type InventoryLedgerEntry struct {
	ID          string
	ProductID   string
	QtyDelta    decimal.Decimal
	Reason      string
	ReferenceID string // ID de la factura de venta que lo originó (opcional)
	Notes       string
	CreatedAt   time.Time
}

// InventoryBalance es la vista materializada del stock actual por producto.
// Invariante: QtyOnHand == suma de todos los QtyDelta del ledger del producto.
// Es el único estado mutable y disputado del sistema; cada mutación debe ir
// acompañada de exactamente una entrada en el ledger.
type InventoryBalance struct {
	ProductID string
	QtyOnHand decimal.Decimal
	UpdatedAt time.Time
}
