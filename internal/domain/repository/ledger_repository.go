package repository

import "github.com/tu-usuario/retail-boss/internal/domain/entity"

// LedgerRepository define el puerto del ledger de inventario (append-only).
// Las entradas jamás se actualizan ni se borran.
type LedgerRepository interface {
	// Append inserta una entrada inmutable. Retorna domain.ErrNotFound si el
	// producto referenciado no existe.
	Append(entry *entity.InventoryLedgerEntry) error
	ListByProduct(productID string, limit, offset int) ([]*entity.InventoryLedgerEntry, error)
}
