package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
)

// BalanceRepository define el puerto del saldo de stock por producto.
// El saldo es la única pieza de estado mutable y disputada del sistema; la
// única primitiva de control de concurrencia es CompareAndSet.
type BalanceRepository interface {
	// Get retorna el saldo actual; saldo cero si no existe fila para el producto.
	Get(productID string) (*entity.InventoryBalance, error)
	// Init crea la fila de saldo en 0 para un producto recién creado.
	Init(productID string) error
	// CompareAndSet actualiza qty_on_hand a newQty SOLO si su valor actual
	// sigue siendo expectedQty (optimistic lock). Retorna false si otro
	// escritor cambió el saldo primero (0 filas afectadas).
	CompareAndSet(productID string, expectedQty, newQty decimal.Decimal) (bool, error)
}
