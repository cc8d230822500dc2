package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// El ID es inmutable; el stock NO vive aquí: se deriva del ledger de
// inventario y se materializa en InventoryBalance.
type Product struct {
	ID           string
	SKU          string // código único
	Barcode      string // EAN-13, único; vacío = sin asignar
	Name         string
	Unit         string          // unidad de medida (pcs, kg, pack)
	MRP          decimal.Decimal // precio máximo de venta impreso (opcional)
	SellingPrice decimal.Decimal // precio de venta, >= 0
	TaxRate      decimal.Decimal // porcentaje, >= 0 (ej. 5 = 5%)
	MinLevel     decimal.Decimal // nivel mínimo antes de alertar reposición
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
