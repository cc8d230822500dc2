package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
)

// ProductWithStock producto junto con su saldo actual (join con inventory_balance).
type ProductWithStock struct {
	Product   entity.Product
	QtyOnHand decimal.Decimal
}

// ProductRepository define el puerto de persistencia del catálogo de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetByBarcode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	// ListWithStock lista el catálogo con el qty_on_hand actual de cada producto.
	ListWithStock(limit, offset int) ([]ProductWithStock, error)
}
