package repository

import "github.com/tu-usuario/retail-boss/internal/domain/entity"

// BillRepository define el puerto de persistencia de facturas de venta.
// Cabecera y líneas son inmutables una vez creadas.
type BillRepository interface {
	Create(bill *entity.SalesBill) error
	CreateItem(item *entity.SalesBillItem) error
	GetByID(id string) (*entity.SalesBill, error)
	GetItems(billID string) ([]*entity.SalesBillItem, error)
	// ListRecent lista facturas ordenadas por recencia.
	ListRecent(limit int) ([]*entity.SalesBill, error)
	// LastNumberWithPrefix retorna el mayor bill_number (orden lexicográfico)
	// que empiece con el prefijo dado; cadena vacía si no hay ninguno.
	LastNumberWithPrefix(prefix string) (string, error)
}
