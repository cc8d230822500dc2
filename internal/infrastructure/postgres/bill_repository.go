package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-boss/internal/domain"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación de BillRepository sobre PostgreSQL (usable con pool o tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador de facturas. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create persiste la cabecera de una factura.
func (r *BillRepo) Create(bill *entity.SalesBill) error {
	query := `
		INSERT INTO sales_bills (id, bill_number, subtotal, tax_amount, total, payment_mode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		bill.ID, bill.BillNumber, bill.Subtotal, bill.TaxAmount,
		bill.Total, bill.PaymentMode, bill.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// Dos ventas simultáneas pueden resolver el mismo consecutivo; el
			// índice único sobre bill_number convierte esa carrera en error.
			return fmt.Errorf("%w: bill_number %s", domain.ErrDuplicate, bill.BillNumber)
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de factura con su snapshot de producto.
func (r *BillRepo) CreateItem(item *entity.SalesBillItem) error {
	query := `
		INSERT INTO sales_bill_items (id, bill_id, product_id, product_name, unit_price, quantity, tax_rate, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.BillID, item.ProductID, item.ProductName,
		item.UnitPrice, item.Quantity, item.TaxRate, item.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert bill item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una factura.
func (r *BillRepo) GetByID(id string) (*entity.SalesBill, error) {
	query := `
		SELECT id, bill_number, subtotal, tax_amount, total, payment_mode, created_at
		FROM sales_bills WHERE id = $1`
	var b entity.SalesBill
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.BillNumber, &b.Subtotal, &b.TaxAmount, &b.Total, &b.PaymentMode, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return &b, nil
}

// GetItems obtiene las líneas de una factura.
func (r *BillRepo) GetItems(billID string) ([]*entity.SalesBillItem, error) {
	query := `
		SELECT id, bill_id, product_id, product_name, unit_price, quantity, tax_rate, line_total
		FROM sales_bill_items WHERE bill_id = $1 ORDER BY product_name`
	rows, err := r.q.Query(context.Background(), query, billID)
	if err != nil {
		return nil, fmt.Errorf("list bill items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesBillItem
	for rows.Next() {
		var it entity.SalesBillItem
		if err := rows.Scan(&it.ID, &it.BillID, &it.ProductID, &it.ProductName,
			&it.UnitPrice, &it.Quantity, &it.TaxRate, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan bill item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListRecent lista facturas ordenadas por recencia.
func (r *BillRepo) ListRecent(limit int) ([]*entity.SalesBill, error) {
	query := `
		SELECT id, bill_number, subtotal, tax_amount, total, payment_mode, created_at
		FROM sales_bills ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesBill
	for rows.Next() {
		var b entity.SalesBill
		if err := rows.Scan(&b.ID, &b.BillNumber, &b.Subtotal, &b.TaxAmount,
			&b.Total, &b.PaymentMode, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// LastNumberWithPrefix retorna el mayor bill_number con el prefijo dado.
// El sufijo es de ancho fijo, así que el orden lexicográfico es el numérico.
func (r *BillRepo) LastNumberWithPrefix(prefix string) (string, error) {
	query := `
		SELECT bill_number FROM sales_bills
		WHERE bill_number LIKE $1 || '%'
		ORDER BY bill_number DESC LIMIT 1`
	var number string
	err := r.q.QueryRow(context.Background(), query, prefix).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last bill number: %w", err)
	}
	return number, nil
}
