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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, barcode, name, unit, mrp, selling_price, tax_rate, min_level, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Barcode, product.Name, product.Unit,
		product.MRP, product.SellingPrice, product.TaxRate, product.MinLevel,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy(`id = $1`, id)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getBy(`sku = $1`, sku)
}

// GetByBarcode obtiene un producto por código de barras.
func (r *ProductRepo) GetByBarcode(code string) (*entity.Product, error) {
	return r.getBy(`barcode = $1`, code)
}

func (r *ProductRepo) getBy(where string, arg any) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + where
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.SKU, &p.Barcode, &p.Name, &p.Unit,
		&p.MRP, &p.SellingPrice, &p.TaxRate, &p.MinLevel,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente. SKU y barcode son inmutables.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, unit = $3, mrp = $4, selling_price = $5, tax_rate = $6, min_level = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Unit, product.MRP,
		product.SellingPrice, product.TaxRate, product.MinLevel, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListWithStock lista el catálogo con el saldo actual de cada producto.
// LEFT JOIN: un producto sin fila de saldo aún cuenta con stock cero.
func (r *ProductRepo) ListWithStock(limit, offset int) ([]repository.ProductWithStock, error) {
	query := `
		SELECT p.id, p.sku, p.barcode, p.name, p.unit, p.mrp, p.selling_price, p.tax_rate, p.min_level, p.created_at, p.updated_at,
		       COALESCE(b.qty_on_hand, 0)
		FROM products p
		LEFT JOIN inventory_balance b ON b.product_id = p.id
		ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductWithStock
	for rows.Next() {
		var row repository.ProductWithStock
		p := &row.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Barcode, &p.Name, &p.Unit,
			&p.MRP, &p.SellingPrice, &p.TaxRate, &p.MinLevel,
			&p.CreatedAt, &p.UpdatedAt, &row.QtyOnHand); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
