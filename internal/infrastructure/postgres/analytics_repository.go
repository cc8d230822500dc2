package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas para dashboard y analítica.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de agregados. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// SalesTotalBetween suma el total facturado en [from, to).
func (r *AnalyticsRepo) SalesTotalBetween(from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total), 0) FROM sales_bills WHERE created_at >= $1 AND created_at < $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sales total: %w", err)
	}
	return total, nil
}

// CountProducts cuenta los productos del catálogo.
func (r *AnalyticsRepo) CountProducts() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// CountLowStock cuenta productos con saldo por debajo de su nivel mínimo.
func (r *AnalyticsRepo) CountLowStock() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `
		SELECT COUNT(*)
		FROM products p
		LEFT JOIN inventory_balance b ON b.product_id = p.id
		WHERE COALESCE(b.qty_on_hand, 0) < p.min_level`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}
