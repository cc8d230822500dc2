package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo implementación de BalanceRepository sobre PostgreSQL (usable con pool o tx).
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// Get obtiene el saldo actual de un producto; saldo cero si no hay fila.
func (r *BalanceRepo) Get(productID string) (*entity.InventoryBalance, error) {
	query := `
		SELECT product_id, qty_on_hand, updated_at
		FROM inventory_balance WHERE product_id = $1`
	var b entity.InventoryBalance
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&b.ProductID, &b.QtyOnHand, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryBalance{ProductID: productID, QtyOnHand: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &b, nil
}

// Init crea la fila de saldo en 0 para un producto recién creado.
func (r *BalanceRepo) Init(productID string) error {
	query := `
		INSERT INTO inventory_balance (product_id, qty_on_hand, updated_at)
		VALUES ($1, 0, now())
		ON CONFLICT (product_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, productID)
	if err != nil {
		return fmt.Errorf("init balance: %w", err)
	}
	return nil
}

// CompareAndSet actualiza qty_on_hand SOLO si su valor actual sigue siendo
// expectedQty. El WHERE con el valor esperado es el lock optimista completo:
// 0 filas afectadas significa que otro escritor llegó primero.
func (r *BalanceRepo) CompareAndSet(productID string, expectedQty, newQty decimal.Decimal) (bool, error) {
	query := `
		UPDATE inventory_balance
		SET qty_on_hand = $3, updated_at = now()
		WHERE product_id = $1 AND qty_on_hand = $2`
	cmd, err := r.q.Exec(context.Background(), query, productID, expectedQty, newQty)
	if err != nil {
		return false, fmt.Errorf("compare-and-set balance: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}
