package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/retail-boss/internal/domain"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: aquí no hay UPDATE ni DELETE.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append inserta una entrada inmutable del ledger.
func (r *LedgerRepo) Append(entry *entity.InventoryLedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO inventory_ledger (id, product_id, qty_delta, reason, reference_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	referenceID := (*string)(nil)
	if entry.ReferenceID != "" {
		referenceID = &entry.ReferenceID
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.QtyDelta, entry.Reason,
		referenceID, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, entry.ProductID)
		}
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// ListByProduct lista las entradas de un producto, más recientes primero.
func (r *LedgerRepo) ListByProduct(productID string, limit, offset int) ([]*entity.InventoryLedgerEntry, error) {
	query := `
		SELECT id, product_id, qty_delta, reason, COALESCE(reference_id, ''), notes, created_at
		FROM inventory_ledger
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLedgerEntry
	for rows.Next() {
		var e entity.InventoryLedgerEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.QtyDelta, &e.Reason,
			&e.ReferenceID, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
