package inventory

import (
	"context"

	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la mutación del saldo y su
// entrada de ledger se confirmen juntas.
type TxRunner interface {
	RunMovement(ctx context.Context, fn func(
		balanceRepo repository.BalanceRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
