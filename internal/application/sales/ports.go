package sales

import (
	"context"

	"github.com/tu-usuario/retail-boss/internal/domain/entity"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que deducción de saldos, factura,
// líneas y entradas del ledger se confirmen o reviertan juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		balanceRepo repository.BalanceRepository,
		billRepo repository.BillRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}

// BillNumberSource produce el siguiente número de factura.
type BillNumberSource interface {
	Next() string
}

// ReceiptPDFGenerator genera la representación PDF de una factura de venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, bill *entity.SalesBill, items []*entity.SalesBillItem) ([]byte, error)
}
