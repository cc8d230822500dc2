// Package sales implementa el coordinador de la transacción de venta:
// validación de stock, deducción atómica con lock optimista, factura con
// líneas congeladas y registro en el ledger de inventario.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/domain"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

// CreateSaleUseCase coordina la creación de una venta.
//
// Secuencia: Validating → Pricing → Deducting → Persisting → Recording.
// Los pasos de mutación (Deducting en adelante) corren dentro de UNA
// transacción de BD (TxRunner): si una línea falla por CAS o un insert
// falla, todo se revierte — no queda estado parcial. El compare-and-set
// sobre inventory_balance sigue siendo la única primitiva de control de
// concurrencia: un CAS perdido aborta la venta con ErrStockConflict y el
// caller decide si reintenta (aquí nunca se reintenta internamente).
type CreateSaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	balanceRepo repository.BalanceRepository
	billRepo    repository.BillRepository
	billNumbers BillNumberSource
	pdfGen      ReceiptPDFGenerator
}

// NewCreateSaleUseCase construye el caso de uso. Los repositorios pueden ser
// nil (modo sin base de datos): las escrituras fallan con ErrStoreUnavailable
// y las lecturas degradan a vacío.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	balanceRepo repository.BalanceRepository,
	billRepo repository.BillRepository,
	billNumbers BillNumberSource,
	pdfGen ReceiptPDFGenerator,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		balanceRepo: balanceRepo,
		billRepo:    billRepo,
		billNumbers: billNumbers,
		pdfGen:      pdfGen,
	}
}

// billLine línea con los valores congelados durante la validación.
type billLine struct {
	product   *entity.Product
	quantity  decimal.Decimal
	subtotal  decimal.Decimal
	tax       decimal.Decimal
	lineTotal decimal.Decimal
}

// CreateSale crea una venta completa a partir del carrito.
//
// Validating: todas las líneas se validan ANTES de cualquier mutación; una
// línea inválida aborta la venta entera sin efectos secundarios.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.BillResponse, error) {
	if uc.txRunner == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta debe tener al menos una línea", domain.ErrInvalidInput)
	}
	if !entity.ValidPaymentMode(in.PaymentMode) {
		return nil, fmt.Errorf("%w: payment_mode debe ser cash, upi o card", domain.ErrInvalidInput)
	}

	// Validating: producto existente y saldo suficiente por cada línea,
	// congelando nombre/precio/impuesto para las líneas de la factura.
	lines := make([]billLine, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" {
			return nil, fmt.Errorf("%w: product_id es requerido en todas las líneas", domain.ErrInvalidInput)
		}
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, item.ProductID)
		}
		balance, err := uc.balanceRepo.Get(item.ProductID)
		if err != nil {
			return nil, err
		}
		if balance.QtyOnHand.LessThan(item.Quantity) {
			return nil, fmt.Errorf("%w para %s: disponible %s, solicitado %s",
				domain.ErrInsufficientStock, product.Name, balance.QtyOnHand, item.Quantity)
		}
		lines = append(lines, billLine{product: product, quantity: item.Quantity})
	}

	// Pricing: aritmética decimal exacta, sin redondeo binario.
	var subtotal, taxAmount decimal.Decimal
	for i := range lines {
		l := &lines[i]
		l.subtotal = l.product.SellingPrice.Mul(l.quantity)
		l.tax = l.subtotal.Mul(l.product.TaxRate.Div(decimal.NewFromInt(100)))
		l.lineTotal = l.subtotal.Add(l.tax)
		subtotal = subtotal.Add(l.subtotal)
		taxAmount = taxAmount.Add(l.tax)
	}
	total := subtotal.Add(taxAmount)

	now := time.Now()
	bill := &entity.SalesBill{
		ID:          uuid.New().String(),
		Subtotal:    subtotal,
		TaxAmount:   taxAmount,
		Total:       total,
		PaymentMode: in.PaymentMode,
		CreatedAt:   now,
	}
	var items []*entity.SalesBillItem

	// Deducting + Persisting + Recording dentro de una sola transacción.
	err := uc.txRunner.Run(ctx, func(
		balanceRepo repository.BalanceRepository,
		billRepo repository.BillRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		// Deducting: por cada línea, releer el saldo (pudo cambiar desde la
		// validación) y deducir con compare-and-set. Un CAS perdido significa
		// que otro escritor se adelantó: se aborta con ErrStockConflict, sin
		// reintentos; el rollback de la tx deshace las líneas ya deducidas.
		for _, l := range lines {
			balance, err := balanceRepo.Get(l.product.ID)
			if err != nil {
				return err
			}
			if balance.QtyOnHand.LessThan(l.quantity) {
				return fmt.Errorf("%w para %s: disponible %s, solicitado %s",
					domain.ErrInsufficientStock, l.product.Name, balance.QtyOnHand, l.quantity)
			}
			ok, err := balanceRepo.CompareAndSet(l.product.ID, balance.QtyOnHand, balance.QtyOnHand.Sub(l.quantity))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: producto %s", domain.ErrStockConflict, l.product.ID)
			}
		}

		// Persisting: número de factura, cabecera y líneas con snapshot.
		bill.BillNumber = uc.billNumbers.Next()
		if err := billRepo.Create(bill); err != nil {
			return err
		}
		for _, l := range lines {
			item := &entity.SalesBillItem{
				ID:          uuid.New().String(),
				BillID:      bill.ID,
				ProductID:   l.product.ID,
				ProductName: l.product.Name,
				UnitPrice:   l.product.SellingPrice,
				Quantity:    l.quantity,
				TaxRate:     l.product.TaxRate,
				LineTotal:   l.lineTotal,
			}
			if err := billRepo.CreateItem(item); err != nil {
				return err
			}
			items = append(items, item)
		}

		// Recording: una entrada de ledger por línea, delta negativo,
		// referenciando la factura. Así cada mutación de saldo queda
		// emparejada con exactamente una entrada.
		for _, l := range lines {
			entry := &entity.InventoryLedgerEntry{
				ProductID:   l.product.ID,
				QtyDelta:    l.quantity.Neg(),
				Reason:      entity.LedgerReasonSale,
				ReferenceID: bill.ID,
				Notes:       "Sale: " + bill.BillNumber,
				CreatedAt:   now,
			}
			if err := ledgerRepo.Append(entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toBillResponse(bill, items), nil
}

func toBillResponse(bill *entity.SalesBill, items []*entity.SalesBillItem) *dto.BillResponse {
	resp := &dto.BillResponse{
		ID:          bill.ID,
		BillNumber:  bill.BillNumber,
		Subtotal:    bill.Subtotal,
		TaxAmount:   bill.TaxAmount,
		Total:       bill.Total,
		PaymentMode: bill.PaymentMode,
		CreatedAt:   bill.CreatedAt,
		Items:       make([]dto.BillItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.BillItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			TaxRate:     it.TaxRate,
			LineTotal:   it.LineTotal,
		})
	}
	return resp
}
