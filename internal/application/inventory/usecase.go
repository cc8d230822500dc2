// Package inventory implementa el ledger de stock: movimientos manuales
// (compras, ajustes, devoluciones), consulta del ledger y el resumen de
// inventario de la tienda.
package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/domain"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

// UseCase operaciones sobre el ledger y el saldo de inventario.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	balanceRepo repository.BalanceRepository
	ledgerRepo  repository.LedgerRepository
}

// NewUseCase construye el caso de uso. Repositorios nil = modo sin base de
// datos: las escrituras fallan con ErrStoreUnavailable, las lecturas degradan.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	balanceRepo repository.BalanceRepository,
	ledgerRepo repository.LedgerRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		balanceRepo: balanceRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// RegisterMovement registra un movimiento manual de stock (PURCHASE,
// ADJUSTMENT o RETURN; las salidas por venta pasan por el coordinador de
// ventas). La mutación del saldo va emparejada con exactamente una entrada
// de ledger, dentro de una transacción.
//
// Convención de signos: PURCHASE y RETURN exigen delta positivo; ADJUSTMENT
// admite ambos signos pero nunca puede dejar el saldo por debajo de cero.
func (uc *UseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.LedgerEntryResponse, error) {
	if uc.txRunner == nil {
		return nil, domain.ErrStoreUnavailable
	}
	switch in.Reason {
	case entity.LedgerReasonPurchase, entity.LedgerReasonReturn:
		if !in.QtyDelta.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: %s exige delta positivo", domain.ErrInvalidInput, in.Reason)
		}
	case entity.LedgerReasonAdjustment:
		if in.QtyDelta.IsZero() {
			return nil, fmt.Errorf("%w: el delta no puede ser cero", domain.ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("%w: motivo %q no permitido", domain.ErrInvalidInput, in.Reason)
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}

	var entry *entity.InventoryLedgerEntry
	err = uc.txRunner.RunMovement(ctx, func(
		balanceRepo repository.BalanceRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		balance, err := balanceRepo.Get(in.ProductID)
		if err != nil {
			return err
		}
		newQty := balance.QtyOnHand.Add(in.QtyDelta)
		if newQty.LessThan(decimal.Zero) {
			return fmt.Errorf("%w para %s: disponible %s, ajuste %s",
				domain.ErrInsufficientStock, product.Name, balance.QtyOnHand, in.QtyDelta)
		}
		ok, err := balanceRepo.CompareAndSet(in.ProductID, balance.QtyOnHand, newQty)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: producto %s", domain.ErrStockConflict, in.ProductID)
		}
		entry = &entity.InventoryLedgerEntry{
			ProductID: in.ProductID,
			QtyDelta:  in.QtyDelta,
			Reason:    in.Reason,
			Notes:     in.Notes,
		}
		return ledgerRepo.Append(entry)
	})
	if err != nil {
		return nil, err
	}
	return toLedgerEntryResponse(entry), nil
}

// CurrentBalance retorna el saldo actual del producto; cero sin fila o sin base.
func (uc *UseCase) CurrentBalance(ctx context.Context, productID string) (decimal.Decimal, error) {
	if uc.balanceRepo == nil {
		return decimal.Zero, nil
	}
	balance, err := uc.balanceRepo.Get(productID)
	if err != nil {
		return decimal.Zero, err
	}
	return balance.QtyOnHand, nil
}

// Ledger lista el historial de movimientos de un producto junto con su
// saldo actual.
func (uc *UseCase) Ledger(ctx context.Context, productID string, page dto.PageRequest) (*dto.LedgerListResponse, error) {
	page.DefaultPage()
	out := &dto.LedgerListResponse{ProductID: productID, QtyOnHand: decimal.Zero, Entries: []dto.LedgerEntryResponse{}}
	if uc.ledgerRepo == nil {
		return out, nil
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	balance, err := uc.balanceRepo.Get(productID)
	if err != nil {
		return nil, err
	}
	out.QtyOnHand = balance.QtyOnHand
	entries, err := uc.ledgerRepo.ListByProduct(productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, *toLedgerEntryResponse(e))
	}
	return out, nil
}

// Overview resumen de inventario: estadísticas + estado por producto.
// Sin base de datos retorna el payload de demostración de la tienda.
func (uc *UseCase) Overview(ctx context.Context) (*dto.InventoryOverviewResponse, error) {
	if uc.productRepo == nil {
		return mockOverview(), nil
	}
	rows, err := uc.productRepo.ListWithStock(500, 0)
	if err != nil {
		return nil, err
	}

	out := &dto.InventoryOverviewResponse{Products: []dto.InventoryProduct{}}
	stockValue := decimal.Zero
	for _, row := range rows {
		p, qty := row.Product, row.QtyOnHand
		if qty.GreaterThan(decimal.Zero) {
			out.Stats.InStock++
		}
		low := qty.LessThan(p.MinLevel)
		if low {
			out.Stats.LowStock++
		}
		stockValue = stockValue.Add(qty.Mul(p.SellingPrice))

		status := "Good Stock"
		forecast := "Stable"
		if low {
			status = "Low Stock"
			forecast = "Reorder now"
			if qty.LessThan(p.MinLevel.Div(decimal.NewFromInt(2))) {
				status = "Critical"
				forecast = "Urgent!"
			}
		}
		out.Products = append(out.Products, dto.InventoryProduct{
			ID:       p.ID,
			Name:     p.Name,
			Stock:    qty,
			MinLevel: p.MinLevel,
			Status:   status,
			Forecast: forecast,
			Price:    p.SellingPrice,
		})
	}
	out.Stats.StockValue = stockValue
	return out, nil
}

func toLedgerEntryResponse(e *entity.InventoryLedgerEntry) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:          e.ID,
		ProductID:   e.ProductID,
		QtyDelta:    e.QtyDelta,
		Reason:      e.Reason,
		ReferenceID: e.ReferenceID,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}

// mockOverview payload de demostración cuando no hay base configurada.
func mockOverview() *dto.InventoryOverviewResponse {
	n := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	return &dto.InventoryOverviewResponse{
		Stats: dto.InventoryStats{
			InStock:      236,
			LowStock:     12,
			ExpiringSoon: 8,
			StockValue:   n(240000),
		},
		Products: []dto.InventoryProduct{
			{ID: "MAG001", Name: "Maggi Noodles 2-Min", Stock: n(45), MinLevel: n(20), Status: "Good Stock", Forecast: "High demand", Price: n(12)},
			{ID: "PAR002", Name: "Parle-G Biscuits", Stock: n(8), MinLevel: n(15), Status: "Low Stock", Forecast: "Reorder now", Price: n(10)},
			{ID: "TEA003", Name: "Tata Tea Gold", Stock: n(32), MinLevel: n(25), Status: "Good Stock", Forecast: "Stable", Price: n(250)},
			{ID: "AMU004", Name: "Amul Butter 500g", Stock: n(3), MinLevel: n(10), Status: "Critical", Forecast: "Urgent!", Price: n(55)},
		},
	}
}
