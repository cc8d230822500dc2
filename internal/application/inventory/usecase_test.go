package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/domain"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

type memProductRepo struct {
	products map[string]*entity.Product
	stock    map[string]decimal.Decimal
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error)      { return nil, nil }
func (r *memProductRepo) GetByBarcode(code string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(p *entity.Product) error                    { return nil }
func (r *memProductRepo) ListWithStock(limit, offset int) ([]repository.ProductWithStock, error) {
	var out []repository.ProductWithStock
	for id, p := range r.products {
		out = append(out, repository.ProductWithStock{Product: *p, QtyOnHand: r.stock[id]})
	}
	return out, nil
}

type memBalanceRepo struct {
	balances  map[string]decimal.Decimal
	beforeCAS func(productID string)
}

func (r *memBalanceRepo) Get(productID string) (*entity.InventoryBalance, error) {
	return &entity.InventoryBalance{ProductID: productID, QtyOnHand: r.balances[productID]}, nil
}
func (r *memBalanceRepo) Init(productID string) error {
	r.balances[productID] = decimal.Zero
	return nil
}
func (r *memBalanceRepo) CompareAndSet(productID string, expectedQty, newQty decimal.Decimal) (bool, error) {
	if r.beforeCAS != nil {
		r.beforeCAS(productID)
	}
	if !r.balances[productID].Equal(expectedQty) {
		return false, nil
	}
	r.balances[productID] = newQty
	return true, nil
}

type memLedgerRepo struct {
	entries []*entity.InventoryLedgerEntry
}

func (r *memLedgerRepo) Append(e *entity.InventoryLedgerEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	r.entries = append(r.entries, e)
	return nil
}
func (r *memLedgerRepo) ListByProduct(productID string, limit, offset int) ([]*entity.InventoryLedgerEntry, error) {
	var out []*entity.InventoryLedgerEntry
	for _, e := range r.entries {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	balances *memBalanceRepo
	ledger   *memLedgerRepo
}

func (r *fakeTxRunner) RunMovement(ctx context.Context, fn func(
	balanceRepo repository.BalanceRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	balSnap := make(map[string]decimal.Decimal, len(r.balances.balances))
	for k, v := range r.balances.balances {
		balSnap[k] = v
	}
	ledgerSnap := append([]*entity.InventoryLedgerEntry(nil), r.ledger.entries...)
	if err := fn(r.balances, r.ledger); err != nil {
		r.balances.balances = balSnap
		r.ledger.entries = ledgerSnap
		return err
	}
	return nil
}

func newFixture() (*UseCase, *memProductRepo, *memBalanceRepo, *memLedgerRepo) {
	products := &memProductRepo{products: map[string]*entity.Product{}, stock: map[string]decimal.Decimal{}}
	balances := &memBalanceRepo{balances: map[string]decimal.Decimal{}}
	ledger := &memLedgerRepo{}
	tx := &fakeTxRunner{balances: balances, ledger: ledger}
	return NewUseCase(tx, products, balances, ledger), products, balances, ledger
}

func seed(products *memProductRepo, balances *memBalanceRepo, id string, stock int64) {
	products.products[id] = &entity.Product{
		ID:           id,
		Name:         "Producto " + id,
		SellingPrice: decimal.NewFromInt(100),
		MinLevel:     decimal.NewFromInt(10),
	}
	balances.balances[id] = decimal.NewFromInt(stock)
	products.stock[id] = decimal.NewFromInt(stock)
}

func TestRegisterMovement_Compra(t *testing.T) {
	uc, products, balances, ledger := newFixture()
	seed(products, balances, "p1", 5)

	resp, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1",
		QtyDelta:  decimal.NewFromInt(20),
		Reason:    entity.LedgerReasonPurchase,
		Notes:     "pedido proveedor",
	})
	require.NoError(t, err)
	assert.True(t, balances.balances["p1"].Equal(decimal.NewFromInt(25)))

	// Exactamente una entrada de ledger por mutación de saldo.
	require.Len(t, ledger.entries, 1)
	assert.Equal(t, entity.LedgerReasonPurchase, resp.Reason)
	assert.True(t, resp.QtyDelta.Equal(decimal.NewFromInt(20)))
}

func TestRegisterMovement_AjusteNegativo(t *testing.T) {
	uc, products, balances, ledger := newFixture()
	seed(products, balances, "p1", 10)

	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1",
		QtyDelta:  decimal.NewFromInt(-4),
		Reason:    entity.LedgerReasonAdjustment,
	})
	require.NoError(t, err)
	assert.True(t, balances.balances["p1"].Equal(decimal.NewFromInt(6)))
	assert.Len(t, ledger.entries, 1)
}

func TestRegisterMovement_NuncaBajoCero(t *testing.T) {
	uc, products, balances, ledger := newFixture()
	seed(products, balances, "p1", 3)

	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1",
		QtyDelta:  decimal.NewFromInt(-5),
		Reason:    entity.LedgerReasonAdjustment,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, balances.balances["p1"].Equal(decimal.NewFromInt(3)))
	assert.Empty(t, ledger.entries)
}

func TestRegisterMovement_Validaciones(t *testing.T) {
	uc, products, balances, _ := newFixture()
	seed(products, balances, "p1", 10)

	cases := []struct {
		name string
		in   dto.RegisterMovementRequest
		want error
	}{
		{"compra con delta negativo", dto.RegisterMovementRequest{ProductID: "p1", QtyDelta: decimal.NewFromInt(-1), Reason: entity.LedgerReasonPurchase}, domain.ErrInvalidInput},
		{"devolucion con delta cero", dto.RegisterMovementRequest{ProductID: "p1", QtyDelta: decimal.Zero, Reason: entity.LedgerReasonReturn}, domain.ErrInvalidInput},
		{"ajuste con delta cero", dto.RegisterMovementRequest{ProductID: "p1", QtyDelta: decimal.Zero, Reason: entity.LedgerReasonAdjustment}, domain.ErrInvalidInput},
		{"venta directa no permitida", dto.RegisterMovementRequest{ProductID: "p1", QtyDelta: decimal.NewFromInt(-1), Reason: entity.LedgerReasonSale}, domain.ErrInvalidInput},
		{"motivo desconocido", dto.RegisterMovementRequest{ProductID: "p1", QtyDelta: decimal.NewFromInt(1), Reason: "THEFT"}, domain.ErrInvalidInput},
		{"producto inexistente", dto.RegisterMovementRequest{ProductID: "nope", QtyDelta: decimal.NewFromInt(1), Reason: entity.LedgerReasonPurchase}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterMovement(context.Background(), tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRegisterMovement_ConflictoCAS(t *testing.T) {
	uc, products, balances, ledger := newFixture()
	seed(products, balances, "p1", 10)

	balances.beforeCAS = func(productID string) {
		balances.balances["p1"] = decimal.NewFromInt(7)
		balances.beforeCAS = nil
	}

	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1",
		QtyDelta:  decimal.NewFromInt(5),
		Reason:    entity.LedgerReasonPurchase,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStockConflict)
	assert.Empty(t, ledger.entries)
}

func TestRegisterMovement_SinBaseDeDatos(t *testing.T) {
	uc := NewUseCase(nil, nil, nil, nil)
	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1",
		QtyDelta:  decimal.NewFromInt(1),
		Reason:    entity.LedgerReasonPurchase,
	})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestLedger_ListaConSaldo(t *testing.T) {
	uc, products, balances, _ := newFixture()
	seed(products, balances, "p1", 0)

	for _, delta := range []int64{10, 5} {
		_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
			ProductID: "p1",
			QtyDelta:  decimal.NewFromInt(delta),
			Reason:    entity.LedgerReasonPurchase,
		})
		require.NoError(t, err)
	}

	resp, err := uc.Ledger(context.Background(), "p1", dto.PageRequest{})
	require.NoError(t, err)
	assert.True(t, resp.QtyOnHand.Equal(decimal.NewFromInt(15)))
	assert.Len(t, resp.Entries, 2)
}

func TestLedger_ProductoInexistente(t *testing.T) {
	uc, _, _, _ := newFixture()
	_, err := uc.Ledger(context.Background(), "nope", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOverview_EstadosDeStock(t *testing.T) {
	uc, products, balances, _ := newFixture()
	// MinLevel 10 en seed: 20 = Good Stock, 8 = Low Stock, 4 = Critical.
	seed(products, balances, "bueno", 20)
	seed(products, balances, "bajo", 8)
	seed(products, balances, "critico", 4)

	resp, err := uc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Stats.InStock)
	assert.Equal(t, 2, resp.Stats.LowStock)

	statuses := map[string]string{}
	for _, p := range resp.Products {
		statuses[p.ID] = p.Status
	}
	assert.Equal(t, "Good Stock", statuses["bueno"])
	assert.Equal(t, "Low Stock", statuses["bajo"])
	assert.Equal(t, "Critical", statuses["critico"])
	// Valor de inventario: (20+8+4) × 100.
	assert.True(t, resp.Stats.StockValue.Equal(decimal.NewFromInt(3200)))
}

func TestOverview_SinBaseRetornaDemo(t *testing.T) {
	uc := NewUseCase(nil, nil, nil, nil)
	resp, err := uc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 236, resp.Stats.InStock)
	assert.NotEmpty(t, resp.Products)
}
