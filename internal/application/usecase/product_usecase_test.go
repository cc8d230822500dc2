package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/domain"
	"github.com/tu-usuario/retail-boss/internal/domain/barcode"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) GetByBarcode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == code {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) ListWithStock(limit, offset int) ([]repository.ProductWithStock, error) {
	var out []repository.ProductWithStock
	for _, p := range r.products {
		out = append(out, repository.ProductWithStock{Product: *p})
	}
	return out, nil
}

type memBalanceRepo struct {
	balances map[string]decimal.Decimal
}

func (r *memBalanceRepo) Get(productID string) (*entity.InventoryBalance, error) {
	return &entity.InventoryBalance{ProductID: productID, QtyOnHand: r.balances[productID]}, nil
}
func (r *memBalanceRepo) Init(productID string) error {
	r.balances[productID] = decimal.Zero
	return nil
}
func (r *memBalanceRepo) CompareAndSet(productID string, expectedQty, newQty decimal.Decimal) (bool, error) {
	if !r.balances[productID].Equal(expectedQty) {
		return false, nil
	}
	r.balances[productID] = newQty
	return true, nil
}

func newProductFixture() (*ProductUseCase, *memProductRepo, *memBalanceRepo) {
	products := &memProductRepo{products: map[string]*entity.Product{}}
	balances := &memBalanceRepo{balances: map[string]decimal.Decimal{}}
	return NewProductUseCase(products, balances), products, balances
}

func TestCreateProduct_GeneraBarcodeYSaldoCero(t *testing.T) {
	uc, _, balances := newProductFixture()

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:          "MAG001",
		Name:         "Maggi Noodles 2-Min",
		Unit:         "pcs",
		SellingPrice: decimal.NewFromInt(12),
		TaxRate:      decimal.NewFromInt(5),
		MinLevel:     decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	// Barcode generado: EAN-13 válido con el prefijo de la tienda.
	assert.Len(t, resp.Barcode, 13)
	assert.True(t, barcode.Validate(resp.Barcode))

	// Saldo inicial en cero, pendiente del primer movimiento de compra.
	qty, ok := balances.balances[resp.ID]
	require.True(t, ok, "debe existir fila de saldo")
	assert.True(t, qty.IsZero())
	assert.True(t, resp.QtyOnHand.IsZero())
}

func TestCreateProduct_BarcodeDeterministaDesdeSKU(t *testing.T) {
	uc1, _, _ := newProductFixture()
	uc2, _, _ := newProductFixture()

	in := dto.CreateProductRequest{SKU: "PAR002", Name: "Parle-G", Unit: "pcs"}
	r1, err := uc1.Create(context.Background(), in)
	require.NoError(t, err)
	r2, err := uc2.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, r1.Barcode, r2.Barcode)
}

func TestCreateProduct_ColisionRegeneraDistinto(t *testing.T) {
	uc, products, _ := newProductFixture()

	// Producto previo ocupando el código determinista de este SKU.
	taken := barcode.Generate("TEA003")
	products.products["previo"] = &entity.Product{ID: "previo", SKU: "OTRO", Barcode: taken}

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TEA003", Name: "Tata Tea Gold", Unit: "pack",
	})
	require.NoError(t, err)
	assert.NotEqual(t, taken, resp.Barcode)
	assert.True(t, barcode.Validate(resp.Barcode))
}

func TestCreateProduct_BarcodeExplicito(t *testing.T) {
	uc, _, _ := newProductFixture()
	code := barcode.Generate("semilla")

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "AMU004", Name: "Amul Butter", Unit: "pcs", Barcode: code,
	})
	require.NoError(t, err)
	assert.Equal(t, code, resp.Barcode)

	// El mismo código en otro producto es un duplicado.
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "AMU005", Name: "Amul Cheese", Unit: "pcs", Barcode: code,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateProduct_Validaciones(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "X1", Name: "X", Unit: "pcs", Barcode: "1234567890123", // check digit malo
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "X2", Name: "X", Unit: "pcs", SellingPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_SKUDuplicado(t *testing.T) {
	uc, _, _ := newProductFixture()
	in := dto.CreateProductRequest{SKU: "MAG001", Name: "Maggi", Unit: "pcs"}

	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestGetByBarcode_FlujoDeEscaneo(t *testing.T) {
	uc, _, balances := newProductFixture()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "MAG001", Name: "Maggi", Unit: "pcs",
	})
	require.NoError(t, err)
	balances.balances[created.ID] = decimal.NewFromInt(45)

	resp, err := uc.GetByBarcode(context.Background(), created.Barcode)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.True(t, resp.QtyOnHand.Equal(decimal.NewFromInt(45)))

	// Código mal formado es entrada inválida, no "no encontrado".
	_, err = uc.GetByBarcode(context.Background(), "no-es-numero!!")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Código bien formado pero sin producto.
	_, err = uc.GetByBarcode(context.Background(), barcode.Generate("fantasma"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProduct_CamposParciales(t *testing.T) {
	uc, _, _ := newProductFixture()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "MAG001", Name: "Maggi", Unit: "pcs", SellingPrice: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	newName := "Maggi Noodles 2-Min"
	newPrice := decimal.NewFromInt(14)
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Name:         &newName,
		SellingPrice: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, resp.Name)
	assert.True(t, resp.SellingPrice.Equal(newPrice))
	assert.Equal(t, created.SKU, resp.SKU)
	assert.Equal(t, created.Barcode, resp.Barcode)
}

func TestProduct_SinBaseDeDatos(t *testing.T) {
	uc := NewProductUseCase(nil, nil)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "X", Name: "X", Unit: "pcs"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	list, err := uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Products)

	_, err = uc.GetByID(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
