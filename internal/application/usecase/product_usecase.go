// Package usecase contiene los casos de uso del catálogo y las vistas de
// apoyo del tendero (dashboard, analítica, avisos, comandos de voz).
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/domain"
	"github.com/tu-usuario/retail-boss/internal/domain/barcode"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

// maxBarcodeAttempts acota los reintentos de generación cuando el código
// derivado del SKU ya está tomado (el espacio de sufijos es de 100.000).
const maxBarcodeAttempts = 5

// ProductUseCase operaciones del catálogo de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	balanceRepo repository.BalanceRepository
}

// NewProductUseCase construye el caso de uso. Repositorios nil = modo sin
// base de datos.
func NewProductUseCase(productRepo repository.ProductRepository, balanceRepo repository.BalanceRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, balanceRepo: balanceRepo}
}

// Create crea un producto con saldo inicial cero. Si no llega código de
// barras se genera uno EAN-13 (determinista desde el SKU, aleatorio en los
// reintentos por colisión).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if uc.productRepo == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if in.SellingPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio de venta no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.TaxRate.IsNegative() {
		return nil, fmt.Errorf("%w: la tasa de impuesto no puede ser negativa", domain.ErrInvalidInput)
	}

	existing, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: SKU %s", domain.ErrDuplicate, in.SKU)
	}

	code := in.Barcode
	if code != "" {
		if !barcode.Validate(code) {
			return nil, fmt.Errorf("%w: código de barras EAN-13 inválido", domain.ErrInvalidInput)
		}
		taken, err := uc.productRepo.GetByBarcode(code)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, fmt.Errorf("%w: código de barras %s", domain.ErrDuplicate, code)
		}
	} else {
		code, err = uc.generateBarcode(in.SKU)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Barcode:      code,
		Name:         in.Name,
		Unit:         in.Unit,
		MRP:          in.MRP,
		SellingPrice: in.SellingPrice,
		TaxRate:      in.TaxRate,
		MinLevel:     in.MinLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	if err := uc.balanceRepo.Init(product.ID); err != nil {
		return nil, err
	}
	return toProductResponse(product, decimal.Zero), nil
}

// generateBarcode genera un EAN-13 libre: primer intento determinista desde
// el SKU, luego aleatorio, con tope de reintentos. El chequeo y el insert no
// son atómicos, así que una carrera residual la atrapa el índice único de la
// base como ErrDuplicate.
func (uc *ProductUseCase) generateBarcode(sku string) (string, error) {
	seed := sku
	for i := 0; i < maxBarcodeAttempts; i++ {
		code := barcode.Generate(seed)
		taken, err := uc.productRepo.GetByBarcode(code)
		if err != nil {
			return "", err
		}
		if taken == nil {
			return code, nil
		}
		seed = "" // colisión: los siguientes intentos son aleatorios
	}
	return "", fmt.Errorf("%w: no se encontró código de barras libre tras %d intentos",
		domain.ErrDuplicate, maxBarcodeAttempts)
}

// GetByID obtiene un producto con su stock actual.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if uc.productRepo == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return uc.withStock(product)
}

// GetByBarcode busca un producto por su código de barras (flujo de escaneo
// en caja). Un código mal formado es 400, no 404.
func (uc *ProductUseCase) GetByBarcode(ctx context.Context, code string) (*dto.ProductResponse, error) {
	if !barcode.Validate(code) {
		return nil, fmt.Errorf("%w: código de barras EAN-13 inválido", domain.ErrInvalidInput)
	}
	if uc.productRepo == nil {
		return nil, fmt.Errorf("%w: código de barras %s", domain.ErrNotFound, code)
	}
	product, err := uc.productRepo.GetByBarcode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: código de barras %s", domain.ErrNotFound, code)
	}
	return uc.withStock(product)
}

// List lista el catálogo con stock. Sin base retorna lista vacía.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	out := &dto.ProductListResponse{Products: []dto.ProductResponse{}}
	if uc.productRepo == nil {
		return out, nil
	}
	rows, err := uc.productRepo.ListWithStock(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		p := row.Product
		out.Products = append(out.Products, *toProductResponse(&p, row.QtyOnHand))
	}
	return out, nil
}

// Update actualiza los campos editables de un producto (ID, SKU y código de
// barras son inmutables).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if uc.productRepo == nil {
		return nil, domain.ErrStoreUnavailable
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.MRP != nil {
		product.MRP = *in.MRP
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, fmt.Errorf("%w: el precio de venta no puede ser negativo", domain.ErrInvalidInput)
		}
		product.SellingPrice = *in.SellingPrice
	}
	if in.TaxRate != nil {
		if in.TaxRate.IsNegative() {
			return nil, fmt.Errorf("%w: la tasa de impuesto no puede ser negativa", domain.ErrInvalidInput)
		}
		product.TaxRate = *in.TaxRate
	}
	if in.MinLevel != nil {
		product.MinLevel = *in.MinLevel
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.withStock(product)
}

func (uc *ProductUseCase) withStock(product *entity.Product) (*dto.ProductResponse, error) {
	qty := decimal.Zero
	if uc.balanceRepo != nil {
		balance, err := uc.balanceRepo.Get(product.ID)
		if err != nil {
			return nil, err
		}
		qty = balance.QtyOnHand
	}
	return toProductResponse(product, qty), nil
}
