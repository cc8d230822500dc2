package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
)

func toProductResponse(p *entity.Product, qtyOnHand decimal.Decimal) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Barcode:      p.Barcode,
		Name:         p.Name,
		Unit:         p.Unit,
		MRP:          p.MRP,
		SellingPrice: p.SellingPrice,
		TaxRate:      p.TaxRate,
		MinLevel:     p.MinLevel,
		QtyOnHand:    qtyOnHand,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
