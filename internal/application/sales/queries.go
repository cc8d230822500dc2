package sales

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/domain"
)

// ListSales lista facturas recientes con sus líneas. limit acotado a 1..1000
// (100 por defecto). Sin base de datos retorna lista vacía.
func (uc *CreateSaleUseCase) ListSales(ctx context.Context, limit int) (*dto.SaleListResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	out := &dto.SaleListResponse{Sales: []dto.BillResponse{}}
	if uc.billRepo == nil {
		return out, nil
	}
	bills, err := uc.billRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	for _, bill := range bills {
		items, err := uc.billRepo.GetItems(bill.ID)
		if err != nil {
			return nil, err
		}
		out.Sales = append(out.Sales, *toBillResponse(bill, items))
	}
	return out, nil
}

// GetBill obtiene una factura por ID con sus líneas.
func (uc *CreateSaleUseCase) GetBill(ctx context.Context, id string) (*dto.BillResponse, error) {
	if uc.billRepo == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, id)
	}
	bill, err := uc.billRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, id)
	}
	items, err := uc.billRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toBillResponse(bill, items), nil
}

// GetBillPDF genera la representación PDF de una factura.
func (uc *CreateSaleUseCase) GetBillPDF(ctx context.Context, id string) ([]byte, error) {
	if uc.billRepo == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, id)
	}
	bill, err := uc.billRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, id)
	}
	items, err := uc.billRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateReceiptPDF(ctx, bill, items)
}
