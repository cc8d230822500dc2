package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/application/sales"
	"github.com/tu-usuario/retail-boss/pkg/validator"
)

// SalesHandler maneja las peticiones HTTP de ventas.
type SalesHandler struct {
	uc *sales.CreateSaleUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.CreateSaleUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Create godoc
// @Summary      Crear venta (deduce stock, genera factura y ledger)
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Carrito y medio de pago"
// @Success      201   {object}  dto.BillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Conflicto de stock: otro escritor ganó; reintente la venta"
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validator.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.CreateSale(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas recientes
// @Tags         sales
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListSales(c.Context(), c.QueryInt("limit", 100))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.BillResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	out, err := h.uc.GetBill(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GetPDF godoc
// @Summary      Descargar recibo de venta en PDF
// @Tags         sales
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pdf [get]
func (h *SalesHandler) GetPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	pdfBytes, err := h.uc.GetBillPDF(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
