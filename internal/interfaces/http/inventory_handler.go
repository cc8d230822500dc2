package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/application/inventory"
	"github.com/tu-usuario/retail-boss/pkg/validator"
)

// InventoryHandler maneja las peticiones HTTP del ledger de inventario.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Overview godoc
// @Summary      Resumen de inventario (estadísticas + estado por producto)
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryOverviewResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock (compra, ajuste o devolución)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.LedgerEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validator.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.RegisterMovement(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Ledger godoc
// @Summary      Historial de movimientos de un producto con su saldo actual
// @Tags         inventory
// @Produce      json
// @Param        productId  path   string  true   "ID del producto"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200        {object}  dto.LedgerListResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/inventory/ledger/{productId} [get]
func (h *InventoryHandler) Ledger(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return badRequest(c, "MISSING_ID", "productId es requerido")
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.Ledger(c.Context(), productID, page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
