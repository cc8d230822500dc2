package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-boss/internal/application/usecase"
)

// NotificationHandler maneja los avisos del tendero.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar avisos recientes
// @Tags         notifications
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(50)
// @Success      200    {object}  dto.NotificationListResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar aviso como leído
// @Tags         notifications
// @Produce      json
// @Param        id   path  string  true  "ID del aviso"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.MarkRead(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
