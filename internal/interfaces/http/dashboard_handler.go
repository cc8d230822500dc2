package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-boss/internal/application/usecase"
)

// DashboardHandler maneja la vista principal del tendero.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard: ventas, catálogo, ingresos e insights
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
