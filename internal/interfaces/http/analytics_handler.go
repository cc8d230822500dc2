package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-boss/internal/application/usecase"
)

// AnalyticsHandler maneja la vista de analítica avanzada.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Analytics godoc
// @Summary      Analítica: pronóstico, mejores clientes y horas pico
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.AnalyticsResponse
// @Router       /api/analytics [get]
func (h *AnalyticsHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.uc.Analytics(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
