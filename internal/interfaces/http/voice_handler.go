package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/application/usecase"
	"github.com/tu-usuario/retail-boss/pkg/validator"
)

// VoiceHandler maneja los comandos de voz transcritos.
type VoiceHandler struct {
	uc *usecase.VoiceUseCase
}

// NewVoiceHandler construye el handler.
func NewVoiceHandler(uc *usecase.VoiceUseCase) *VoiceHandler {
	return &VoiceHandler{uc: uc}
}

// Command godoc
// @Summary      Interpretar comando de voz (texto transcrito)
// @Tags         voice
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoiceCommandRequest  true  "Comando"
// @Success      200   {object}  dto.VoiceCommandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/voice [post]
func (h *VoiceHandler) Command(c *fiber.Ctx) error {
	var in dto.VoiceCommandRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validator.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	return c.JSON(h.uc.Interpret(c.Context(), in))
}
