package usecase

import (
	"context"
	"strings"

	"github.com/tu-usuario/retail-boss/internal/application/dto"
)

// VoiceUseCase intérprete simulado de comandos de voz del tendero. Hace
// matching por palabras clave en hinglish/inglés; no hay reconocimiento de
// voz real, el cliente manda el texto ya transcrito.
type VoiceUseCase struct{}

func NewVoiceUseCase() *VoiceUseCase {
	return &VoiceUseCase{}
}

// Interpret responde a un comando transcrito.
func (uc *VoiceUseCase) Interpret(ctx context.Context, in dto.VoiceCommandRequest) *dto.VoiceCommandResponse {
	cmd := strings.ToLower(in.Command)

	switch {
	case strings.Contains(cmd, "stock") || strings.Contains(cmd, "kitna"):
		return &dto.VoiceCommandResponse{
			Success: true,
			Message: "Maggi Noodles: 45 units in stock. Good stock level!",
			Action:  "stock-query",
			Data:    map[string]any{"product": "Maggi Noodles", "stock": 45},
		}
	case strings.Contains(cmd, "sales") || strings.Contains(cmd, "batao"):
		return &dto.VoiceCommandResponse{
			Success: true,
			Message: "Today's sales: ₹12,450. That's 11% up from yesterday!",
			Action:  "sales-query",
			Data:    map[string]any{"today": 12450, "trend": 11.2},
		}
	case strings.Contains(cmd, "udhar") || strings.Contains(cmd, "credit"):
		return &dto.VoiceCommandResponse{
			Success: true,
			Message: "Ramesh Kumar has ₹450 pending. Total udhar: ₹2,340",
			Action:  "credit-query",
			Data:    map[string]any{"customer": "Ramesh Kumar", "pending": 450},
		}
	case strings.Contains(cmd, "bill") || strings.Contains(cmd, "banao"):
		return &dto.VoiceCommandResponse{
			Success: true,
			Message: "Opening billing screen. Scan products or speak item names.",
			Action:  "open-billing",
		}
	default:
		return &dto.VoiceCommandResponse{
			Success: false,
			Message: "Sorry, I didn't understand. Try: 'stock kitna hai', 'sales batao', or 'bill banao'",
		}
	}
}
