package dto

// VoiceCommandRequest comando de voz transcrito.
type VoiceCommandRequest struct {
	Command  string `json:"command" validate:"required"`
	Language string `json:"language"`
}

// VoiceCommandResponse respuesta simulada del intérprete de comandos.
type VoiceCommandResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Action  string         `json:"action,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}
