package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/retail-boss/internal/application/dto"
)

func TestVoiceInterpret_PalabrasClave(t *testing.T) {
	uc := NewVoiceUseCase()

	cases := []struct {
		command    string
		wantOK     bool
		wantAction string
	}{
		{"Maggi ka stock kitna hai?", true, "stock-query"},
		{"aaj ki sales batao", true, "sales-query"},
		{"Ramesh ka udhar check karo", true, "credit-query"},
		{"customer credit dikhao", true, "credit-query"},
		{"naya bill banao", true, "open-billing"},
		{"HOW MUCH STOCK LEFT", true, "stock-query"},
		{"gibberish sin sentido", false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.command, func(t *testing.T) {
			resp := uc.Interpret(context.Background(), dto.VoiceCommandRequest{Command: tc.command})
			assert.Equal(t, tc.wantOK, resp.Success)
			assert.Equal(t, tc.wantAction, resp.Action)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
