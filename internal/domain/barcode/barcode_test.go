package barcode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-boss/internal/domain/barcode"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores exactos del algoritmo EAN-13: suma de posiciones pares (índice
// base cero) sin peso + suma de impares ×3; dígito = (10 - total mod 10) mod 10.
//
// "890000012345": pares 8+0+0+0+2+4 = 14, impares (9+0+0+1+3+5)×3 = 54,
// total 68 → dígito (10-8)%10 = 2.
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckDigit_VectorExacto(t *testing.T) {
	d, err := barcode.CheckDigit("890000012345")
	require.NoError(t, err)
	assert.Equal(t, 2, d, "el dígito verificador debe coincidir con el vector calculado a mano")
}

func TestCheckDigit_ErrorSiLargoInvalido(t *testing.T) {
	_, err := barcode.CheckDigit("12345")
	assert.Error(t, err, "menos de 12 dígitos debe retornar error")

	_, err = barcode.CheckDigit("1234567890123")
	assert.Error(t, err, "más de 12 dígitos debe retornar error")
}

func TestCheckDigit_ErrorSiNoNumerico(t *testing.T) {
	_, err := barcode.CheckDigit("89000001234X")
	assert.Error(t, err)
}

func TestValidate_EAN13Conocido(t *testing.T) {
	// EAN-13 válido conocido (dígito verificador 8).
	assert.True(t, barcode.Validate("1234567890128"))
}

func TestValidate_RechazaSinLanzar(t *testing.T) {
	assert.False(t, barcode.Validate(""), "vacío")
	assert.False(t, barcode.Validate("123456789012"), "12 dígitos")
	assert.False(t, barcode.Validate("12345678901234"), "14 dígitos")
	assert.False(t, barcode.Validate("123456789012X"), "no numérico")
	assert.False(t, barcode.Validate("1234567890123"), "dígito verificador incorrecto")
}

// TestValidate_DetectaErrorDeUnDigito: mutar cualquier dígito de un código
// válido debe invalidarlo (propiedad de detección de error simple EAN-13).
func TestValidate_DetectaErrorDeUnDigito(t *testing.T) {
	valid := "1234567890128"
	require.True(t, barcode.Validate(valid))

	for i := 0; i < len(valid); i++ {
		mutated := []byte(valid)
		mutated[i] = byte('0' + (int(valid[i]-'0')+1)%10)
		assert.False(t, barcode.Validate(string(mutated)),
			"mutar la posición %d debe invalidar el código", i)
	}
}

// TestValidate_Idempotente: validar es puro; dos llamadas con el mismo
// input producen el mismo resultado.
func TestValidate_Idempotente(t *testing.T) {
	assert.Equal(t, barcode.Validate("1234567890128"), barcode.Validate("1234567890128"))
	assert.Equal(t, barcode.Validate("malo"), barcode.Validate("malo"))
}

// Propiedad: para cualquier cuerpo de 12 dígitos, anexar su dígito
// verificador produce un código válido.
func TestCheckDigit_ValidateRoundTrip(t *testing.T) {
	bodies := []string{
		"890000000000",
		"890000099999",
		"123456789012",
		"000000000000",
		"999999999999",
	}
	for _, body := range bodies {
		d, err := barcode.CheckDigit(body)
		require.NoError(t, err)
		assert.True(t, barcode.Validate(body+string(byte('0'+d))),
			"cuerpo %s + dígito %d debe validar", body, d)
	}
}

func TestGenerate_ConSeedEsDeterminista(t *testing.T) {
	b1 := barcode.Generate("producto-123")
	b2 := barcode.Generate("producto-123")
	assert.Equal(t, b1, b2, "el mismo seed siempre debe producir el mismo código")

	b3 := barcode.Generate("producto-456")
	assert.NotEqual(t, b1, b3, "seeds distintos deben producir códigos distintos")
}

func TestGenerate_FormatoYPrefijo(t *testing.T) {
	for _, seed := range []string{"", "abc", "otro-seed"} {
		code := barcode.Generate(seed)
		assert.Len(t, code, 13)
		assert.True(t, strings.HasPrefix(code, barcode.Prefix),
			"todo código generado lleva el prefijo fijo de proveedor")
		assert.True(t, barcode.Validate(code),
			"todo código generado debe pasar su propia validación")
	}
}
