// Package barcode implementa la generación y validación de códigos de barras
// compatibles EAN-13 para el catálogo de productos.
//
// El espacio de sufijos es de solo 100.000 valores, así que las colisiones
// son posibles: el generador NO garantiza unicidad global. El flujo de
// creación de productos debe verificar contra la base y regenerar con un
// número acotado de reintentos.
package barcode

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Prefix es el prefijo fijo de país/proveedor (7 dígitos).
const Prefix = "8900000"

// Generate produce un código de 13 dígitos: Prefix + sufijo de 5 dígitos +
// dígito verificador EAN-13. Si seed no está vacío, el sufijo se deriva de
// forma determinista de un hash FNV-1a del seed; si no, es aleatorio.
func Generate(seed string) string {
	var suffix uint32
	if seed != "" {
		h := fnv.New32a()
		_, _ = h.Write([]byte(seed))
		suffix = h.Sum32() % 100000
	} else {
		suffix = uint32(rand.IntN(100000))
	}
	first12 := fmt.Sprintf("%s%05d", Prefix, suffix)
	check, _ := CheckDigit(first12)
	return fmt.Sprintf("%s%d", first12, check)
}

// CheckDigit calcula el dígito verificador EAN-13 para los primeros 12
// dígitos: suma de posiciones pares (índice base cero) sin peso, más la
// suma de posiciones impares multiplicada por 3; el dígito es
// (10 - total mod 10) mod 10.
func CheckDigit(first12 string) (int, error) {
	if len(first12) != 12 {
		return 0, fmt.Errorf("se esperan 12 dígitos, llegaron %d", len(first12))
	}
	evenSum, oddSum := 0, 0
	for i, c := range first12 {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("carácter no numérico en posición %d", i)
		}
		d := int(c - '0')
		if i%2 == 0 {
			evenSum += d
		} else {
			oddSum += d
		}
	}
	total := evenSum + oddSum*3
	return (10 - total%10) % 10, nil
}

// Validate verifica un código EAN-13. Nunca retorna error: false si el
// largo no es 13, si contiene caracteres no numéricos o si el dígito
// verificador recalculado no coincide con el último carácter.
func Validate(code string) bool {
	if len(code) != 13 {
		return false
	}
	check, err := CheckDigit(code[:12])
	if err != nil {
		return false
	}
	return byte('0'+check) == code[12]
}
