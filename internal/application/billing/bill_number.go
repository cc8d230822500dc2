// Package billing contiene la numeración de facturas de venta.
package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// billPrefix prefijo fijo del número de factura.
const billPrefix = "BILL"

// NumberStore puerto mínimo que necesita el generador: el mayor bill_number
// existente con el prefijo del día (orden lexicográfico).
type NumberStore interface {
	LastNumberWithPrefix(prefix string) (string, error)
}

// NumberGenerator produce números de factura legibles con formato
// BILL-YYYYMMDD-NNNN, donde NNNN es un consecutivo diario de 4 dígitos.
//
// Es un esquema best-effort, no una garantía estricta: entre leer el último
// consecutivo y escribir la factura no hay lock, así que dos facturas
// creadas en el mismo instante pueden recibir el mismo NNNN. La unicidad
// real la impone el constraint único de bill_number en la base.
type NumberGenerator struct {
	store NumberStore
	now   func() time.Time
}

// NewNumberGenerator construye el generador. store puede ser nil (modo sin
// base de datos): en ese caso se usa siempre el fallback por timestamp.
func NewNumberGenerator(store NumberStore) *NumberGenerator {
	return &NumberGenerator{store: store, now: time.Now}
}

// Next retorna el siguiente número de factura para la fecha actual.
// El consecutivo reinicia en 0001 cada día calendario. Si la base no
// responde, degrada a un sufijo derivado del timestamp (unicidad solo
// probabilística).
func (g *NumberGenerator) Next() string {
	now := g.now()
	prefix := fmt.Sprintf("%s-%s-", billPrefix, now.Format("20060102"))

	if g.store == nil {
		return prefix + timestampSuffix(now)
	}
	last, err := g.store.LastNumberWithPrefix(prefix)
	if err != nil {
		return prefix + timestampSuffix(now)
	}

	seq := 1
	if last != "" {
		if n, perr := strconv.Atoi(strings.TrimPrefix(last, prefix)); perr == nil && n > 0 {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq)
}

// timestampSuffix sufijo de 4 dígitos derivado de los milisegundos del epoch.
func timestampSuffix(now time.Time) string {
	return fmt.Sprintf("%04d", now.UnixMilli()%10000)
}
