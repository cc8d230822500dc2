package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNumberStore simula la consulta del último consecutivo del día.
type fakeNumberStore struct {
	last string
	err  error

	gotPrefix string
}

func (f *fakeNumberStore) LastNumberWithPrefix(prefix string) (string, error) {
	f.gotPrefix = prefix
	return f.last, f.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testDay = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestNext_PrimeraFacturaDelDia(t *testing.T) {
	store := &fakeNumberStore{last: ""}
	g := NewNumberGenerator(store)
	g.now = fixedClock(testDay)

	got := g.Next()

	assert.Equal(t, "BILL-20240315-0001", got)
	assert.Equal(t, "BILL-20240315-", store.gotPrefix,
		"debe consultar con el prefijo de la fecha actual")
}

func TestNext_IncrementaElConsecutivo(t *testing.T) {
	store := &fakeNumberStore{last: "BILL-20240315-0041"}
	g := NewNumberGenerator(store)
	g.now = fixedClock(testDay)

	assert.Equal(t, "BILL-20240315-0042", g.Next())
}

// TestNext_SecuenciaCrecienteEnElDia: llamadas sucesivas (monohilo, el store
// refleja cada factura escrita) producen sufijos estrictamente crecientes.
func TestNext_SecuenciaCrecienteEnElDia(t *testing.T) {
	store := &fakeNumberStore{}
	g := NewNumberGenerator(store)
	g.now = fixedClock(testDay)

	prev := ""
	for i := 0; i < 5; i++ {
		got := g.Next()
		if prev != "" {
			assert.Greater(t, got, prev, "los números del mismo día deben crecer")
		}
		store.last = got // la factura quedó persistida
		prev = got
	}
	assert.Equal(t, "BILL-20240315-0005", prev)
}

// TestNext_ReiniciaPorFecha: el consecutivo es por día calendario; al cambiar
// la fecha el prefijo cambia y la secuencia vuelve a 0001.
func TestNext_ReiniciaPorFecha(t *testing.T) {
	store := &fakeNumberStore{last: ""}
	g := NewNumberGenerator(store)
	g.now = fixedClock(testDay.AddDate(0, 0, 1))

	assert.Equal(t, "BILL-20240316-0001", g.Next())
}

func TestNext_SufijoIlegibleReiniciaEnUno(t *testing.T) {
	store := &fakeNumberStore{last: "BILL-20240315-XYZW"}
	g := NewNumberGenerator(store)
	g.now = fixedClock(testDay)

	assert.Equal(t, "BILL-20240315-0001", g.Next(),
		"si el sufijo no parsea, la secuencia arranca en 1")
}

func TestNext_FallbackPorTimestampSiStoreFalla(t *testing.T) {
	store := &fakeNumberStore{err: errors.New("conexión rechazada")}
	g := NewNumberGenerator(store)
	g.now = fixedClock(testDay)

	got := g.Next()
	require.Len(t, got, len("BILL-20240315-0000"))
	assert.Contains(t, got, "BILL-20240315-")
	assert.Equal(t, "BILL-20240315-"+timestampSuffix(testDay), got,
		"sin base se degrada al sufijo derivado del timestamp")
}

func TestNext_FallbackSiNoHayStore(t *testing.T) {
	g := NewNumberGenerator(nil)
	g.now = fixedClock(testDay)

	assert.Equal(t, "BILL-20240315-"+timestampSuffix(testDay), g.Next())
}
