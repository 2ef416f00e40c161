package folio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elzarapeimports/zarape-pos-api/internal/domain/folio"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "#00007", folio.Format(7))
	assert.Equal(t, "#00042", folio.Format(42))
	assert.Equal(t, "#00000", folio.Format(0))
	assert.Equal(t, "#99999", folio.Format(99999))
	// más de 5 dígitos: el relleno cede, el folio sigue siendo válido
	assert.Equal(t, "#123456", folio.Format(123456))
}

func TestParse(t *testing.T) {
	n, ok := folio.Parse("#00042")
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	n, ok = folio.Parse("#123456")
	assert.True(t, ok)
	assert.Equal(t, int64(123456), n)

	for _, s := range []string{"", "#", "#abc", "#-5", "factura 42"} {
		_, ok := folio.Parse(s)
		assert.False(t, ok, "%q no es folio válido", s)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 7, 42, 99999, 100000} {
		got, ok := folio.Parse(folio.Format(n))
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}
}
