package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elzarapeimports/zarape-pos-api/pkg/textnorm"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"José", "jose"},
		{"María Peña", "maria pena"},
		{"SARAPE Tradicional", "sarape tradicional"},
		{"Ñandú", "nandu"},
		{"café CON azúcar", "cafe con azucar"},
		{"sin acentos", "sin acentos"},
		{"", ""},
		{"ZAR-001", "zar-001"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, textnorm.Fold(tc.in), "Fold(%q)", tc.in)
	}
}

func TestFoldIdempotente(t *testing.T) {
	for _, s := range []string{"José Hernández", "Güera", "ÁÉÍÓÚ"} {
		una := textnorm.Fold(s)
		assert.Equal(t, una, textnorm.Fold(una))
	}
}
