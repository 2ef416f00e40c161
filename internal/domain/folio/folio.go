// Package folio define el formato del número de factura: "#" seguido del
// consecutivo con relleno de ceros a 5 dígitos (ej. "#00007").
package folio

import (
	"fmt"
	"strconv"
	"strings"
)

// Format devuelve el folio con formato "#00042".
func Format(n int64) string {
	return fmt.Sprintf("#%05d", n)
}

// Parse extrae el consecutivo de un folio ("#00042" → 42).
// ok=false si el texto no es un folio válido.
func Parse(s string) (int64, bool) {
	num := strings.TrimPrefix(s, "#")
	if num == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
