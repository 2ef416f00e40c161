// Package textnorm normaliza texto para búsquedas insensibles a mayúsculas y acentos.
// "Sarape Tradicional" y "sarape tradicional", o "José" y "jose", deben coincidir.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // elimina marcas diacríticas (acentos)
	norm.NFC,
)

// Fold devuelve el texto en minúsculas y sin acentos.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Si la transformación falla se conserva el original en minúsculas
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
