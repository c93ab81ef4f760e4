// Package normalize normaliza texto para búsqueda insensible a tildes y
// mayúsculas (nombres de clientes colombianos: "Jiménez" == "jimenez").
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // elimina marcas diacríticas
	norm.NFC,
)

// SearchKey devuelve la clave de búsqueda: minúsculas, sin tildes,
// espacios colapsados. Se persiste junto al nombre para comparar con LIKE.
func SearchKey(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}
