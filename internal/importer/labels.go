package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type headerColumn int

const (
	headerID headerColumn = iota
	headerCheckDigit
	headerCombined
	headerName
	headerGender
)

// headerLabels maps folded header text to the column it announces.
// Matching is exact after folding (uppercase, no accents, single spaces).
var headerLabels = map[string]headerColumn{
	"RUT":                headerID,
	"DV":                 headerCheckDigit,
	"D.V.":               headerCheckDigit,
	"DIGITO VERIFICADOR": headerCheckDigit,
	"RUT DV":             headerCombined,
	"RUT-DV":             headerCombined,
	"RUT CON DV":         headerCombined,
	"NOMBRE":             headerName,
	"NOMBRES":            headerName,
	"NOMBRE COMPLETO":    headerName,
	"GENERO":             headerGender,
	"SEXO":               headerGender,
}

// fold uppercases s, strips diacritics and collapses whitespace.
// "  Género " -> "GENERO"
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.ToUpper(collapseSpaces(stripped))
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// matchHeaderRow returns the first column index for every label found in row.
func matchHeaderRow(row []Cell) map[headerColumn]int {
	found := make(map[headerColumn]int)
	for col, cell := range row {
		if cell.IsEmpty() {
			continue
		}
		kind, ok := headerLabels[fold(cell.Text())]
		if !ok {
			continue
		}
		if _, seen := found[kind]; !seen {
			found[kind] = col
		}
	}
	return found
}
