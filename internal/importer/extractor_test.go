package importer_test

import (
	"slices"
	"testing"

	"github.com/cokeke26/fenats/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var separateMapping = importer.ColumnMapping{
	HeaderRow:        0,
	Strategy:         importer.SeparateColumns,
	IDColumn:         0,
	CheckDigitColumn: 1,
	CombinedColumn:   importer.NoColumn,
	NameColumn:       2,
	GenderColumn:     3,
}

var combinedMapping = importer.ColumnMapping{
	HeaderRow:        0,
	Strategy:         importer.CombinedColumn,
	IDColumn:         importer.NoColumn,
	CheckDigitColumn: importer.NoColumn,
	CombinedColumn:   0,
	NameColumn:       1,
	GenderColumn:     importer.NoColumn,
}

func extractAll(g importer.Grid, m importer.ColumnMapping) []importer.ImportRow {
	return slices.Collect(importer.Extract(g, m))
}

func TestExtract_SeparateColumns(t *testing.T) {
	// Given
	g := grid(
		[]string{"RUT", "DV", "NOMBRE", "GENERO"},
		[]string{"10017452", "9", "Ana Rojas", "Femenino"},
		[]string{"10.017.453", "k", "  Luis   Soto ", ""},
		[]string{"010017454", "1", "Eva Díaz", "F"},
	)

	// When
	rows := extractAll(g, separateMapping)

	// Then
	require.Len(t, rows, 3)

	assert.Equal(t, "10017452-9", rows[0].RawID)
	assert.Equal(t, "Ana Rojas", rows[0].FullName)
	require.NotNil(t, rows[0].Gender)
	assert.Equal(t, "Femenino", *rows[0].Gender)

	assert.Equal(t, "10017453-K", rows[1].RawID)
	assert.Equal(t, "Luis   Soto", rows[1].FullName)
	assert.Nil(t, rows[1].Gender)

	// Leading zeros survive until normalization.
	assert.Equal(t, "010017454-1", rows[2].RawID)
}

func TestExtract_DiscardsImplausibleIDs(t *testing.T) {
	g := grid(
		[]string{"RUT", "DV", "NOMBRE"},
		[]string{"ABCDEF", "1", "Texto en columna RUT"},
		[]string{"12345", "1", "Cinco dígitos"},
		[]string{"1234567890", "1", "Diez dígitos"},
		[]string{"10017452", "10", "DV de dos caracteres"},
		[]string{"123456", "7", "Seis dígitos"},
		[]string{"123456789", "K", "Nueve dígitos"},
	)

	rows := extractAll(g, separateMapping)

	require.Len(t, rows, 2)
	assert.Equal(t, "123456-7", rows[0].RawID)
	assert.Equal(t, "123456789-K", rows[1].RawID)
}

func TestExtract_CountsDigitsAsWritten(t *testing.T) {
	// Given numeric-looking RUT cells with leading zeros and overflow
	g := grid(
		[]string{"RUT", "DV", "NOMBRE"},
		[]string{"00012345", "K", "Ocho con ceros"},
		[]string{"0009313137", "1", "Diez con ceros"},
		[]string{"12345678901234567890", "1", "Veinte dígitos"},
	)

	// When
	rows := extractAll(g, separateMapping)

	// Then only the eight-digit cell passes the 6-9 bound
	require.Len(t, rows, 1)
	assert.Equal(t, "00012345-K", rows[0].RawID)
	assert.Equal(t, "Ocho con ceros", rows[0].FullName)
}

func TestExtract_LoneRutCellKeepsEmbeddedCheckDigit(t *testing.T) {
	g := grid(
		[]string{"RUT", "DV", "NOMBRE"},
		[]string{"10017452-9", "", "Ana Rojas"},
	)

	rows := extractAll(g, separateMapping)

	require.Len(t, rows, 1)
	assert.Equal(t, "10017452-9", rows[0].RawID)
}

func TestExtract_SkipsRowsWithoutNameOrRut(t *testing.T) {
	g := grid(
		[]string{"RUT", "DV", "NOMBRE"},
		[]string{"10017452", "9", ""},
		[]string{"", "", "Sin RUT"},
		[]string{"10017453", "1", "Con todo"},
	)

	rows := extractAll(g, separateMapping)

	require.Len(t, rows, 1)
	assert.Equal(t, "Con todo", rows[0].FullName)
}

func TestExtract_StopsAfterEmptyRowLimit(t *testing.T) {
	testCases := []struct {
		name      string
		blankRows int
		expected  int
	}{
		{name: "one short of the limit keeps reading", blankRows: importer.EmptyRowLimit - 1, expected: 2},
		{name: "limit reached ends the table", blankRows: importer.EmptyRowLimit, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: one row, a run of blank rows, then another row
			rows := [][]string{
				{"RUT", "DV", "NOMBRE"},
				{"10017452", "9", "Primera"},
			}
			for i := 0; i < tc.blankRows; i++ {
				rows = append(rows, []string{"", " ", ""})
			}
			rows = append(rows, []string{"10017453", "1", "Después del bloque"})

			// When
			extracted := extractAll(importer.GridFromStrings(rows), separateMapping)

			// Then
			assert.Len(t, extracted, tc.expected)
		})
	}
}

func TestExtract_SkippedRowsResetEmptyStreak(t *testing.T) {
	rows := [][]string{{"RUT", "DV", "NOMBRE"}}
	for i := 0; i < importer.EmptyRowLimit-1; i++ {
		rows = append(rows, []string{})
	}
	// Not blank, so the streak restarts even though the row is discarded.
	rows = append(rows, []string{"ABCDEF", "1", "Basura"})
	for i := 0; i < importer.EmptyRowLimit-1; i++ {
		rows = append(rows, []string{})
	}
	rows = append(rows, []string{"10017453", "1", "Al final"})

	extracted := extractAll(importer.GridFromStrings(rows), separateMapping)

	require.Len(t, extracted, 1)
	assert.Equal(t, "Al final", extracted[0].FullName)
}

func TestExtract_CombinedColumn(t *testing.T) {
	g := grid(
		[]string{"RUT DV", "NOMBRE"},
		[]string{" 10.017.452 - k ", "Ana Rojas"},
		[]string{"ABCDEF", "Sin validación de forma"},
	)

	rows := extractAll(g, combinedMapping)

	require.Len(t, rows, 2)
	assert.Equal(t, "10.017.452 - K", rows[0].RawID)
	assert.Nil(t, rows[0].Gender)
	assert.Equal(t, "ABCDEF", rows[1].RawID)
}

func TestExtract_StopsWhenConsumerStops(t *testing.T) {
	g := grid(
		[]string{"RUT DV", "NOMBRE"},
		[]string{"10017452-9", "Uno"},
		[]string{"10017453-1", "Dos"},
	)

	var seen []string
	for row := range importer.Extract(g, combinedMapping) {
		seen = append(seen, row.FullName)
		break
	}

	assert.Equal(t, []string{"Uno"}, seen)
}

func TestExtract_NotFoundGridYieldsNothing(t *testing.T) {
	g := grid(
		[]string{"Cargo", "Sueldo"},
		[]string{"Tesorero", "100"},
	)

	_, err := importer.Locate(g)
	require.ErrorIs(t, err, importer.ErrTableNotFound)

	// The zero mapping reads nothing useful either.
	assert.Empty(t, extractAll(g, importer.ColumnMapping{
		IDColumn: importer.NoColumn, CheckDigitColumn: importer.NoColumn,
		CombinedColumn: importer.NoColumn, NameColumn: importer.NoColumn, GenderColumn: importer.NoColumn,
	}))
}
