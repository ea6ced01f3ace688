package importer_test

import (
	"testing"

	"github.com/cokeke26/fenats/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(rows ...[]string) importer.Grid {
	return importer.GridFromStrings(rows)
}

func TestLocate_SeparateColumnsBelowTitle(t *testing.T) {
	// Given: a title block above the header, columns in arbitrary order
	g := grid(
		[]string{"Nómina de socios 2024"},
		[]string{},
		[]string{"N°", "Nombre Completo", "RUT", "D.V.", "Género"},
		[]string{"1", "Ana Rojas", "10017452", "9", "F"},
	)

	// When
	m, err := importer.Locate(g)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 2, m.HeaderRow)
	assert.Equal(t, importer.SeparateColumns, m.Strategy)
	assert.Equal(t, 2, m.IDColumn)
	assert.Equal(t, 3, m.CheckDigitColumn)
	assert.Equal(t, importer.NoColumn, m.CombinedColumn)
	assert.Equal(t, 1, m.NameColumn)
	assert.Equal(t, 4, m.GenderColumn)
	assert.True(t, m.HasGender())
}

func TestLocate_CombinedColumnWithoutGender(t *testing.T) {
	g := grid(
		[]string{"rut dv", "nombres"},
		[]string{"10.017.452-9", "Ana Rojas"},
	)

	m, err := importer.Locate(g)

	require.NoError(t, err)
	assert.Equal(t, 0, m.HeaderRow)
	assert.Equal(t, importer.CombinedColumn, m.Strategy)
	assert.Equal(t, 0, m.CombinedColumn)
	assert.Equal(t, importer.NoColumn, m.IDColumn)
	assert.Equal(t, importer.NoColumn, m.CheckDigitColumn)
	assert.Equal(t, 1, m.NameColumn)
	assert.False(t, m.HasGender())
}

func TestLocate_SeparateWinsOverCombinedOnSameRow(t *testing.T) {
	g := grid(
		[]string{"RUT-DV", "RUT", "DV", "NOMBRE", "SEXO"},
	)

	m, err := importer.Locate(g)

	require.NoError(t, err)
	assert.Equal(t, importer.SeparateColumns, m.Strategy)
	assert.Equal(t, 1, m.IDColumn)
	assert.Equal(t, 2, m.CheckDigitColumn)
	assert.Equal(t, 4, m.GenderColumn)
}

func TestLocate_FirstMatchingRowWins(t *testing.T) {
	g := grid(
		[]string{"RUT CON DV", "NOMBRE"},
		[]string{"RUT", "DV", "NOMBRE"},
	)

	m, err := importer.Locate(g)

	require.NoError(t, err)
	assert.Equal(t, 0, m.HeaderRow)
	assert.Equal(t, importer.CombinedColumn, m.Strategy)
}

func TestLocate_NotFound(t *testing.T) {
	testCases := []struct {
		name string
		grid importer.Grid
	}{
		{name: "empty sheet", grid: grid()},
		{name: "no name column", grid: grid([]string{"RUT", "DV", "Cargo"})},
		{name: "rut without dv", grid: grid([]string{"RUT", "Nombre"})},
		{name: "label inside longer text", grid: grid([]string{"RUT del socio", "DV", "Nombre"})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := importer.Locate(tc.grid)
			assert.ErrorIs(t, err, importer.ErrTableNotFound)
		})
	}
}

func TestLocate_HeaderAtRowTwoPreferredOverLaterCombinedHeader(t *testing.T) {
	g := grid(
		[]string{"Federación"},
		[]string{},
		[]string{"", "RUT", "DV", "NOMBRE", "GENERO"},
		[]string{"", "10017452", "9", "Ana Rojas", "F"},
		[]string{},
		[]string{"RUT DV", "NOMBRE"},
	)

	m, err := importer.Locate(g)

	require.NoError(t, err)
	assert.Equal(t, 2, m.HeaderRow)
	assert.Equal(t, importer.SeparateColumns, m.Strategy)
	assert.Equal(t, 1, m.IDColumn)
	assert.Equal(t, 2, m.CheckDigitColumn)
	assert.Equal(t, 3, m.NameColumn)
	assert.Equal(t, 4, m.GenderColumn)
}
