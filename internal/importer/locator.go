package importer

import "errors"

// ErrTableNotFound means no row of the sheet carries a known header layout.
var ErrTableNotFound = errors.New("importer: member table header not found")

// NoColumn marks an absent optional column in a ColumnMapping.
const NoColumn = -1

type Strategy int

const (
	// SeparateColumns: RUT and DV live in two cells.
	SeparateColumns Strategy = iota + 1
	// CombinedColumn: one "RUT DV" cell holds the whole RUT.
	CombinedColumn
)

func (s Strategy) String() string {
	switch s {
	case SeparateColumns:
		return "separate"
	case CombinedColumn:
		return "combined"
	default:
		return "unknown"
	}
}

// ColumnMapping locates the member table inside a sheet.
// SeparateColumns mappings set IDColumn and CheckDigitColumn; CombinedColumn
// mappings set CombinedColumn. Unused columns hold NoColumn.
type ColumnMapping struct {
	HeaderRow        int
	Strategy         Strategy
	IDColumn         int
	CheckDigitColumn int
	CombinedColumn   int
	NameColumn       int
	GenderColumn     int
}

func (m ColumnMapping) HasGender() bool {
	return m.GenderColumn != NoColumn
}

// Locate scans rows top to bottom and accepts the first one that announces a
// member table. Within a row the separate RUT/DV layout wins over the
// combined one; gender is optional in both.
func Locate(grid Grid) (ColumnMapping, error) {
	for r, row := range grid {
		found := matchHeaderRow(row)

		gender, ok := found[headerGender]
		if !ok {
			gender = NoColumn
		}

		name, hasName := found[headerName]
		if !hasName {
			continue
		}

		id, hasID := found[headerID]
		dv, hasDV := found[headerCheckDigit]
		if hasID && hasDV {
			return ColumnMapping{
				HeaderRow:        r,
				Strategy:         SeparateColumns,
				IDColumn:         id,
				CheckDigitColumn: dv,
				CombinedColumn:   NoColumn,
				NameColumn:       name,
				GenderColumn:     gender,
			}, nil
		}

		if combined, ok := found[headerCombined]; ok {
			return ColumnMapping{
				HeaderRow:        r,
				Strategy:         CombinedColumn,
				IDColumn:         NoColumn,
				CheckDigitColumn: NoColumn,
				CombinedColumn:   combined,
				NameColumn:       name,
				GenderColumn:     gender,
			}, nil
		}
	}

	return ColumnMapping{}, ErrTableNotFound
}
