package importer

import (
	"iter"
	"strings"

	"github.com/cokeke26/fenats/internal/shared/rut"
)

// EmptyRowLimit consecutive blank rows end the table.
const EmptyRowLimit = 25

// Plausible digit count for the RUT cell in the separate-columns layout.
// Rows outside this range usually belong to another table on the sheet
// (pivot summaries, totals). Kept as observed in real exports.
const (
	minRutDigits = 6
	maxRutDigits = 9
)

// ImportRow is one data row as read from the sheet. RawID is uppercased and
// space-collapsed but not yet normalized.
type ImportRow struct {
	RawID    string
	FullName string
	Gender   *string
}

// Extract yields the rows below the header of m. The sequence is lazy and
// reads grid once per iteration; rows are skipped silently when they are
// blank, lack a name or RUT, or fail the RUT/DV shape check.
func Extract(grid Grid, m ColumnMapping) iter.Seq[ImportRow] {
	return func(yield func(ImportRow) bool) {
		emptyStreak := 0

		for r := m.HeaderRow + 1; r < len(grid); r++ {
			name := grid.Text(r, m.NameColumn)
			gender := grid.Text(r, m.GenderColumn)

			var idCell, dvCell, rawID string
			if m.Strategy == CombinedColumn {
				rawID = grid.Text(r, m.CombinedColumn)
			} else {
				idCell = grid.Text(r, m.IDColumn)
				dvCell = grid.Text(r, m.CheckDigitColumn)
				rawID = joinIDCells(idCell, dvCell)
			}
			rawID = strings.ToUpper(collapseSpaces(rawID))

			if rawID == "" && name == "" && gender == "" {
				emptyStreak++
				if emptyStreak >= EmptyRowLimit {
					return
				}
				continue
			}
			emptyStreak = 0

			if m.Strategy == SeparateColumns && !plausibleShape(idCell, dvCell) {
				continue
			}
			if name == "" || rawID == "" {
				continue
			}

			row := ImportRow{RawID: rawID, FullName: name}
			if gender != "" {
				row.Gender = &gender
			}

			if !yield(row) {
				return
			}
		}
	}
}

// joinIDCells builds "<digits>-<DV>" when both cells are present. A lone RUT
// cell is taken as is since it may embed its own DV ("10017452-9").
func joinIDCells(idCell, dvCell string) string {
	switch {
	case idCell != "" && dvCell != "":
		return rut.DigitsOnly(idCell) + "-" + strings.ToUpper(dvCell)
	case idCell != "":
		return idCell
	default:
		return ""
	}
}

// plausibleShape rejects a non-empty RUT cell whose digits are not 6-9 long
// and a non-empty DV cell that does not reduce to exactly one [0-9K].
func plausibleShape(idCell, dvCell string) bool {
	if idCell != "" {
		digits := rut.DigitsOnly(idCell)
		if len(digits) < minRutDigits || len(digits) > maxRutDigits {
			return false
		}
	}
	if dvCell != "" && len(rut.Clean(dvCell)) != 1 {
		return false
	}
	return true
}
