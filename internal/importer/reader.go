package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

var (
	zipMagic = []byte("PK\x03\x04")
	utf8BOM  = []byte{0xEF, 0xBB, 0xBF}
)

// ReadWorkbook turns an uploaded file into one Grid per sheet.
// XLSX is detected by its zip signature; anything else is read as CSV.
func ReadWorkbook(filename string, data []byte) ([]Grid, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidSpreadsheet)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case bytes.HasPrefix(data, zipMagic), ext == ".xlsx", ext == ".xlsm":
		return readXLSX(data)
	case ext == ".xls":
		return nil, fmt.Errorf("%w: legacy .xls is not supported", ErrInvalidSpreadsheet)
	default:
		return readCSV(data)
	}
}

func readXLSX(data []byte) ([]Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpreadsheet, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	grids := make([]Grid, 0, len(sheets))
	for _, sheet := range sheets {
		// Raw values: RUT columns formatted as "#.###.###" must not come back with dots.
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", ErrInvalidSpreadsheet, sheet, err)
		}
		grids = append(grids, GridFromStrings(rows))
	}
	return grids, nil
}

func readCSV(data []byte) ([]Grid, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		// Excel on Windows exports CSV as Windows-1252.
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("%w: decode: %v", ErrInvalidSpreadsheet, err)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpreadsheet, err)
	}
	return []Grid{GridFromStrings(rows)}, nil
}

// sniffDelimiter picks ';' (es-CL Excel default) or ',' from the first lines.
func sniffDelimiter(data []byte) rune {
	semicolons, commas := 0, 0
	for i, line := range bytes.SplitN(data, []byte("\n"), 20) {
		if i == 19 {
			break
		}
		semicolons += bytes.Count(line, []byte(";"))
		commas += bytes.Count(line, []byte(","))
	}
	if semicolons > commas {
		return ';'
	}
	return ','
}
