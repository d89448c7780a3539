// =============================================================================
// Amazon Order Ledger - Tabular Input
// =============================================================================
//
// This package reads the two supported input shapes - CSV and XLSX exports -
// into one common Table form: a header list plus rows as column->value maps.
// Everything downstream (normalization, grouping, aggregation) is agnostic
// to which reader produced the table.
//
// =============================================================================

package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is a parsed input file.
type Table struct {
	// Headers are the column headers, cleaned and in file order.
	Headers []string

	// Rows holds the data rows as header -> value maps. Values are
	// whitespace-trimmed; missing trailing cells map to "".
	Rows []map[string]string

	// SourceFile is the path the table was read from.
	SourceFile string
}

// Read parses an input file, choosing the reader by extension: .xlsx goes
// through the XLSX reader, everything else is treated as CSV in the given
// encoding.
func Read(path, encoding string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}
	return ReadCSV(path, encoding)
}

// rowsToMaps converts raw records into header->value maps, skipping rows
// whose cells are all blank.
func rowsToMaps(headers []string, records [][]string) []map[string]string {
	rows := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		if isBlankRecord(rec) {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(rec) {
				row[header] = strings.TrimSpace(rec[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// cleanHeaders trims headers and names any empty ones by position so rows
// can still be addressed.
func cleanHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		headers[i] = h
	}
	return headers
}

func isBlankRecord(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
