// =============================================================================
// Amazon Order Ledger - XLSX Reader
// =============================================================================

package tabular

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/mwhitfield/amzledger/internal/ledger"
)

// ReadXLSX reads the first sheet of an XLSX workbook as a table. The first
// row supplies the headers; cell values arrive already decoded, so no
// encoding handling applies. Amazon serves some order-history exports as
// workbooks with the same column shape as the CSV variant.
func ReadXLSX(path string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ledger.ErrInputNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("xlsx file %s has no sheets", path)
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read xlsx sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("xlsx file %s is empty", path)
	}

	headers := cleanHeaders(records[0])
	return &Table{
		Headers:    headers,
		Rows:       rowsToMaps(headers, records[1:]),
		SourceFile: path,
	}, nil
}
