// =============================================================================
// Amazon Order Ledger - CSV Reader
// =============================================================================

package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/mwhitfield/amzledger/internal/ledger"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV reads a CSV file in the declared encoding and returns the parsed
// table. The first row supplies the headers.
//
// Encoding handling:
//   - "utf-8" (default): a leading BOM is stripped (Amazon exports are
//     utf-8-sig); invalid byte sequences are fatal.
//   - "windows-1252", "iso-8859-1": decoded to UTF-8 before parsing.
//
// A missing file maps to ledger.ErrInputNotFound and undecodable content to
// ledger.ErrUnreadableEncoding; both are fatal to the run.
func ReadCSV(path, encoding string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ledger.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	decoded, err := decode(data, encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	r := csv.NewReader(bytes.NewReader(decoded))
	// Amazon exports are not strictly well-formed: tolerate stray quotes and
	// rows with uneven field counts.
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file %s is empty", path)
	}

	headers := cleanHeaders(records[0])
	return &Table{
		Headers:    headers,
		Rows:       rowsToMaps(headers, records[1:]),
		SourceFile: path,
	}, nil
}

// decode converts raw file bytes to UTF-8 per the declared encoding.
func decode(data []byte, encoding string) ([]byte, error) {
	switch normalizeEncoding(encoding) {
	case "utf-8":
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%w: invalid UTF-8", ledger.ErrUnreadableEncoding)
		}
		return data, nil
	case "windows-1252":
		return decodeWith(data, charmap.Windows1252.NewDecoder())
	case "iso-8859-1":
		return decodeWith(data, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

func decodeWith(data []byte, dec transform.Transformer) ([]byte, error) {
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrUnreadableEncoding, err)
	}
	return out, nil
}

func normalizeEncoding(encoding string) string {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8", "utf-8-sig":
		return "utf-8"
	case "windows-1252", "cp1252":
		return "windows-1252"
	case "iso-8859-1", "latin-1", "latin1":
		return "iso-8859-1"
	default:
		return strings.ToLower(strings.TrimSpace(encoding))
	}
}
