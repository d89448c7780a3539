// =============================================================================
// Amazon Order Ledger - Error Taxonomy
// =============================================================================
//
// Two error classes exist, with different recovery policy:
//
//   Row-level  (MissingOrderID, MalformedAmount, MalformedDate)
//     The offending row is dropped, a warning is recorded and processing
//     continues. A usable-if-incomplete ledger beats total failure; Amazon
//     exports occasionally contain stray malformed rows.
//
//   File-level (ErrInputNotFound, ErrUnreadableEncoding)
//     Fatal. The run aborts with a non-zero exit and no output file is
//     written: a partially-read input cannot produce a trustworthy ledger.
//
// There are no retries anywhere. Nothing here is transient.
//
// =============================================================================

package ledger

import (
	"errors"
	"fmt"
)

// RowErrorKind classifies recoverable per-row failures.
type RowErrorKind string

const (
	MissingOrderID  RowErrorKind = "missing_order_id"
	MalformedAmount RowErrorKind = "malformed_amount"
	MalformedDate   RowErrorKind = "malformed_date"
)

// RowError describes a single dropped input row.
type RowError struct {
	Kind   RowErrorKind
	Source Source // which table the row came from
	Row    int    // 1-based data row number within its table
	Column string
	Value  string // raw offending value, empty for MissingOrderID
}

func (e *RowError) Error() string {
	switch e.Kind {
	case MissingOrderID:
		return fmt.Sprintf("%s row %d: missing order id (%s)", e.Source, e.Row, e.Column)
	case MalformedAmount:
		return fmt.Sprintf("%s row %d: malformed amount %q in %s", e.Source, e.Row, e.Value, e.Column)
	case MalformedDate:
		return fmt.Sprintf("%s row %d: malformed date %q in %s", e.Source, e.Row, e.Value, e.Column)
	default:
		return fmt.Sprintf("%s row %d: invalid row", e.Source, e.Row)
	}
}

// File-level fatal errors. Callers match with errors.Is.
var (
	ErrInputNotFound      = errors.New("input file not found")
	ErrUnreadableEncoding = errors.New("input not readable in the declared encoding")
)
