package forecast

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Lookup when no product matches the given name.
// Callers should treat it as recoverable (re-prompt), not fatal.
var ErrNotFound = errors.New("product not found")

// MalformedRecordError identifies a single invalid row in the product
// table. The whole load or compute fails on the first bad row; rows are
// never silently coerced or dropped.
type MalformedRecordError struct {
	Row    int    // 1-based position in the table, 0 if unknown
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("malformed record at row %d: field %q %s", e.Row, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed record: field %q %s", e.Field, e.Reason)
}
