// Package parsererror defines the typed errors produced by the e-invoice
// CSV pipeline. Row-level errors are accumulated in the parse result and
// never escape the row boundary; only fatal I/O errors propagate.
package parsererror

import "fmt"

// RowError represents a validation failure on a single CSV row.
// Row is 1-based and counts every delivered row, including skipped ones.
type RowError struct {
	Row     int
	Field   string
	Message string
	Raw     []string
}

func (e *RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d: field %s: %s", e.Row, e.Field, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// ReconcileError represents a header record that could not be reconciled
// into a complete invoice. The invoice is dropped from the output.
type ReconcileError struct {
	Row           int
	InvoiceNumber string
	Reason        string
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("invoice %s: %s", e.InvoiceNumber, e.Reason)
}

// FatalError wraps an I/O or tokenizer failure that aborts the whole parse.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// ValidationError represents a file that does not look like an e-invoice
// CSV export at all.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
