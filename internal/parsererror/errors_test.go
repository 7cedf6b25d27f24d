package parsererror

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowErrorMessage(t *testing.T) {
	withField := &RowError{Row: 7, Field: "amount", Message: "no digits"}
	assert.Equal(t, "row 7: field amount: no digits", withField.Error())

	withoutField := &RowError{Row: 3, Message: "detail line requires at least 4 fields"}
	assert.Equal(t, "row 3: detail line requires at least 4 fields", withoutField.Error())
}

func TestReconcileErrorMessage(t *testing.T) {
	err := &ReconcileError{Row: 12, InvoiceNumber: "AB12345678", Reason: "missing required field: merchant name"}
	assert.Equal(t, "invoice AB12345678: missing required field: merchant name", err.Error())
}

func TestFatalErrorUnwrap(t *testing.T) {
	err := &FatalError{Op: "read row", Err: io.ErrUnexpectedEOF}
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "read row")

	var fatal *FatalError
	assert.True(t, errors.As(error(err), &fatal))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{FilePath: "export.csv", Reason: "first row is not an M or D record"}
	assert.Equal(t, "validation failed for export.csv: first row is not an M or D record", err.Error())
}
