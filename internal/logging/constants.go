package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the pipeline so that
// parse runs can be filtered by file, invoice number or row.
const (
	FieldFile          = "file_path"
	FieldRow           = "row"
	FieldInvoiceNumber = "invoice_number"
	FieldStatus        = "status"
	FieldCount         = "count"
	FieldErrors        = "errors"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
