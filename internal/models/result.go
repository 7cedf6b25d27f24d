package models

// ParseError is the accumulated record of a single row or reconciliation
// failure. Errors are collected in the parse result and never thrown past
// the parser boundary unless fatal.
type ParseError struct {
	Row     int      `json:"row"`
	Field   string   `json:"field,omitempty"`
	Message string   `json:"message"`
	Raw     []string `json:"data,omitempty"`
}

// ParseResult is the outcome of parsing one e-invoice CSV export.
type ParseResult struct {
	// Success is true when no errors occurred, or when errors were tolerated
	// (SkipErrors) and at least one invoice was still produced.
	Success bool `json:"success"`

	// Invoices are the reconciled invoices, in header-row order.
	Invoices []Invoice `json:"invoices"`

	// Errors holds row and reconciliation errors, capped at the configured
	// maximum. TruncatedErrors counts errors beyond the cap.
	Errors          []ParseError `json:"errors"`
	TruncatedErrors int          `json:"truncatedErrors,omitempty"`

	// TotalRows counts every delivered row, including skipped ones.
	// ProcessedRows counts successfully reconciled invoices.
	TotalRows     int `json:"totalRows"`
	ProcessedRows int `json:"processedRows"`
}

// Progress is a snapshot passed to the OnProgress callback. Percent moves
// from 0 to 80 during ingestion and from 85 to 100 during reconciliation.
type Progress struct {
	Percent float64
	Phase   string
	Rows    int
}

// Progress phases.
const (
	PhaseIngest    = "ingest"
	PhaseReconcile = "reconcile"
)
