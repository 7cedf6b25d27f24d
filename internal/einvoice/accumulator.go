package einvoice

import (
	"hylin/einvoice-csv/internal/models"
	"hylin/einvoice-csv/internal/parsererror"
)

// accumulator collects header and detail records during streaming ingestion.
// It is an explicit arena threaded through the chunk loop and finalized once
// at end of stream; releasing it after reconciliation frees the maps.
type accumulator struct {
	headers     map[string]headerRecord
	headerOrder []string
	items       map[string][]models.InvoiceItem

	errors    []models.ParseError
	truncated int
	maxErrors int

	totalRows int
}

func newAccumulator(maxErrors int) *accumulator {
	return &accumulator{
		headers:   make(map[string]headerRecord),
		items:     make(map[string][]models.InvoiceItem),
		maxErrors: maxErrors,
	}
}

// putHeader stores a header record, overwriting any previous record for the
// same invoice number. First-seen order is preserved for the output.
func (a *accumulator) putHeader(h headerRecord) {
	if _, seen := a.headers[h.invoiceNumber]; !seen {
		a.headerOrder = append(a.headerOrder, h.invoiceNumber)
	}
	a.headers[h.invoiceNumber] = h
}

// addItem appends a detail record to its invoice's item list.
func (a *accumulator) addItem(item models.InvoiceItem) {
	a.items[item.InvoiceNumber] = append(a.items[item.InvoiceNumber], item)
}

// addError records an error unless the detail cap is reached, in which case
// only the truncation counter advances.
func (a *accumulator) addError(err error) {
	if len(a.errors) >= a.maxErrors {
		a.truncated++
		return
	}
	a.errors = append(a.errors, toParseError(err))
}

// errorCount is the number of errors seen, recorded or truncated.
func (a *accumulator) errorCount() int {
	return len(a.errors) + a.truncated
}

// release drops the temporary maps so reconciled invoices are the only
// remaining owners of the data.
func (a *accumulator) release() {
	a.headers = nil
	a.headerOrder = nil
	a.items = nil
}

// toParseError converts the pipeline's typed errors into the flat record
// stored on the parse result.
func toParseError(err error) models.ParseError {
	switch e := err.(type) {
	case *parsererror.RowError:
		return models.ParseError{
			Row:     e.Row,
			Field:   e.Field,
			Message: e.Message,
			Raw:     e.Raw,
		}
	case *parsererror.ReconcileError:
		return models.ParseError{
			Row:     e.Row,
			Field:   "invoiceNumber",
			Message: e.Error(),
		}
	default:
		return models.ParseError{Message: err.Error()}
	}
}
