// Package einvoice implements the streaming parser for Taiwan e-invoice CSV
// exports. An export interleaves two record types: M header rows carrying
// invoice-level fields and D detail rows carrying one line item each, joined
// by invoice number. The parser accumulates both kinds chunk by chunk, then
// reconciles them into complete invoices in bounded batches.
package einvoice

import "hylin/einvoice-csv/internal/models"

// Default tuning values for the streaming parser.
const (
	DefaultChunkSize = 1000
	DefaultBatchSize = 500
	DefaultMaxErrors = 100
)

// ProgressFunc receives progress snapshots during parsing. Callbacks are
// synchronous fire-and-forget notifications; they must not block.
type ProgressFunc func(models.Progress)

// Options tunes a parse run.
type Options struct {
	// ChunkSize is the number of rows ingested between yield points.
	ChunkSize int

	// BatchSize is the number of header records reconciled between yield
	// points.
	BatchSize int

	// SkipErrors tolerates row-level failures: the error is recorded and
	// parsing continues. When false, the first row error aborts ingestion
	// and the result carries no invoices.
	SkipErrors bool

	// MaxErrors caps how many errors are recorded in detail. Errors beyond
	// the cap are counted but carry no detail; row processing continues.
	MaxErrors int

	// OnProgress, when set, is invoked at every chunk and batch boundary.
	OnProgress ProgressFunc
}

// DefaultOptions returns the recommended starting point for a parse run:
// default tuning values with SkipErrors enabled. Callers overriding single
// fields should start from this value; a zero Options only has its numeric
// fields backfilled, so it keeps SkipErrors=false and aborts on the first
// row error.
func DefaultOptions() Options {
	return Options{
		ChunkSize:  DefaultChunkSize,
		BatchSize:  DefaultBatchSize,
		SkipErrors: true,
		MaxErrors:  DefaultMaxErrors,
	}
}

// withDefaults backfills unset numeric fields. SkipErrors is left as given:
// false is a meaningful setting, not an absence.
func (o Options) withDefaults() Options {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.MaxErrors <= 0 {
		o.MaxErrors = DefaultMaxErrors
	}
	return o
}
