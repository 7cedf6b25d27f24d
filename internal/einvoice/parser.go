package einvoice

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"hylin/einvoice-csv/internal/categorizer"
	"hylin/einvoice-csv/internal/logging"
	"hylin/einvoice-csv/internal/models"
	"hylin/einvoice-csv/internal/parsererror"
)

// Progress percentages: ingestion covers 0-80, reconciliation 85-100.
const (
	ingestProgressCeiling   = 80.0
	reconcileProgressFloor  = 85.0
	reconcileProgressSpread = 15.0
)

// Parser is the streaming e-invoice CSV parser. A Parser is safe for
// sequential reuse across files; concurrent parses against shared state are
// the caller's responsibility.
type Parser struct {
	logger      logging.Logger
	categorizer *categorizer.Categorizer
	opts        Options
}

// New creates a Parser with default options.
func New(logger logging.Logger, cat *categorizer.Categorizer) *Parser {
	return NewWithOptions(logger, cat, DefaultOptions())
}

// NewWithOptions creates a Parser with explicit options.
func NewWithOptions(logger logging.Logger, cat *categorizer.Categorizer, opts Options) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if cat == nil {
		cat = categorizer.New(nil, logger)
	}
	return &Parser{
		logger:      logger,
		categorizer: cat,
		opts:        opts.withDefaults(),
	}
}

// ParseFile parses an e-invoice CSV export from disk. Knowing the file size
// lets ingestion progress track bytes consumed.
func (p *Parser) ParseFile(ctx context.Context, filePath string) (*models.ParseResult, error) {
	file, err := os.Open(filePath) // #nosec G304 -- CLI tool takes user-provided paths
	if err != nil {
		p.logger.WithError(err).Error("Failed to open e-invoice CSV file",
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return fatalResult("open file", err), fmt.Errorf("error opening e-invoice CSV: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	var size int64
	if info, err := file.Stat(); err == nil {
		size = info.Size()
	}

	return p.Parse(ctx, file, size)
}

// Parse processes the export as delimited rows delivered chunk by chunk.
// Row-level failures are recorded in the result and never abort the parse
// (unless SkipErrors is false, in which case the first row error ends
// ingestion and no invoices are produced). Only tokenizer/I/O failures and
// context cancellation return a non-nil error, mirrored by a result with
// Success=false and a single fatal error entry.
//
// size is the total input size in bytes when known, or 0; without it,
// ingestion progress is not reported.
func (p *Parser) Parse(ctx context.Context, r io.Reader, size int64) (*models.ParseResult, error) {
	counting := &countingReader{r: r}
	reader := csv.NewReader(counting)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	acc := newAccumulator(p.opts.MaxErrors)
	aborted := false

ingest:
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			p.logger.WithError(err).Error("Tokenizer failure, aborting parse")
			fatal := &parsererror.FatalError{Op: "read row", Err: err}
			return fatalResult("read row", err), fatal
		}

		acc.totalRows++

		if isBlankRow(row) {
			continue
		}

		switch strings.TrimSpace(row[0]) {
		case "M":
			header, err := parseMainLine(row, acc.totalRows)
			if err != nil {
				acc.addError(err)
				if !p.opts.SkipErrors {
					aborted = true
					break ingest
				}
				continue
			}
			acc.putHeader(header)
		case "D":
			item, err := parseDetailLine(row, acc.totalRows, p.categorizer.Categorize)
			if err != nil {
				acc.addError(err)
				if !p.opts.SkipErrors {
					aborted = true
					break ingest
				}
				continue
			}
			acc.addItem(item)
		default:
			// Unrecognized leading tags and stray rows are skipped silently.
		}

		if acc.totalRows%p.opts.ChunkSize == 0 {
			if err := p.yield(ctx); err != nil {
				return fatalResult("ingest", err), err
			}
			p.reportIngestProgress(counting.n, size, acc.totalRows)
		}
	}

	if aborted {
		p.logger.Warn("Parse aborted on first row error (skip_errors=false)",
			logging.Field{Key: logging.FieldRow, Value: acc.totalRows})
		result := &models.ParseResult{
			Success:   false,
			Invoices:  []models.Invoice{},
			Errors:    acc.errors,
			TotalRows: acc.totalRows,
		}
		acc.release()
		return result, nil
	}

	p.report(models.Progress{Percent: ingestProgressCeiling, Phase: models.PhaseIngest, Rows: acc.totalRows})

	invoices, err := p.reconcile(ctx, acc)
	if err != nil {
		return fatalResult("reconcile", err), err
	}

	result := &models.ParseResult{
		Invoices:        invoices,
		Errors:          acc.errors,
		TruncatedErrors: acc.truncated,
		TotalRows:       acc.totalRows,
		ProcessedRows:   len(invoices),
	}
	result.Success = acc.errorCount() == 0 || (p.opts.SkipErrors && len(invoices) > 0)

	p.logger.Info("Parse completed",
		logging.Field{Key: logging.FieldCount, Value: len(invoices)},
		logging.Field{Key: logging.FieldErrors, Value: acc.errorCount()},
		logging.Field{Key: "total_rows", Value: acc.totalRows})

	acc.release()
	return result, nil
}

// ValidateFormat checks whether the file plausibly is an e-invoice export:
// the first non-blank row must carry an M or D tag.
func (p *Parser) ValidateFormat(filePath string) (bool, error) {
	file, err := os.Open(filePath) // #nosec G304 -- CLI tool takes user-provided paths
	if err != nil {
		return false, fmt.Errorf("error opening file for validation: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	for {
		row, err := reader.Read()
		if err == io.EOF {
			// Empty files are tolerated; parsing yields zero invoices.
			return true, nil
		}
		if err != nil {
			return false, fmt.Errorf("error reading CSV during validation: %w", err)
		}
		if isBlankRow(row) {
			continue
		}
		tag := strings.TrimSpace(row[0])
		return tag == "M" || tag == "D", nil
	}
}

// yield is the cooperative scheduling point at chunk and batch boundaries.
// Cancellation of the context is the only way to stop an in-flight parse.
func (p *Parser) yield(ctx context.Context) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return &parsererror.FatalError{Op: "parse cancelled", Err: err}
		}
	}
	runtime.Gosched()
	return nil
}

func (p *Parser) reportIngestProgress(bytesRead, size int64, rows int) {
	if size <= 0 {
		return
	}
	percent := ingestProgressCeiling * float64(bytesRead) / float64(size)
	if percent > ingestProgressCeiling {
		percent = ingestProgressCeiling
	}
	p.report(models.Progress{Percent: percent, Phase: models.PhaseIngest, Rows: rows})
}

func (p *Parser) report(progress models.Progress) {
	if p.opts.OnProgress != nil {
		p.opts.OnProgress(progress)
	}
}

func fatalResult(op string, err error) *models.ParseResult {
	return &models.ParseResult{
		Success:  false,
		Invoices: []models.Invoice{},
		Errors: []models.ParseError{
			{Message: fmt.Sprintf("%s: %v", op, err)},
		},
	}
}

func isBlankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// countingReader tracks bytes consumed so ingestion progress can be
// proportional to input size.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
