// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"

	"hylin/einvoice-csv/internal/container"
	"hylin/einvoice-csv/internal/einvoice"
	"hylin/einvoice-csv/internal/logging"
	"hylin/einvoice-csv/internal/models"
	"hylin/einvoice-csv/internal/parsererror"

	"github.com/schollz/progressbar/v3"
)

// ProcessFile validates and parses a single e-invoice CSV file, records the
// result in the shared invoice collection and optionally writes the
// normalized CSV output. A progress bar is rendered when showProgress is
// set.
func ProcessFile(ctx context.Context, app *container.Container, inputFile, outputFile string, validate, showProgress bool) (*models.ParseResult, error) {
	log := app.GetLogger()

	var onProgress einvoice.ProgressFunc
	if showProgress {
		bar := progressbar.NewOptions(100,
			progressbar.OptionSetDescription("parsing"),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionClearOnFinish(),
		)
		onProgress = func(p models.Progress) {
			_ = bar.Set(int(p.Percent))
		}
	}
	p := app.NewParser(onProgress)

	if validate {
		log.Info("Validating format...",
			logging.Field{Key: logging.FieldInputFile, Value: inputFile})
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			return nil, fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return nil, &parsererror.ValidationError{
				FilePath: inputFile,
				Reason:   "first row is not an M or D record",
			}
		}
		log.Info("Validation successful.")
	}

	result, err := p.ParseFile(ctx, inputFile)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}

	app.GetCollection().Put(inputFile, result.Invoices)

	log.Info("Parse completed",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldCount, Value: len(result.Invoices)},
		logging.Field{Key: logging.FieldErrors, Value: len(result.Errors) + result.TruncatedErrors},
		logging.Field{Key: logging.FieldStatus, Value: result.Success})

	if outputFile != "" {
		if err := WriteOutput(app, result.Invoices, outputFile); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// PrintResultSummary writes a short human-readable summary of a parse
// result to stdout.
func PrintResultSummary(result *models.ParseResult) {
	fmt.Printf("Rows processed: %d/%d\n", result.ProcessedRows, result.TotalRows)
	fmt.Printf("Invoices:       %d\n", len(result.Invoices))
	fmt.Printf("Errors:         %d", len(result.Errors))
	if result.TruncatedErrors > 0 {
		fmt.Printf(" (+%d truncated)", result.TruncatedErrors)
	}
	fmt.Println()
	for _, e := range result.Errors {
		fmt.Printf("  row %d: %s\n", e.Row, e.Message)
	}
	if result.Success {
		fmt.Println("Status:         ok")
	} else {
		fmt.Println("Status:         failed")
	}
}
