package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"hylin/einvoice-csv/internal/logging"

	"github.com/gocarina/gocsv"
)

// WriteStatsCSV writes one statistics table to a CSV file. rows must be a
// pointer to a slice of csv-tagged stat structs (CategoryStat, MonthlyStat,
// MerchantStat, ItemFrequency or TimeSeriesPoint).
func WriteStatsCSV(rows interface{}, csvFile string, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = ','
	}

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool takes user-provided paths
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal statistics to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Info("Wrote statistics table",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile})
	return nil
}
