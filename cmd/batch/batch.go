// Package batch handles batch processing of e-invoice CSV files
package batch

import (
	"fmt"
	"path/filepath"
	"strings"

	cmdcommon "hylin/einvoice-csv/cmd/common"
	"hylin/einvoice-csv/cmd/root"
	"hylin/einvoice-csv/internal/fileutils"
	"hylin/einvoice-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process e-invoice CSV files from a directory",
	Long: `Batch process all CSV files in an input directory and write the
normalized output for each to the output directory. Files are
processed independently; a failing file does not stop the batch.

Example:
  einvoice-csv batch --input-dir exports/ --output-dir normalized/`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.InputDir, "input-dir", "", "Directory containing e-invoice CSV files")
	Cmd.Flags().StringVar(&root.OutputDir, "output-dir", "", "Directory for normalized output files")
	_ = Cmd.MarkFlagRequired("input-dir")
	_ = Cmd.MarkFlagRequired("output-dir")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	log := root.App.GetLogger()

	if !fileutils.DirectoryExists(root.InputDir) {
		return fmt.Errorf("input directory does not exist: %s", root.InputDir)
	}
	if err := fileutils.EnsureDirectoryExists(root.OutputDir); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	files, err := fileutils.ListCSVFiles(root.InputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Warn("No CSV files found in input directory",
			logging.Field{Key: logging.FieldInputFile, Value: root.InputDir})
		return nil
	}

	processed, failed := 0, 0
	for _, inputFile := range files {
		base := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
		outputFile := filepath.Join(root.OutputDir, base+"_normalized.csv")

		result, err := cmdcommon.ProcessFile(cmd.Context(), root.App,
			inputFile, outputFile, root.SharedFlags.Validate, false)
		if err != nil || !result.Success {
			failed++
			if err != nil {
				log.WithError(err).Error("Failed to process file",
					logging.Field{Key: logging.FieldInputFile, Value: inputFile})
			}
			continue
		}
		processed++
	}

	log.Info("Batch processing completed",
		logging.Field{Key: "processed", Value: processed},
		logging.Field{Key: "failed", Value: failed})
	fmt.Printf("Processed %d of %d files (%d failed)\n", processed, len(files), failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}
