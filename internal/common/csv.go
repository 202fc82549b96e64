// Package common provides the shared delimited-output writer.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"sales-analytics/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Delimiter is the output field delimiter. The enriched data file uses the
// same delimiter as the input file.
var Delimiter rune = '|'

// SetDelimiter sets the delimiter used for the enriched output file.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteEnrichedCSV writes enriched transactions to a delimited text file.
// The header carries the eight transaction fields followed by the catalog
// fields; one line is written per record, preserving input order.
func WriteEnrichedCSV(records []models.EnrichedTransaction, csvFile string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(records),
	}).Info("Writing enriched transactions")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool writes user-provided output paths
	if err != nil {
		log.WithError(err).Error("Failed to create output file")
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal enriched transactions")
		return fmt.Errorf("error writing enriched data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(records),
	}).Info("Successfully wrote enriched transactions")
	return nil
}
