// Package common provides shared I/O helpers used by several commands.
package common

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"avoronin/cashback-matrix/internal/config"
	"avoronin/cashback-matrix/internal/models"
)

var log = config.Logger

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadEntriesFromCSV reads raw entries from a CSV file with the columns
// bank, category, percent. This is the manual alternative to the extraction
// oracle for data that already exists in spreadsheet form.
func ReadEntriesFromCSV(filePath string) ([]models.RawEntry, error) {
	log.WithField("file", filePath).Info("Reading entries from CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var entries []models.RawEntry
	if err := gocsv.UnmarshalFile(file, &entries); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.WithField("count", len(entries)).Info("Successfully read CSV entries")
	return entries, nil
}
