package logging_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"avoronin/cashback-matrix/internal/logging"
)

func captureLogger() (logging.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.JSONFormatter{})
	return logging.NewLogrusAdapterFromLogger(base), &buf
}

func TestLogrusAdapter_FieldsAppearInOutput(t *testing.T) {
	log, buf := captureLogger()

	log.Info("extracted offers",
		logging.Field{Key: logging.FieldBank, Value: "Sber"},
		logging.Field{Key: logging.FieldCount, Value: 3},
	)

	out := buf.String()
	assert.Contains(t, out, `"bank":"Sber"`)
	assert.Contains(t, out, `"count":3`)
	assert.Contains(t, out, "extracted offers")
}

func TestLogrusAdapter_WithChaining(t *testing.T) {
	log, buf := captureLogger()

	log.WithField("component", "store").
		WithError(errors.New("boom")).
		Warn("load failed")

	out := buf.String()
	assert.Contains(t, out, `"component":"store"`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestNewLogrusAdapter_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := logging.NewLogrusAdapter("nonsense", "text")
	assert.NotNil(t, log)
}

func TestSetDefault(t *testing.T) {
	original := logging.GetLogger()
	defer logging.SetDefault(original)

	replacement, _ := captureLogger()
	logging.SetDefault(replacement)
	assert.Equal(t, replacement, logging.GetLogger())

	// nil is ignored rather than clearing the default.
	logging.SetDefault(nil)
	assert.Equal(t, replacement, logging.GetLogger())
}
