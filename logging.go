package jsonschema

import (
	"os"

	"charm.land/log/v2"
)

// NewCLILogger builds the structured logger the CLI harness uses to report
// load/parse errors and per-file diagnostic summaries. The core validator
// package itself never logs - it is a pure function from document+schema
// to problems - this is strictly for cmd/yamlvalidate.
func NewCLILogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "yamlvalidate",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
