package main

import (
	"errors"
	"os"

	itinerary "github.com/alnah/go-itinerary"
	"github.com/alnah/go-itinerary/internal/config"
)

// Exit codes for the itinerary CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, itinerary.ErrBrowserConnect) ||
		errors.Is(err, itinerary.ErrPageCreate) ||
		errors.Is(err, itinerary.ErrPageLoad) ||
		errors.Is(err, itinerary.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrStdoutMultiple) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, itinerary.ErrEmptyItinerary) ||
		errors.Is(err, itinerary.ErrInvalidPageSize) ||
		errors.Is(err, itinerary.ErrInvalidOrientation) ||
		errors.Is(err, itinerary.ErrInvalidMargin) ||
		errors.Is(err, itinerary.ErrInvalidFooterPosition) ||
		errors.Is(err, itinerary.ErrInvalidFormat) ||
		errors.Is(err, itinerary.ErrInvalidTOCDepth) ||
		errors.Is(err, itinerary.ErrTooManyInterests) ||
		errors.Is(err, itinerary.ErrFieldTooLong) ||
		errors.Is(err, itinerary.ErrStyleNotFound) ||
		errors.Is(err, itinerary.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
