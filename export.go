package itinerary

import (
	"strings"
	"unicode"
)

// ExportExtension is the file extension used for plain-text downloads.
const ExportExtension = ".txt"

// defaultExportStem is used when the destination city is empty or unusable.
const defaultExportStem = "trip"

// Export returns the bytes to write when the itinerary is copied or
// downloaded. The result is always the original document, byte for byte;
// it is never rebuilt from classified blocks.
func Export(doc string) []byte {
	return []byte(doc)
}

// ExportFilename returns the download name for a city's itinerary,
// "<city>_itinerary.txt". Path separators, control characters and
// characters rejected by common filesystems are replaced with '_'.
func ExportFilename(city string) string {
	return ExportStem(city) + ExportExtension
}

// ExportStem returns the file name without extension, "<city>_itinerary".
func ExportStem(city string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsControl(r):
			return '_'
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		}
		return r
	}, strings.TrimSpace(city))

	if strings.Trim(name, "._ ") == "" {
		name = defaultExportStem
	}
	return name + "_itinerary"
}
