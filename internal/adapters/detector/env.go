// Package detector provides environment detection for log format selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogFormat represents the log rendering format.
type LogFormat int

const (
	// FormatAuto automatically detects the appropriate format.
	FormatAuto LogFormat = iota
	// FormatPretty forces human-readable colored output.
	FormatPretty
	// FormatJSON forces machine-readable JSON output.
	FormatJSON
)

// DetectEnvironment returns the recommended log format based on the
// environment. Editors and CI systems consume the output as a stream, so
// anything that is not an interactive terminal gets JSON.
func DetectEnvironment() LogFormat {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies the user override flag to auto-detection.
// userFlag should be one of: "auto", "pretty", "json", or empty.
func ResolveFormat(autoDetected LogFormat, userFlag string) LogFormat {
	switch userFlag {
	case "pretty":
		return FormatPretty
	case "json":
		return FormatJSON
	case "auto", "":
		return autoDetected
	default:
		return autoDetected
	}
}
