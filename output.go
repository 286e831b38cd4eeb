package gluecss

import (
	"io"
	"os"

	core "github.com/yacobolo/gluecss/internal/gluecss"
)

// OutputFormat represents the report format
type OutputFormat string

const (
	// OutputText prints one line per sprite plus a summary (interactive use)
	OutputText OutputFormat = "text"
	// OutputSummary prints only the counts
	OutputSummary OutputFormat = "summary"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the report format from the flag value
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "summary":
		return OutputSummary
	case "json":
		return OutputJSON
	default:
		// Unknown or empty falls back to text
		return OutputText
	}
}

// WriteOutput writes the generation result in the specified format
func WriteOutput(w io.Writer, result *GenerateResult, format OutputFormat, version string, useColors bool) {
	switch format {
	case OutputText:
		reporter := core.NewReporter(w, useColors)
		reporter.PrintWarnings(result)
		reporter.PrintSprites(result)
		reporter.PrintSummary(result)

	case OutputSummary:
		reporter := core.NewReporter(w, useColors)
		reporter.PrintWarnings(result)
		reporter.PrintSummary(result)

	case OutputJSON:
		if err := WriteJSON(w, result, version); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}
