package gluecss

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Reporter prints generation results for humans
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: useColors,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// CI environments that render ANSI colors
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintSprites prints one line per sprite, with collision details for failures
func (r *Reporter) PrintSprites(result *GenerateResult) {
	for _, s := range result.Sprites {
		switch s.Status {
		case StatusGenerated:
			fmt.Fprintf(r.w, "%s %s %s\n",
				RenderStyle(StyleSuccess, "generated", r.useColors),
				RenderStyle(StylePath, s.Output, r.useColors),
				pluralizeCount(s.Classes, "class", "classes"))

		case StatusSkipped:
			fmt.Fprintf(r.w, "%s %s %s\n",
				RenderStyle(StyleMuted, "skipped  ", r.useColors),
				RenderStyle(StylePath, s.Output, r.useColors),
				RenderStyle(StyleMuted, "("+string(s.Reason)+")", r.useColors))

		case StatusFailed:
			fmt.Fprintf(r.w, "%s %s\n",
				RenderStyle(StyleError, "failed   ", r.useColors),
				RenderStyle(StylePath, s.Name, r.useColors))
			r.printFailure(s.Err)
		}
	}
}

// printFailure explains a failed sprite; collisions list every offending file
func (r *Reporter) printFailure(err error) {
	var dupErr *DuplicateLabelError
	if !errors.As(err, &dupErr) {
		fmt.Fprintf(r.w, "\t%v\n", err)
		return
	}

	fmt.Fprintln(r.w, "\tsome images will have the same class name:")
	for _, d := range dupErr.Duplicates {
		fmt.Fprintf(r.w, "\t%s => %s\n",
			RenderStyle(StylePath, d.Path, r.useColors),
			RenderStyle(StyleError, "."+d.Label+d.Pseudo, r.useColors))
	}
}

// PrintWarnings prints manifest problems that did not stop the run
func (r *Reporter) PrintWarnings(result *GenerateResult) {
	for _, w := range result.Warnings {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleWarning, "warning:", r.useColors), w)
	}
}

// PrintSummary prints the sprite counts
func (r *Reporter) PrintSummary(result *GenerateResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s scanned: %d generated, %d up-to-date, %d failed\n",
		pluralizeCount(result.ManifestsScanned, "manifest", "manifests"),
		result.Count(StatusGenerated),
		result.Count(StatusSkipped),
		result.Count(StatusFailed))

	if result.Count(StatusFailed) > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleMuted, "Hint: rename the source images so every class name is unique", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
