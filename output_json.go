package gluecss

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	core "github.com/yacobolo/gluecss/internal/gluecss"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string       `json:"version"`
	Timestamp string       `json:"timestamp"`
	Summary   JSONSummary  `json:"summary"`
	Sprites   []JSONSprite `json:"sprites"`
	Warnings  []string     `json:"warnings"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	ManifestsScanned int `json:"manifests_scanned"`
	Generated        int `json:"generated"`
	Skipped          int `json:"skipped"`
	Failed           int `json:"failed"`
}

// JSONSprite is the outcome for one sprite
type JSONSprite struct {
	Name       string          `json:"name"`
	Manifest   string          `json:"manifest"`
	Output     string          `json:"output"`
	Status     string          `json:"status"`
	Reason     string          `json:"reason,omitempty"`
	Classes    int             `json:"classes,omitempty"`
	Error      string          `json:"error,omitempty"`
	Duplicates []JSONDuplicate `json:"duplicates,omitempty"`
}

// JSONDuplicate is one image involved in a class name collision
type JSONDuplicate struct {
	Path     string `json:"path"`
	Selector string `json:"selector"`
}

// WriteJSON writes the generation result as JSON
func WriteJSON(w io.Writer, result *GenerateResult, version string) error {
	output := buildJSONOutput(result, version)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts GenerateResult to JSONOutput
func buildJSONOutput(result *GenerateResult, version string) JSONOutput {
	output := JSONOutput{
		Version:   version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Summary: JSONSummary{
			ManifestsScanned: result.ManifestsScanned,
			Generated:        result.Count(core.StatusGenerated),
			Skipped:          result.Count(core.StatusSkipped),
			Failed:           result.Count(core.StatusFailed),
		},
		Sprites:  make([]JSONSprite, 0, len(result.Sprites)),
		Warnings: result.Warnings,
	}

	if output.Warnings == nil {
		output.Warnings = []string{}
	}

	for _, s := range result.Sprites {
		js := JSONSprite{
			Name:     s.Name,
			Manifest: s.Manifest,
			Output:   s.Output,
			Status:   string(s.Status),
			Reason:   string(s.Reason),
			Classes:  s.Classes,
		}

		if s.Err != nil {
			js.Error = s.Err.Error()

			var dupErr *DuplicateLabelError
			if errors.As(s.Err, &dupErr) {
				for _, d := range dupErr.Duplicates {
					js.Duplicates = append(js.Duplicates, JSONDuplicate{
						Path:     d.Path,
						Selector: "." + d.Label + d.Pseudo,
					})
				}
			}
		}

		output.Sprites = append(output.Sprites, js)
	}

	return output
}
