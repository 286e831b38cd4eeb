package gluecss

// SpriteStatus is the outcome of generating one sprite
type SpriteStatus string

// Sprite outcomes
const (
	StatusGenerated SpriteStatus = "generated"
	StatusSkipped   SpriteStatus = "skipped"
	StatusFailed    SpriteStatus = "failed"
)

// SpriteResult records what happened to one sprite
type SpriteResult struct {
	Name     string
	Manifest string        // Manifest file the sprite came from
	Output   string        // Stylesheet path
	Status   SpriteStatus  // generated | skipped | failed
	Reason   RebuildReason // Why the rebuild check decided as it did
	Classes  int           // Selectors written (generated only)
	Err      error         // Set when Status is failed
}

// GenerateResult contains generation stats
type GenerateResult struct {
	ManifestsScanned int
	Sprites          []SpriteResult
	Warnings         []string
	Errors           []error
}

// Count returns how many sprites ended with status
func (r *GenerateResult) Count(status SpriteStatus) int {
	n := 0
	for _, s := range r.Sprites {
		if s.Status == status {
			n++
		}
	}
	return n
}

// Outputs lists the stylesheets written in this run
func (r *GenerateResult) Outputs() []string {
	var outputs []string
	for _, s := range r.Sprites {
		if s.Status == StatusGenerated {
			outputs = append(outputs, s.Output)
		}
	}
	return outputs
}
