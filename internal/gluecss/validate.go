package gluecss

import (
	"os"
	"path/filepath"
)

// Validate fails when two images resolve to the same selector.
// Images are compared on label plus pseudo-class, so ".icon" and ".icon:hover"
// can coexist. Pseudo-class tokens are stripped from labels by SynthesizeName,
// so a label-only check would reject every "a.png" plus "a__hover.png" pair.
// The same label with the same pseudo-class (or none) is always a duplicate.
func Validate(images []Image) error {
	counts := make(map[string]int, len(images))
	for _, img := range images {
		counts[img.Selector()]++
	}

	var dups []Duplicate
	for _, img := range images {
		if counts[img.Selector()] > 1 {
			dups = append(dups, Duplicate{
				Path:   relativePath(img.Path),
				Label:  img.Label,
				Pseudo: img.Pseudo,
			})
		}
	}

	if len(dups) > 0 {
		return &DuplicateLabelError{Duplicates: dups}
	}
	return nil
}

// relativePath shortens path relative to the working directory when it can
func relativePath(path string) string {
	if path == "" || !filepath.IsAbs(path) {
		return path
	}

	wd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}
