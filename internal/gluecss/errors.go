package gluecss

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat is returned for an unknown output format
var ErrInvalidFormat = errors.New("invalid css format")

// ConfigConflictError reports mutually exclusive options set together
type ConfigConflictError struct {
	Options []string // ["cachebuster", "cachebuster-filename"]
}

func (e *ConfigConflictError) Error() string {
	quoted := make([]string, len(e.Options))
	for i, o := range e.Options {
		quoted[i] = "--" + o
	}
	return fmt.Sprintf("you can't use %s at the same time", strings.Join(quoted, " and "))
}

// Duplicate is one image involved in a class name collision
type Duplicate struct {
	Path   string
	Label  string
	Pseudo string
}

// DuplicateLabelError lists every image whose class name collides with another
type DuplicateLabelError struct {
	Sprite     string
	Duplicates []Duplicate
}

func (e *DuplicateLabelError) Error() string {
	var b strings.Builder
	b.WriteString("some images will have the same class name:")
	for _, d := range e.Duplicates {
		fmt.Fprintf(&b, "\n\t%s => .%s%s", d.Path, d.Label, d.Pseudo)
	}
	return b.String()
}

// Validate checks the options for values that cannot be combined
func (o Options) Validate() error {
	if o.CacheBuster && o.CacheBusterFilename {
		return &ConfigConflictError{Options: []string{"cachebuster", "cachebuster-filename"}}
	}

	switch o.Format {
	case FormatCSS, FormatLESS, FormatSCSS:
	default:
		return fmt.Errorf("%w %q (expected css, less or scss)", ErrInvalidFormat, o.Format)
	}

	return nil
}
