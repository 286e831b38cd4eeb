package gluecss

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// pseudoClasses lists the pseudo-classes recognised in "name__hover" filenames
var pseudoClasses = map[string]bool{
	"link":         true,
	"visited":      true,
	"active":       true,
	"hover":        true,
	"focus":        true,
	"first-letter": true,
	"first-line":   true,
	"first-child":  true,
	"before":       true,
	"after":        true,
}

// pseudoDelimiter separates a base name from its pseudo-class token
const pseudoDelimiter = "__"

// SynthesizeName builds the CSS class label and pseudo-class for an image.
//
// The label joins [namespace, sprite namespace, filename] with the configured
// separator (or camelCase). When the filename carries "__<pseudo>" tokens the
// leftmost allow-listed one becomes the pseudo-class and is removed from the
// label. It never fails.
func SynthesizeName(filename, spriteName string, opts Options) (label, pseudo string) {
	base := stripExtension(filename)

	namespace := make([]string, 0, 3)

	if opts.Namespace != "" {
		namespace = append(namespace, sanitize(opts.Namespace))
	}

	if opts.SpriteNamespace != "" {
		spriteNS := strings.ReplaceAll(opts.SpriteNamespace, "{sprite_name}", sanitize(spriteName))
		namespace = append(namespace, sanitize(spriteNS))
	}

	namespace = append(namespace, sanitize(base))

	separator := opts.Separator
	if separator == CamelCaseSeparator {
		for i := 1; i < len(namespace); i++ {
			namespace[i] = titleFirst(namespace[i])
		}
		separator = ""
	}

	label = strings.Join(namespace, separator)

	if token := findPseudoClass(base); token != "" {
		pseudo = ":" + token
		label = strings.ReplaceAll(label, pseudoDelimiter+token, "")
	}

	return label, pseudo
}

// findPseudoClass returns the leftmost allow-listed "__" token, or ""
func findPseudoClass(name string) string {
	if !strings.Contains(name, pseudoDelimiter) {
		return ""
	}

	for _, token := range strings.Split(name, pseudoDelimiter) {
		if pseudoClasses[token] {
			return token
		}
	}

	return ""
}

// stripExtension drops everything after the last dot
func stripExtension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[:i]
	}
	return filename
}

// sanitize keeps only word characters, hyphens and underscores
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			return r
		}
		return -1
	}, s)
}

// titleFirst upper-cases the first rune and leaves the rest alone
func titleFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToTitle(r)) + s[size:]
}
