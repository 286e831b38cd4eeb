package gluecss

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var headerPattern = regexp.MustCompile(`^/\* glue: (.+) hash: (\S*) \*/$`)

// StylesheetInfo describes a generated stylesheet
type StylesheetInfo struct {
	Version   string
	Hash      string
	HasHeader bool
	Selectors []string // ".sprite_icons_close", ".sprite_icons_close:hover"
}

// InspectStylesheet reads the glue header and every class selector in content
func InspectStylesheet(content []byte) StylesheetInfo {
	info := StylesheetInfo{}
	info.Version, info.Hash, info.HasHeader = ParseHeader(content)
	info.Selectors = ExtractSelectors(string(content))
	return info
}

// ParseHeader extracts version and hash from the first line
func ParseHeader(content []byte) (version, hash string, ok bool) {
	content = bytes.TrimPrefix(content, utf8BOM)

	line, err := bufio.NewReader(bytes.NewReader(content)).ReadString('\n')
	if err != nil && line == "" {
		return "", "", false
	}

	m := headerPattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ExtractSelectors lexes CSS and returns each distinct class selector in
// order of first appearance, including a trailing pseudo-class.
func ExtractSelectors(content string) []string {
	lexer := css.NewLexer(parse.NewInputString(content))

	seen := make(map[string]bool)
	var selectors []string

	// pending holds a class selector waiting for a possible ":pseudo"
	pending := ""
	flush := func() {
		if pending != "" && !seen[pending] {
			seen[pending] = true
			selectors = append(selectors, pending)
		}
		pending = ""
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		switch {
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			flush()
			tt2, name := lexer.Next()
			if tt2 == css.IdentToken {
				pending = "." + string(name)
			}

		case tt == css.ColonToken && pending != "":
			tt2, name := lexer.Next()
			if tt2 == css.IdentToken {
				pending += ":" + string(name)
			}
			flush()

		default:
			flush()
		}
	}
	flush()

	return selectors
}
