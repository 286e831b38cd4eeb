package gluecss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSelectors(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want []string
	}{
		{
			name: "grouped selectors",
			css:  ".a,.b:hover{color:red}",
			want: []string{".a", ".b:hover"},
		},
		{
			name: "duplicates reported once",
			css:  ".a{width:1px}\n.a{height:1px}",
			want: []string{".a"},
		},
		{
			name: "media query blocks",
			css:  "@media screen and (min-device-pixel-ratio: 2){\n    .a, \n    .b\n    {\n        background-size: 1px 1px;\n    }\n}",
			want: []string{".a", ".b"},
		},
		{
			name: "urls and numbers are ignored",
			css:  ".x{background-image:url('a.b.png');background-position:-1.5px 0}",
			want: []string{".x"},
		},
		{
			name: "no classes",
			css:  "body{margin:0}",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSelectors(tt.css))
		})
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantVersion string
		wantHash    string
		wantOK      bool
	}{
		{"valid", "/* glue: 0.13 hash: abc123 */\n.a{}", "0.13", "abc123", true},
		{"only header", "/* glue: dev hash: ff */", "dev", "ff", true},
		{"bom", "\xEF\xBB\xBF/* glue: 0.13 hash: abc */\n", "0.13", "abc", true},
		{"not a glue file", "/* hand written */\n", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, hash, ok := ParseHeader([]byte(tt.content))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantVersion, version)
			assert.Equal(t, tt.wantHash, hash)
		})
	}
}
