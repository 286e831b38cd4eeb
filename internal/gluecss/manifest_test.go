package gluecss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iconsManifest = `
name: icons
hash: abc123
width: 32
height: 16
sprite_path: icons.png
ratios:
  - ratio: 2
    sprite_path: icons@2x.png
  - ratio: 1
    sprite_path: icons.png
  - ratio: 1.5
    fraction: "3/2"
    sprite_path: icons@1.5x.png
images:
  - filename: a.png
    path: src/icons/a.png
    x: 0
    y: 0
    width: 16
    height: 16
  - filename: b__hover.png
    path: src/icons/b__hover.png
    x: 16
    y: 0
    width: 16
    height: 16
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(iconsManifest))
	require.NoError(t, err)

	assert.Equal(t, "icons", m.Name)
	assert.Equal(t, "abc123", m.Hash)
	assert.Equal(t, 32, m.Width)
	require.Len(t, m.Images, 2)
	assert.Equal(t, "b__hover.png", m.Images[1].Filename)
	assert.Equal(t, 16, m.Images[1].X)
	require.Len(t, m.Ratios, 3)
}

func TestParseManifest_JSON(t *testing.T) {
	content := `{"name": "flags", "hash": "ff00", "width": 8, "height": 8,
		"sprite_path": "flags.png",
		"images": [{"filename": "es.png", "x": 0, "y": 0, "width": 8, "height": 8}]}`

	m, err := ParseManifest([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, "flags", m.Name)
	require.Len(t, m.Images, 1)
	assert.Equal(t, "es.png", m.Images[0].Filename)
}

func TestParseManifest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing hash",
			content: "name: icons\n",
			wantErr: "missing hash",
		},
		{
			name:    "negative position",
			content: "hash: abc\nimages:\n  - filename: a.png\n    x: -1\n",
			wantErr: "negative geometry",
		},
		{
			name:    "zero ratio",
			content: "hash: abc\nratios:\n  - ratio: 0\n",
			wantErr: "must be positive",
		},
		{
			name:    "not yaml",
			content: "name: [unterminated",
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.content))
			require.Error(t, err)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadManifest_NameFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buttons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hash: abc\n"), 0644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "buttons", m.Name)
	assert.Equal(t, path, m.Source)
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")
}

func TestManifestSprite(t *testing.T) {
	m, err := ParseManifest([]byte(iconsManifest))
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.URL = "/static/img/"
	sprite := m.Sprite(opts)

	assert.Equal(t, "icons", sprite.Name)
	assert.Equal(t, "/static/img/icons.png", sprite.SpritePath)
	assert.Equal(t, opts, sprite.Options)
	require.Len(t, sprite.Images, 2)
	assert.Equal(t, "src/icons/a.png", sprite.Images[0].Path)

	// Ratio 1 is dropped and the rest are sorted ascending
	assert.Equal(t, []Ratio{
		{Ratio: 1.5, Fraction: "3/2", SpritePath: "/static/img/icons@1.5x.png"},
		{Ratio: 2, Fraction: "2/1", SpritePath: "/static/img/icons@2x.png"},
	}, sprite.Ratios)
}

func TestNearestFraction(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{2, "2/1"},
		{3, "3/1"},
		{1.5, "3/2"},
		{1.25, "5/4"},
		{1.3, "13/10"},
		{2.0 / 3.0, "2/3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NearestFraction(tt.ratio), "ratio %v", tt.ratio)
	}
}

func TestOutputPath(t *testing.T) {
	sprite := Sprite{Name: "icons", Hash: "abc123", Options: DefaultOptions()}
	assert.Equal(t, filepath.Join("css", "icons.css"), OutputPath("css", sprite))

	sprite.Options.Format = FormatSCSS
	sprite.Options.CacheBusterFilename = true
	assert.Equal(t, filepath.Join("css", "icons_abc123.scss"), OutputPath("css", sprite))
}
