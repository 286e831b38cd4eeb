package gluecss

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxDenominator bounds the fraction used by -o-min-device-pixel-ratio
const maxDenominator = 1000

// Manifest is the packer's description of one sprite sheet.
// JSON manifests decode through the same YAML parser.
type Manifest struct {
	Name       string          `yaml:"name"`
	Hash       string          `yaml:"hash"`
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	SpritePath string          `yaml:"sprite_path"`
	Ratios     []ManifestRatio `yaml:"ratios"`
	Images     []ManifestImage `yaml:"images"`

	// Source is the manifest file the sprite was loaded from
	Source string `yaml:"-"`
}

// ManifestRatio is a high-DPI sheet entry
type ManifestRatio struct {
	Ratio      float64 `yaml:"ratio"`
	Fraction   string  `yaml:"fraction"`
	SpritePath string  `yaml:"sprite_path"`
}

// ManifestImage is one packed image entry
type ManifestImage struct {
	Filename string `yaml:"filename"`
	Path     string `yaml:"path"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
}

// LoadManifest reads and decodes a manifest file
func LoadManifest(path string) (*Manifest, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := ParseManifest(content)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	m.Source = path

	// Fall back to the file name when the packer left the sprite unnamed
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return m, nil
}

// ParseManifest decodes manifest content and checks the geometry
func ParseManifest(content []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, err
	}

	if m.Hash == "" {
		return nil, fmt.Errorf("missing hash")
	}

	for _, img := range m.Images {
		if img.X < 0 || img.Y < 0 || img.Width < 0 || img.Height < 0 {
			return nil, fmt.Errorf("image %q has negative geometry", img.Filename)
		}
	}

	for _, r := range m.Ratios {
		if r.Ratio <= 0 {
			return nil, fmt.Errorf("ratio %v must be positive", r.Ratio)
		}
	}

	return &m, nil
}

// Sprite converts the manifest into a Sprite rendered with opts.
// The URL prefix is prepended to every sheet path, ratio 1 is dropped (the base
// rule already covers it) and the remaining ratios are sorted ascending.
func (m *Manifest) Sprite(opts Options) Sprite {
	sprite := Sprite{
		Name:       m.Name,
		Hash:       m.Hash,
		Options:    opts,
		Width:      m.Width,
		Height:     m.Height,
		SpritePath: opts.URL + m.SpritePath,
		Images:     make([]Image, 0, len(m.Images)),
	}

	for _, img := range m.Images {
		sprite.Images = append(sprite.Images, Image{
			Filename: img.Filename,
			Path:     img.Path,
			X:        img.X,
			Y:        img.Y,
			Width:    img.Width,
			Height:   img.Height,
		})
	}

	for _, r := range m.Ratios {
		if r.Ratio == 1 {
			continue
		}
		fraction := r.Fraction
		if fraction == "" {
			fraction = NearestFraction(r.Ratio)
		}
		sprite.Ratios = append(sprite.Ratios, Ratio{
			Ratio:      r.Ratio,
			Fraction:   fraction,
			SpritePath: opts.URL + r.SpritePath,
		})
	}

	sort.SliceStable(sprite.Ratios, func(i, j int) bool {
		return sprite.Ratios[i].Ratio < sprite.Ratios[j].Ratio
	})

	return sprite
}

// NearestFraction returns the closest "num/den" to v with den <= 1000
func NearestFraction(v float64) string {
	bestNum, bestDen := math.Round(v), 1.0
	bestErr := math.Abs(v - bestNum)

	for den := 2.0; den <= maxDenominator && bestErr > 0; den++ {
		num := math.Round(v * den)
		if e := math.Abs(v - num/den); e < bestErr {
			bestNum, bestDen, bestErr = num, den, e
		}
	}

	return strconv.FormatFloat(bestNum, 'f', 0, 64) + "/" + strconv.FormatFloat(bestDen, 'f', 0, 64)
}

// OutputPath is where the stylesheet for sprite is written
func OutputPath(dir string, sprite Sprite) string {
	name := sprite.Name
	if sprite.Options.CacheBusterFilename {
		name = name + "_" + sprite.Hash
	}
	return filepath.Join(dir, name+"."+string(sprite.Options.Format))
}
