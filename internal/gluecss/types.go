package gluecss

// Image is one packed rectangle of a sprite sheet
type Image struct {
	Filename string // "close__hover.png"
	Path     string // Source location, used in diagnostics
	X        int    // Packed position inside the sheet
	Y        int
	Width    int
	Height   int

	// Derived while building the render context
	Label   string // "sprite_icons_close"
	Pseudo  string // "" or ":hover"
	OffsetX int    // Rendered background-position (the negated packed position)
	OffsetY int
	Last    bool // True for the final image in iteration order
}

// Selector returns the CSS selector body (without the leading dot)
func (i Image) Selector() string {
	return i.Label + i.Pseudo
}

// Ratio is a high-DPI variant of the sheet
type Ratio struct {
	Ratio      float64 // 2, 1.5
	Fraction   string  // "2/1", "3/2"
	SpritePath string  // "../img/icons@2x.png"
}

// Sprite is the packer's output plus the options used to render it
type Sprite struct {
	Name       string
	Hash       string
	Options    Options
	Width      int    // Unscaled sheet width
	Height     int    // Unscaled sheet height
	SpritePath string // Primary sheet URL
	Images     []Image
	Ratios     []Ratio
}

// RenderContext is everything the renderer needs for one stylesheet
type RenderContext struct {
	Version    string
	Hash       string
	SpritePath string
	Width      int
	Height     int
	Images     []Image
	Ratios     []Ratio
}

// Format is the stylesheet dialect, which only selects the file extension
type Format string

// Supported output formats
const (
	FormatCSS  Format = "css"
	FormatLESS Format = "less"
	FormatSCSS Format = "scss"
)

// CamelCaseSeparator switches label joining to camelCase
const CamelCaseSeparator = "camelcase"

// Options is the resolved CSS configuration for a sprite
type Options struct {
	Format              Format // "css" | "less" | "scss"
	Namespace           string // Global namespace, "sprite"
	SpriteNamespace     string // "{sprite_name}"; empty disables it
	URL                 string // Prefix for every sprite path
	CacheBuster         bool   // Append ?hash to sprite URLs
	CacheBusterFilename bool   // Append _hash to the output file name
	Separator           string // "_" or "camelcase"
	Force               bool   // Rebuild even when the header matches
}

// DefaultOptions mirrors the CLI defaults
func DefaultOptions() Options {
	return Options{
		Format:          FormatCSS,
		Namespace:       "sprite",
		SpriteNamespace: "{sprite_name}",
		Separator:       "_",
	}
}
