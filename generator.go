package gluecss

import (
	"fmt"
	"os"
	"path/filepath"

	core "github.com/yacobolo/gluecss/internal/gluecss"
)

// DefaultVersion is written to headers when Config.Version is empty
const DefaultVersion = "dev"

// Public aliases for the core types
type (
	Options             = core.Options
	Format              = core.Format
	GenerateResult      = core.GenerateResult
	SpriteResult        = core.SpriteResult
	DuplicateLabelError = core.DuplicateLabelError
	ConfigConflictError = core.ConfigConflictError
)

// Supported output formats
const (
	FormatCSS  = core.FormatCSS
	FormatLESS = core.FormatLESS
	FormatSCSS = core.FormatSCSS
)

// DefaultOptions returns the CSS options used when nothing is configured
func DefaultOptions() Options {
	return core.DefaultOptions()
}

// Config holds generator configuration
type Config struct {
	SourceDir string   // "build/sprites" (where the packer writes manifests)
	Includes  []string // ["**/*.yaml", "**/*.json"]
	OutputDir string   // "web/static/css"
	Options   Options  // Resolved CSS options
	Version   string   // Written into every header; part of the rebuild check
	Verbose   bool     // Enable debug logging
}

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	if err := config.Options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if config.Version == "" {
		config.Version = DefaultVersion
	}

	result := &GenerateResult{}

	// 1. Scan manifests
	files, stats, err := scanManifests(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.ManifestsScanned = len(files)

	if config.Verbose {
		fmt.Printf("Found %d manifests (%d files skipped)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	// 2. Load all manifests
	manifests, warnings := loadManifests(files, config)
	result.Warnings = warnings

	// 3. Generate one stylesheet per sprite
	written := make(map[string]string)
	for _, m := range manifests {
		sr := generateSprite(m, config, written)
		if sr.Err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("sprite %s: %w", sr.Name, sr.Err))
		}
		result.Sprites = append(result.Sprites, sr)
	}

	if config.Verbose {
		fmt.Printf("Generated %d stylesheets (%d up-to-date, %d failed)\n",
			result.Count(core.StatusGenerated), result.Count(core.StatusSkipped), result.Count(core.StatusFailed))
	}

	return result, nil
}

// loadManifests reads every manifest; unreadable ones become warnings
func loadManifests(files []string, config Config) ([]*core.Manifest, []string) {
	var manifests []*core.Manifest
	var warnings []string

	for _, file := range files {
		if config.Verbose {
			fmt.Printf("Loading %s\n", file)
		}

		m, err := core.LoadManifest(file)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to load %s: %v", file, err))
			continue
		}

		manifests = append(manifests, m)
	}

	return manifests, warnings
}

// generateSprite runs the rebuild check, builds the context and writes the stylesheet.
// written maps output paths to the manifest that produced them in this run.
func generateSprite(m *core.Manifest, config Config, written map[string]string) SpriteResult {
	sprite := m.Sprite(config.Options)
	output := core.OutputPath(config.OutputDir, sprite)

	sr := SpriteResult{
		Name:     sprite.Name,
		Manifest: m.Source,
		Output:   output,
	}

	if other, ok := written[output]; ok {
		sr.Status = core.StatusFailed
		sr.Err = fmt.Errorf("output %s already written from %s", output, other)
		return sr
	}
	written[output] = m.Source

	rebuild, reason := core.CheckRebuild(output, config.Version, sprite.Hash, config.Options.Force)
	sr.Reason = reason
	if !rebuild {
		if config.Verbose {
			fmt.Printf("Skipping %s: %s\n", sprite.Name, reason)
		}
		sr.Status = core.StatusSkipped
		return sr
	}

	ctx, err := core.BuildContext(sprite, config.Version)
	if err != nil {
		sr.Status = core.StatusFailed
		sr.Err = err
		return sr
	}

	if err := writeStylesheet(output, ctx); err != nil {
		sr.Status = core.StatusFailed
		sr.Err = err
		return sr
	}

	if config.Verbose {
		fmt.Printf("Wrote %s (%s)\n", output, reason)
	}

	sr.Status = core.StatusGenerated
	sr.Classes = len(ctx.Images)
	return sr
}

// writeStylesheet renders ctx into path, creating the directory if needed
func writeStylesheet(path string, ctx *core.RenderContext) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Render next to the target and rename into place, so a failed write never
	// leaves a stylesheet whose header claims it is up to date.
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create stylesheet: %w", err)
	}
	tmp := f.Name()

	if err := core.RenderTo(f, ctx); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write stylesheet: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write stylesheet: %w", err)
	}

	// CreateTemp uses 0600; stylesheets are public assets
	// #nosec G302
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write stylesheet: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace stylesheet: %w", err)
	}
	return nil
}
