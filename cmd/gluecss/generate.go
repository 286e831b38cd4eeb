package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/gluecss"
	core "github.com/yacobolo/gluecss/internal/gluecss"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate stylesheets from sprite manifests",
	Long: `Read the manifests written by the sprite packer and generate one
stylesheet per sprite. Up-to-date stylesheets are skipped unless --force is set.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd.Flags())
}

// addGenerateFlags registers generation flags on f
func addGenerateFlags(f *pflag.FlagSet) {
	f.String("source", "sprites", "Directory containing sprite manifests")
	f.String("output", "css", "Directory stylesheets are written to")
	f.StringSlice("include", nil, "Glob patterns for manifests (default **/*.yaml, **/*.yml, **/*.json)")
	f.String("css-format", "css", "Stylesheet format: css|less|scss")
	f.Bool("less", false, "Use .less instead of .css")
	f.Bool("scss", false, "Use .scss instead of .css")
	f.String("namespace", "sprite", "Namespace for all css classes")
	f.String("sprite-namespace", "{sprite_name}", "Namespace for all sprites")
	f.StringP("url", "u", "", "Prepend this string to the sprites path")
	f.Bool("cachebuster", false, "Append the sprite hash as a query string to every sprite URL")
	f.Bool("cachebuster-filename", false, "Append the sprite hash to the stylesheet filename")
	f.String("separator", "_", "Separator used to join class names ('camelcase' for camelCase)")
	f.Bool("force", false, "Regenerate even when the stylesheet is up-to-date")
	f.String("output-format", "", "Report format: text|summary|json")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	result, err := gluecss.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		format := gluecss.DetermineOutputFormat(getStringWithFallback("output-format", "report", ""))
		useColors := core.ShouldUseColors(getBoolWithFallback("color", "color", false))
		gluecss.WriteOutput(os.Stdout, result, format, version, useColors)
	}

	// Collisions are fatal for their sprite; the run still covers the rest
	if len(result.Errors) > 0 {
		return fmt.Errorf("%d sprite(s) failed", len(result.Errors))
	}

	return nil
}
