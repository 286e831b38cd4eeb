package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	core "github.com/yacobolo/gluecss/internal/gluecss"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Show the header and class selectors of generated stylesheets",
	Long: `Read stylesheets produced by gluecss and print the version and hash
recorded in their header, followed by every class selector they define.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	useColors := core.ShouldUseColors(getBoolWithFallback("color", "color", false))
	w := cmd.OutOrStdout()

	for _, path := range args {
		// #nosec G304 - path is a CLI argument
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		info := core.InspectStylesheet(content)

		fmt.Fprintln(w, core.RenderStyle(core.StylePath, path, useColors))
		if info.HasHeader {
			fmt.Fprintf(w, "  version: %s\n  hash:    %s\n", info.Version, info.Hash)
		} else {
			fmt.Fprintln(w, core.RenderStyle(core.StyleWarning, "  no glue header (will always be rebuilt)", useColors))
		}
		fmt.Fprintf(w, "  classes: %d\n", len(info.Selectors))
		for _, sel := range info.Selectors {
			fmt.Fprintf(w, "    %s\n", sel)
		}
	}

	return nil
}
