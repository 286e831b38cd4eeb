// Package main provides the gluecss CLI for generating sprite stylesheets.
package main

import (
	"fmt"
	"os"

	core "github.com/yacobolo/gluecss/internal/gluecss"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		useColors := core.ShouldUseColors(getBoolWithFallback("color", "color", false))
		fmt.Fprintf(os.Stderr, "%s %v\n", core.RenderStyle(core.StyleError, "error:", useColors), err)
		os.Exit(1)
	}
}
