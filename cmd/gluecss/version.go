package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags and written into every header:
//
//	go build -ldflags "-X main.version=0.13" ./cmd/gluecss
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of gluecss",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("gluecss %s\n", version)
	},
}
