package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .gluecss.yaml config file",
	Long:  `Create a .gluecss.yaml configuration file in the current directory with the default options.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Printf("Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# gluecss configuration
# Every key can also be set with a GLUE_* environment variable,
# e.g. GLUE_CSS_NAMESPACE or GLUE_CSS_SPRITE_NAMESPACE.

verbose: false

# Manifests written by the sprite packer
source: sprites
include:
  - "**/*.yaml"
  - "**/*.json"

# Stylesheet directory
output: css
force: false
report: text                  # text | summary | json

css:
  format: css                 # css | less | scss
  namespace: sprite           # empty disables the global namespace
  sprite-namespace: "{sprite_name}"
  url: ""                     # prepended to every sprite path
  cachebuster: false          # ?hash on sprite URLs
  cachebuster-filename: false # _hash in the stylesheet name (not with cachebuster)
  separator: _                # or "camelcase"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
