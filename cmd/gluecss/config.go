package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/gluecss"
)

var k = koanf.New(".")

// defaultConfigFile is read from the working directory when --config is not set
const defaultConfigFile = ".gluecss.yaml"

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (GLUE_* prefix, same names glue always used)
	if err := k.Load(env.Provider("GLUE_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envSectionAliases maps bare section variables to the flat key they set.
// GLUE_CSS has always named the stylesheet output directory, and loading it
// as "css" would replace the whole css section from the config file.
var envSectionAliases = map[string]string{
	"css": "output",
}

// envKey maps an environment variable to a config key.
// The first word is the section and the rest is hyphenated:
//
//	GLUE_CSS_SPRITE_NAMESPACE -> css.sprite-namespace
//	GLUE_FORCE                -> force
//	GLUE_CSS                  -> output
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "GLUE_"))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		if alias, ok := envSectionAliases[key]; ok {
			return alias
		}
		return key
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

// buildOptions constructs the resolved CSS options from koanf state
func buildOptions() (gluecss.Options, error) {
	defaults := gluecss.DefaultOptions()

	format := getStringWithFallback("css-format", "css.format", string(defaults.Format))
	switch {
	case getBoolWithFallback("less", "css.less", false):
		format = string(gluecss.FormatLESS)
	case getBoolWithFallback("scss", "css.scss", false):
		format = string(gluecss.FormatSCSS)
	}

	opts := gluecss.Options{
		Format:              gluecss.Format(format),
		Namespace:           getStringOrEmpty("namespace", "css.namespace", defaults.Namespace),
		SpriteNamespace:     getStringOrEmpty("sprite-namespace", "css.sprite-namespace", defaults.SpriteNamespace),
		URL:                 getStringWithFallback("url", "css.url", defaults.URL),
		CacheBuster:         getBoolWithFallback("cachebuster", "css.cachebuster", false),
		CacheBusterFilename: getBoolWithFallback("cachebuster-filename", "css.cachebuster-filename", false),
		Separator:           getStringOrEmpty("separator", "css.separator", defaults.Separator),
		Force:               getBoolWithFallback("force", "force", false),
	}

	// Conflicts are fatal before any manifest is touched
	if err := opts.Validate(); err != nil {
		return opts, err
	}

	return opts, nil
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() (gluecss.Config, error) {
	opts, err := buildOptions()
	if err != nil {
		return gluecss.Config{}, err
	}

	config := gluecss.Config{
		SourceDir: getStringWithFallback("source", "source", "sprites"),
		OutputDir: getStringWithFallback("output", "output", "css"),
		Options:   opts,
		Version:   version,
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = []string{"**/*.yaml", "**/*.yml", "**/*.json"}
	}

	return config, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringOrEmpty is getStringWithFallback for options where an explicit
// empty value is meaningful (namespaces, separator).
func getStringOrEmpty(flagKey, configKey, defaultVal string) string {
	if k.Exists(flagKey) {
		return k.String(flagKey)
	}
	if k.Exists(configKey) {
		return k.String(configKey)
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
