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
	"github.com/yacobolo/layoutlint"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".layoutlint.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
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

	// 2. Environment variables (LAYOUTLINT_* prefix)
	if err := k.Load(env.Provider("LAYOUTLINT_", ".", func(s string) string {
		// LAYOUTLINT_CHECK_MODE -> check.mode
		// LAYOUTLINT_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "LAYOUTLINT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildAnalysisConfig constructs the library's Config struct from koanf state.
func buildAnalysisConfig() layoutlint.Config {
	defaults := layoutlint.DefaultConfig()

	config := layoutlint.Config{
		Mode:                    layoutlint.Mode(getStringWithFallback("mode", "check.mode", string(defaults.Mode))),
		FixedWidthThresholdPx:   getFloat64WithFallback("width-threshold", "check.width-threshold", defaults.FixedWidthThresholdPx),
		FixedHeightThresholdPx:  getFloat64WithFallback("height-threshold", "check.height-threshold", defaults.FixedHeightThresholdPx),
		FixedSpacingThresholdPx: getFloat64WithFallback("spacing-threshold", "check.spacing-threshold", defaults.FixedSpacingThresholdPx),
		MaxProblems:             getIntWithFallback("max-problems", "check.max-problems", defaults.MaxProblems),
	}

	// Handle ignore list: check flag key first, then config key
	if ignores := k.Strings("ignore-selectors"); len(ignores) > 0 {
		config.IgnoreSelectors = ignores
	} else if ignores := k.Strings("check.ignore-selectors"); len(ignores) > 0 {
		config.IgnoreSelectors = ignores
	}

	return config
}

// buildReportConfig constructs the reporter configuration from koanf state.
func buildReportConfig() layoutlint.ReportConfig {
	return layoutlint.ReportConfig{
		UseColors:        getBoolWithFallback("color", "color", false),
		PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		Quiet:            getBoolWithFallback("quiet", "quiet", false),
	}
}

// scanPatterns resolves the stylesheet patterns: positional args win, then
// the flag, then the config file, then the default.
func scanPatterns(args []string) []string {
	if len(args) > 0 {
		return args
	}
	if paths := k.Strings("paths"); len(paths) > 0 {
		return paths
	}
	if paths := k.Strings("check.paths"); len(paths) > 0 {
		return paths
	}
	return []string{"**/*.css", "**/*.scss", "**/*.less", "**/*.sass"}
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

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
