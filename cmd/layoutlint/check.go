package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/layoutlint"
	"github.com/yacobolo/layoutlint/internal/diagram"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Analyze stylesheets for responsive-layout risks",
	Long: `Scan stylesheets matching the given glob patterns and report layouts
likely to break on small viewports. Without patterns, all stylesheets
under the current directory are scanned.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runCheck(args)
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for stylesheets to scan")
	f.String("mode", "", "Analysis mode: strict|pragmatic")
	f.Float64("width-threshold", 0, "Pixel width above which fixed widths are reported (pragmatic mode)")
	f.Float64("height-threshold", 0, "Pixel height above which fixed heights are reported (pragmatic mode)")
	f.Float64("spacing-threshold", 0, "Pixel spacing above which fixed spacing is reported (pragmatic mode)")
	f.StringSlice("ignore-selectors", nil, "Selector substrings to skip (case-insensitive)")
	f.Int("max-problems", 0, "Max issues to report (0=unlimited)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Bool("diagrams", true, "Render before/after diagrams in full output")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (layoutlint) suffix on issues")
}

// runCheck is shared between `layoutlint check` and the bare `layoutlint`
// invocation.
func runCheck(args []string) error {
	cfg := buildAnalysisConfig()
	if cfg.Mode != layoutlint.ModeStrict && cfg.Mode != layoutlint.ModePragmatic {
		return fmt.Errorf("invalid mode %q (want strict or pragmatic)", cfg.Mode)
	}

	result, err := layoutlint.ScanFiles(scanPatterns(args), cfg)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := layoutlint.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		var registry *diagram.Registry
		if getBoolWithFallback("diagrams", "check.diagrams", true) {
			registry = diagram.NewRegistry(buildLogger())
		}
		layoutlint.WriteOutput(os.Stdout, result, format, buildReportConfig(), registry)
	}

	// Exit code logic - "Soft Gate" approach
	strict := getBoolWithFallback("strict", "check.strict", false)
	if strict {
		// Strict mode: any issue fails the build
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
	} else if result.CountBySeverity()[layoutlint.SeverityCritical] > 0 {
		// Default "Soft Gate" mode: only critical findings fail the build
		os.Exit(1)
	}

	return nil
}

// buildLogger returns a development logger in verbose mode and a no-op
// logger otherwise, so diagram budget diagnostics only show up when asked.
func buildLogger() *zap.Logger {
	if !getBoolWithFallback("verbose", "verbose", false) {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
