package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "layoutlint",
	Short: "Responsive-layout linter for CSS, SCSS, and Less",
	Long: `Static analysis for stylesheets that finds layouts likely to break
on small viewports: fixed dimensions, rigid flex and grid tracks,
breakpoint conflicts, and overflow traps. Findings come with
explanations, suggested fixes, and before/after ASCII diagrams.`,
	// Default behavior: run check when no subcommand is given.
	// We must call loadConfig here because PreRunE of checkCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCheck(args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".layoutlint.yaml", "Config file path")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(diagramCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
