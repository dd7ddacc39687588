package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .layoutlint.yaml config file",
	Long:  `Create a .layoutlint.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".layoutlint.yaml"); err == nil && !force {
			return fmt.Errorf(".layoutlint.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".layoutlint.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .layoutlint.yaml")
		return nil
	},
}

const defaultConfig = `# layoutlint configuration
# Docs: https://github.com/yacobolo/layoutlint

# Shared settings
verbose: false

# Analysis settings
check:
  paths:
    - "**/*.css"
    - "**/*.scss"
    - "**/*.less"
  mode: pragmatic            # strict | pragmatic
  width-threshold: 360       # px; fixed widths above this are reported
  height-threshold: 600      # px
  spacing-threshold: 32      # px
  ignore-selectors: []       # case-insensitive substrings, e.g. [".legacy-"]
  max-problems: 200          # 0 = unlimited
  output-format: issues      # issues | summary | full | json
  diagrams: true
  strict: false
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
