package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/layoutlint/internal/diagram"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram [type]",
	Short: "Render a sample diagram for an issue type",
	Long: `Render a sample before/after diagram for the given diagram type, or
list every supported type with --list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := diagram.NewRegistry(nil)

		list, _ := cmd.Flags().GetBool("list")
		if list {
			for _, t := range registry.SupportedIssueTypes() {
				fmt.Println(t)
			}
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("expected one diagram type (see --list)")
		}

		vis := registry.Generate(diagram.Issue{
			Type:       args[0],
			Severity:   "medium",
			Line:       1,
			Selector:   ".sample",
			Property:   "width",
			Value:      "480px",
			Suggestion: "max-width: 100%",
		})
		fmt.Fprintln(os.Stdout, vis.ASCII)
		return nil
	},
}

func init() {
	diagramCmd.Flags().Bool("list", false, "List supported diagram types")
}
