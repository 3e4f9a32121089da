package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"fhevm-examples/internal/registry"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the examples this tool can scaffold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(titleStyle.Render("Available examples"))
			fmt.Println()
			for _, e := range registry.NewExamples().List() {
				fmt.Printf("  %s\n", idStyle.Render(e.ID))
				fmt.Printf("    %s\n", faintStyle.Render(e.Description))
			}
			fmt.Println()
			fmt.Println(faintStyle.Render("Usage: create-fhevm-example <example> [output-dir]"))
			return nil
		},
	}
}
