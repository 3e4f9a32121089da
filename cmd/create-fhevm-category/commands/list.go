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
		Short: "List the categories this tool can scaffold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(titleStyle.Render("Available categories"))
			fmt.Println()
			for _, c := range registry.NewCategories().List() {
				label := fmt.Sprintf("%d contracts", len(c.Items))
				if len(c.Items) == 1 {
					label = "1 contract"
				}
				fmt.Printf("  %s %s\n", idStyle.Render(c.ID), faintStyle.Render("("+label+")"))
				fmt.Printf("    %s\n", faintStyle.Render(c.Description))
			}
			fmt.Println()
			fmt.Println(faintStyle.Render("Usage: create-fhevm-category <category> [output-dir]"))
			return nil
		},
	}
}
