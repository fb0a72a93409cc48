package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List color themes",
	Long:  `Shows the registered color themes with a swatch of their snake and food colors.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func swatch(c core.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██")
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := theme.List()

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, t := range themes {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Colors", "Description")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "-----------")

	for _, t := range themes {
		colors := swatch(t.Head) + swatch(t.Body) + swatch(t.Food)
		def := ""
		if t.Name == theme.Default {
			def = " (default)"
		}
		fmt.Printf("  %-*s  %s  %s%s\n", maxNameLen, t.Name, colors, t.Description, def)
	}

	fmt.Println()
	fmt.Println("Run 'snake --theme <name>' to use a theme.")
}
