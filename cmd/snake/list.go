package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with the ID to pass to 'snake play'.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printGames(cmd.OutOrStdout(), registry.List())
	},
}

var listBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// printGames writes the registered games as a bordered ID/title table.
func printGames(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games registered.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(listBorderStyle).
		Headers("ID", "TITLE")
	for _, g := range games {
		t.Row(g.ID, g.Title)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d game(s). Start one with 'snake play <id>'.\n", len(games))
}
