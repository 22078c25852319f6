// cmd_builders.go - Command-Builder Funktionen
// Hauptfunktionen: newReadCmd, newListCmd, newDownloadCmd, newPickCmd
package cmd

import (
	"github.com/spf13/cobra"
)

// newReadCmd - Erstellt den read Command
func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Pick a recently updated chapter and read it in the pager",
		Args:  cobra.NoArgs,
		RunE:  ReadHandler,
	}
}

// newListCmd - Erstellt den list Command
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recently updated chapters",
		Args:    cobra.NoArgs,
		RunE:    ListHandler,
	}
}

// newDownloadCmd - Erstellt den download Command
func newDownloadCmd() *cobra.Command {
	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Pick a chapter and save it as markdown",
		Args:  cobra.NoArgs,
		RunE:  DownloadHandler,
	}

	downloadCmd.Flags().StringP("output", "o", ".", "Directory for the downloaded chapter")
	downloadCmd.Flags().BoolP("yes", "y", false, "Don't ask for the file name")

	return downloadCmd
}

// newPickCmd - Erstellt den pick Command
func newPickCmd() *cobra.Command {
	pickCmd := &cobra.Command{
		Use:   "pick [ITEM...]",
		Short: "Fuzzy pick one of the given items (or lines from stdin)",
		RunE:  PickHandler,
	}

	pickCmd.Flags().StringP("prompt", "p", "", "Prompt shown above the items")
	pickCmd.Flags().IntP("default", "d", -1, "Index of the preselected item")
	pickCmd.Flags().String("query", "", "Initial search query")
	pickCmd.Flags().Bool("quit-on-q", false, "Also cancel with 'q' in normal mode")

	return pickCmd
}
