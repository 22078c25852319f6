// cmd_download.go - Download Command
// Hauptfunktionen: DownloadHandler
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/7blacky7/ranobe/document"
	"github.com/7blacky7/ranobe/selector"
)

// DownloadHandler - Auswahl, Kapitel laden und als Markdown speichern
func DownloadHandler(cmd *cobra.Command, args []string) error {
	opts, s, err := scraperFromFlags(cmd)
	if err != nil {
		return err
	}

	dir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return err
	}

	r, ok, err := pickRanobe(cmd, opts, s)
	if err != nil {
		return err
	}
	if !ok {
		nothingSelected(cmd)
		return nil
	}

	chapter, err := s.Text(cmd.Context(), r.URL)
	if err != nil {
		return err
	}

	name := document.Slug(chapter.Title) + ".md"
	if !yes {
		name, err = selector.NewInput(opts.Theme, "File name").
			Default(name).
			InteractOn(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, []byte(chapter.Text), 0o644); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
