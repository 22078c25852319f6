// cmd_read.go - Read Command (Default)
// Hauptfunktionen: ReadHandler
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/7blacky7/ranobe/envconfig"
	"github.com/7blacky7/ranobe/pager"
)

// ReadHandler - Auswahl, Kapitel laden und im Pager anzeigen
func ReadHandler(cmd *cobra.Command, args []string) error {
	opts, s, err := scraperFromFlags(cmd)
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

	p := pager.New(envconfig.Pager(), pager.Width(opts.Wrap))
	p.Stdout = cmd.OutOrStdout()
	p.Stderr = cmd.ErrOrStderr()
	return p.Show(cmd.Context(), chapter.Text)
}
