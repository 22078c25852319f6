// cmd_list.go - List Command
// Hauptfunktionen: ListHandler
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// ListHandler - Listet die zuletzt aktualisierten Kapitel auf
func ListHandler(cmd *cobra.Command, args []string) error {
	opts, s, err := scraperFromFlags(cmd)
	if err != nil {
		return err
	}

	ranobes, err := latest(cmd.Context(), s, opts.Pages)
	if err != nil {
		return err
	}

	// Ueberschrift auf stderr, stdout bleibt fuer die Tabelle
	var heading strings.Builder
	if err := opts.Theme.FormatPrompt(&heading, "Latest on "+s.Name()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), heading.String())

	var data [][]string
	for i, r := range ranobes {
		data = append(data, []string{strconv.Itoa(i + 1), r.Title, r.URL.String()})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"#", "TITLE", "URL"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()

	return nil
}
