// cmd_pick.go - Pick Command
// Hauptfunktionen: PickHandler, readItems
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/7blacky7/ranobe/readline"
	"github.com/7blacky7/ranobe/selector"
)

// Demo-Eintraege fuer "ranobe pick" ohne Argumente und ohne Pipe
var flavors = []string{
	"Ice Cream",
	"Vanilla Cupcake",
	"Chocolate Muffin",
	"A Pile of sweet, sweet mustard",
}

// PickHandler - Generische Fuzzy-Auswahl, das Ergebnis geht auf stdout
func PickHandler(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	prompt, err := flags.GetString("prompt")
	if err != nil {
		return err
	}
	def, err := flags.GetInt("default")
	if err != nil {
		return err
	}
	query, err := flags.GetString("query")
	if err != nil {
		return err
	}
	quitOnQ, err := flags.GetBool("quit-on-q")
	if err != nil {
		return err
	}

	items := args
	if len(items) == 0 {
		if items, err = readItems(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	demo := len(items) == 0
	if demo {
		items = flavors
		if prompt == "" {
			prompt = "Pick your flavor"
		}
		if def < 0 {
			def = 0
		}
	}

	sel := selector.WithTheme(opts.Theme).
		Prompt(prompt).
		MaxLength(opts.Size).
		InitialText(query).
		Labels(items...)
	if def >= 0 {
		sel.Default(def)
	}
	if quitOnQ {
		sel.CancelKeys(readline.Special(readline.EventEscape), readline.Rune('q'))
	}

	idx, ok, err := interact(sel)
	if err != nil {
		return err
	}
	if !ok {
		nothingSelected(cmd)
		return nil
	}

	if demo {
		fmt.Fprintf(cmd.OutOrStdout(), "Enjoy your %s!\n", items[idx])
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), items[idx])
	return nil
}

// readItems - Liest nicht-leere Zeilen, wenn r kein Terminal ist
func readItems(r io.Reader) ([]string, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, nil
	}

	var items []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			items = append(items, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return items, nil
}
