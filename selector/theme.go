// Modul: theme.go
// Beschreibung: Theme-Schnittstelle und das schlichte Standard-Theme.
// Ein Theme formatiert jedes UI-Element als Text, ohne selbst zu zeichnen.

package selector

import (
	"fmt"
	"io"
	"slices"

	"github.com/7blacky7/ranobe/readline"
)

// Theme formatiert die Elemente des Selectors. Jede Methode schreibt nur
// nach w. Eigene Themes koennen SimpleTheme einbetten und einzelne
// Methoden ueberschreiben.
type Theme interface {
	// FormatPrompt formatiert einen Prompt
	FormatPrompt(w io.Writer, prompt string) error

	// FormatError formatiert eine Fehlermeldung
	FormatError(w io.Writer, msg string) error

	// FormatInputPrompt formatiert einen Eingabe-Prompt, def ist optional
	FormatInputPrompt(w io.Writer, prompt, def string) error

	// FormatInputPromptSelection formatiert die Bestaetigung nach der Auswahl
	FormatInputPromptSelection(w io.Writer, prompt, sel string) error

	// FormatFuzzySelectPrompt formatiert die Suchzeile mit Cursor an Rune-Position cursor
	FormatFuzzySelectPrompt(w io.Writer, prompt, query string, cursor int) error

	// FormatFuzzySelectPromptItem formatiert eine Zeile der Trefferliste
	FormatFuzzySelectPromptItem(w io.Writer, label string, active, highlight bool, positions []int) error
}

// SimpleTheme ist das Theme ohne Farben
type SimpleTheme struct{}

var _ Theme = SimpleTheme{}

func (SimpleTheme) FormatPrompt(w io.Writer, prompt string) error {
	_, err := fmt.Fprintf(w, "%s:", prompt)
	return err
}

func (SimpleTheme) FormatError(w io.Writer, msg string) error {
	_, err := fmt.Fprintf(w, "error: %s", msg)
	return err
}

func (SimpleTheme) FormatInputPrompt(w io.Writer, prompt, def string) error {
	var err error
	switch {
	case def != "" && prompt == "":
		_, err = fmt.Fprintf(w, "[%s]: ", def)
	case def != "":
		_, err = fmt.Fprintf(w, "%s [%s]: ", prompt, def)
	default:
		_, err = fmt.Fprintf(w, "%s: ", prompt)
	}
	return err
}

func (SimpleTheme) FormatInputPromptSelection(w io.Writer, prompt, sel string) error {
	_, err := fmt.Fprintf(w, "%s: %s", prompt, sel)
	return err
}

func (SimpleTheme) FormatFuzzySelectPrompt(w io.Writer, prompt, query string, cursor int) error {
	if prompt != "" {
		if _, err := fmt.Fprintf(w, "%s ", prompt); err != nil {
			return err
		}
	}

	head, tail := splitAt(query, cursor)
	_, err := fmt.Fprintf(w, "%s|%s", head, tail)
	return err
}

func (SimpleTheme) FormatFuzzySelectPromptItem(w io.Writer, label string, active, highlight bool, positions []int) error {
	marker := " "
	if active {
		marker = ">"
	}
	if _, err := fmt.Fprintf(w, "%s ", marker); err != nil {
		return err
	}

	if !highlight || len(positions) == 0 {
		_, err := io.WriteString(w, label)
		return err
	}

	return writeHighlighted(w, label, positions, func(r rune, matched bool) string {
		if matched {
			return readline.ColorBold + string(r) + readline.ColorDefault
		}
		return string(r)
	})
}

// splitAt teilt s an der Rune-Position pos
func splitAt(s string, pos int) (string, string) {
	rs := []rune(s)
	pos = min(max(pos, 0), len(rs))
	return string(rs[:pos]), string(rs[pos:])
}

// writeHighlighted schreibt label Rune fuer Rune; style entscheidet je
// nach Treffer ueber die Darstellung
func writeHighlighted(w io.Writer, label string, positions []int, style func(r rune, matched bool) string) error {
	i := 0
	for _, r := range label {
		_, matched := slices.BinarySearch(positions, i)
		if _, err := io.WriteString(w, style(r, matched)); err != nil {
			return err
		}
		i++
	}
	return nil
}

// ThemeByName liefert das Theme zu "plain" oder "colorful"
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "plain", "simple":
		return SimpleTheme{}, nil
	case "colorful", "color":
		return NewColorfulTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}
