// Modul: theme_colorful.go
// Beschreibung: Farbiges Theme auf Basis von lipgloss.
// Praefixe/Suffixe je Rolle (Prompt, Erfolg, Fehler), farbige aktive Zeile
// und hervorgehobene Treffer.

package selector

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ColorfulTheme ist ein farbiges Theme
type ColorfulTheme struct {
	// Stil fuer Default-Werte
	DefaultsStyle lipgloss.Style
	// Stil fuer den Prompt
	PromptStyle lipgloss.Style
	// Prompt-Praefix und -Suffix (Text ueber SetString)
	PromptPrefix lipgloss.Style
	PromptSuffix lipgloss.Style
	// Praefix und Suffix nach erfolgreicher Auswahl
	SuccessPrefix lipgloss.Style
	SuccessSuffix lipgloss.Style
	// Fehler-Praefix und Stil der Fehlermeldung
	ErrorPrefix lipgloss.Style
	ErrorStyle  lipgloss.Style
	// Stil fuer Hinweise
	HintStyle lipgloss.Style
	// Stil fuer bestaetigte Werte
	ValuesStyle lipgloss.Style
	// Stile fuer aktive und inaktive Eintraege
	ActiveItemStyle   lipgloss.Style
	InactiveItemStyle lipgloss.Style
	// Markierung vor aktiven und inaktiven Eintraegen
	ActiveItemPrefix   lipgloss.Style
	InactiveItemPrefix lipgloss.Style
	// Stil des Cursors in der Suchzeile
	FuzzyCursorStyle lipgloss.Style
	// Stil fuer getroffene Zeichen
	FuzzyMatchHighlightStyle lipgloss.Style
	// Bestaetigte Auswahl inline hinter dem Prompt anzeigen
	InlineSelections bool
}

var _ Theme = (*ColorfulTheme)(nil)

// NewColorfulTheme erstellt das farbige Theme fuer die Ausgabe auf stderr
func NewColorfulTheme() *ColorfulTheme {
	return NewColorfulThemeWithRenderer(lipgloss.NewRenderer(os.Stderr))
}

// NewColorfulThemeWithRenderer erstellt das Theme fuer einen bestimmten Renderer.
// Der Renderer bestimmt das Farbprofil des Ausgabeziels.
func NewColorfulThemeWithRenderer(r *lipgloss.Renderer) *ColorfulTheme {
	var (
		yellow      = lipgloss.Color("3")
		green       = lipgloss.Color("2")
		red         = lipgloss.Color("1")
		cyan        = lipgloss.Color("6")
		brightBlack = lipgloss.Color("8")
	)

	return &ColorfulTheme{
		DefaultsStyle:            r.NewStyle().Foreground(cyan),
		PromptStyle:              r.NewStyle().Bold(true),
		PromptPrefix:             r.NewStyle().SetString("?").Foreground(yellow),
		PromptSuffix:             r.NewStyle().SetString("›").Foreground(brightBlack),
		SuccessPrefix:            r.NewStyle().SetString("✔").Foreground(green),
		SuccessSuffix:            r.NewStyle().SetString("·").Foreground(brightBlack),
		ErrorPrefix:              r.NewStyle().SetString("✘").Foreground(red),
		ErrorStyle:               r.NewStyle().Foreground(red),
		HintStyle:                r.NewStyle().Foreground(brightBlack),
		ValuesStyle:              r.NewStyle().Foreground(green),
		ActiveItemStyle:          r.NewStyle().Foreground(cyan),
		InactiveItemStyle:        r.NewStyle(),
		ActiveItemPrefix:         r.NewStyle().SetString("❯").Foreground(green),
		InactiveItemPrefix:       r.NewStyle().SetString(" "),
		FuzzyCursorStyle:         r.NewStyle().Reverse(true),
		FuzzyMatchHighlightStyle: r.NewStyle().Bold(true),
		InlineSelections:         true,
	}
}

func (t *ColorfulTheme) writePromptPrefix(w io.Writer, prefix lipgloss.Style, prompt string) error {
	if prompt == "" {
		return nil
	}
	_, err := io.WriteString(w, prefix.String()+" "+t.PromptStyle.Render(prompt)+" ")
	return err
}

func (t *ColorfulTheme) FormatPrompt(w io.Writer, prompt string) error {
	if err := t.writePromptPrefix(w, t.PromptPrefix, prompt); err != nil {
		return err
	}
	_, err := io.WriteString(w, t.PromptSuffix.String())
	return err
}

func (t *ColorfulTheme) FormatError(w io.Writer, msg string) error {
	_, err := io.WriteString(w, t.ErrorPrefix.String()+" "+t.ErrorStyle.Render(msg))
	return err
}

func (t *ColorfulTheme) FormatInputPrompt(w io.Writer, prompt, def string) error {
	if err := t.writePromptPrefix(w, t.PromptPrefix, prompt); err != nil {
		return err
	}

	var s string
	if def != "" {
		s = t.HintStyle.Render("("+def+")") + " " + t.PromptSuffix.String() + " "
	} else {
		s = t.PromptSuffix.String() + " "
	}
	_, err := io.WriteString(w, s)
	return err
}

func (t *ColorfulTheme) FormatInputPromptSelection(w io.Writer, prompt, sel string) error {
	if err := t.writePromptPrefix(w, t.SuccessPrefix, prompt); err != nil {
		return err
	}

	s := t.SuccessSuffix.String()
	if t.InlineSelections {
		s += " " + t.ValuesStyle.Render(sel)
	}
	_, err := io.WriteString(w, s)
	return err
}

func (t *ColorfulTheme) FormatFuzzySelectPrompt(w io.Writer, prompt, query string, cursor int) error {
	if err := t.writePromptPrefix(w, t.PromptPrefix, prompt); err != nil {
		return err
	}

	rs := []rune(query)
	var s string
	if cursor >= 0 && cursor < len(rs) {
		s = string(rs[:cursor]) + t.FuzzyCursorStyle.Render(string(rs[cursor])) + string(rs[cursor+1:])
	} else {
		s = query + t.FuzzyCursorStyle.Render(" ")
	}
	_, err := io.WriteString(w, t.PromptSuffix.String()+" "+s)
	return err
}

func (t *ColorfulTheme) FormatFuzzySelectPromptItem(w io.Writer, label string, active, highlight bool, positions []int) error {
	prefix := t.InactiveItemPrefix
	if active {
		prefix = t.ActiveItemPrefix
	}
	if _, err := io.WriteString(w, prefix.String()+" "); err != nil {
		return err
	}

	if !highlight || len(positions) == 0 {
		if active {
			label = t.ActiveItemStyle.Render(label)
		}
		_, err := io.WriteString(w, label)
		return err
	}

	return writeHighlighted(w, label, positions, func(r rune, matched bool) string {
		s := string(r)
		switch {
		case matched && active:
			return t.ActiveItemStyle.Inherit(t.FuzzyMatchHighlightStyle).Render(s)
		case matched:
			return t.FuzzyMatchHighlightStyle.Render(s)
		case active:
			return t.ActiveItemStyle.Render(s)
		}
		return s
	})
}
