package selector

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// tabWidth: Tabstopps alle 8 Spalten, wie im Terminal
const tabWidth = 8

// displayLabel macht ein Label zeilenzaehlbar: Escape-Sequenzen und
// Steuerzeichen fallen weg, Tabs werden bis zum naechsten Tabstopp mit
// Leerzeichen aufgefuellt. Ohne das zaehlt der FrameAccountant zu wenige
// Zeilen und beim Loeschen bleiben Reste stehen.
func displayLabel(label string) string {
	if strings.IndexFunc(label, unicode.IsControl) < 0 {
		return label
	}

	var sb strings.Builder
	col := 0
	for _, r := range ansi.Strip(label) {
		switch {
		case r == '\t':
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case unicode.IsControl(r):
		default:
			sb.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}
	return sb.String()
}
