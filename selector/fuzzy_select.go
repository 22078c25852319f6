// Modul: fuzzy_select.go
// Beschreibung: Interaktive Fuzzy-Auswahl mit Builder-API.
// Der Aufrufer setzt Prompt, Eintraege und Optionen, Interact laeuft bis
// zur Bestaetigung oder zum Abbruch.

package selector

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"

	"github.com/7blacky7/ranobe/readline"
)

// Item ist ein Auswahl-Kandidat; Value wird nicht angezeigt
type Item struct {
	Label string
	Value any
}

// FuzzySelect ist der konfigurierbare Selector
type FuzzySelect struct {
	theme            Theme
	prompt           string
	items            []Item
	def              int
	hasDefault       bool
	report           bool
	clear            bool
	highlightMatches bool
	maxLength        int
	initialText      string
	cancelKeys       []Key
	output           *os.File
}

// New erstellt einen Selector mit SimpleTheme
func New() *FuzzySelect {
	return WithTheme(SimpleTheme{})
}

// WithTheme erstellt einen Selector mit dem angegebenen Theme
func WithTheme(theme Theme) *FuzzySelect {
	return &FuzzySelect{
		theme:            theme,
		report:           true,
		clear:            true,
		highlightMatches: true,
		cancelKeys:       []Key{readline.Special(readline.EventEscape)},
	}
}

func (f *FuzzySelect) Prompt(prompt string) *FuzzySelect {
	f.prompt = prompt
	return f
}

// Item haengt einen Eintrag an
func (f *FuzzySelect) Item(label string, value any) *FuzzySelect {
	f.items = append(f.items, Item{Label: label, Value: value})
	return f
}

// Items haengt mehrere Eintraege an
func (f *FuzzySelect) Items(items ...Item) *FuzzySelect {
	f.items = append(f.items, items...)
	return f
}

// Labels haengt Eintraege ohne Wert an
func (f *FuzzySelect) Labels(labels ...string) *FuzzySelect {
	for _, l := range labels {
		f.items = append(f.items, Item{Label: l})
	}
	return f
}

// Default setzt die vorausgewaehlte Zeile
func (f *FuzzySelect) Default(idx int) *FuzzySelect {
	f.def, f.hasDefault = idx, true
	return f
}

// Report steuert, ob die Auswahl nach der Bestaetigung ausgegeben wird
func (f *FuzzySelect) Report(report bool) *FuzzySelect {
	f.report = report
	return f
}

// Clear steuert, ob der Frame beim Beenden geloescht wird
func (f *FuzzySelect) Clear(clear bool) *FuzzySelect {
	f.clear = clear
	return f
}

func (f *FuzzySelect) HighlightMatches(highlight bool) *FuzzySelect {
	f.highlightMatches = highlight
	return f
}

// MaxLength begrenzt die Anzahl sichtbarer Eintraege pro Seite
func (f *FuzzySelect) MaxLength(n int) *FuzzySelect {
	f.maxLength = n + reservedRows
	return f
}

// InitialText setzt die Suchzeile vor, der Cursor steht am Ende
func (f *FuzzySelect) InitialText(text string) *FuzzySelect {
	f.initialText = text
	return f
}

// CancelKeys legt fest, welche Tasten im Normal-Modus abbrechen.
// Ctrl-C bricht immer ab.
func (f *FuzzySelect) CancelKeys(keys ...Key) *FuzzySelect {
	f.cancelKeys = keys
	return f
}

// Output legt fest, wohin Interact zeichnet (Default: stderr)
func (f *FuzzySelect) Output(out *os.File) *FuzzySelect {
	f.output = out
	return f
}

func (f *FuzzySelect) outputFile() *os.File {
	if f.output == nil {
		return os.Stderr
	}
	return f.output
}

// Len ist die Anzahl der Eintraege
func (f *FuzzySelect) Len() int {
	return len(f.items)
}

// ItemAt gibt den Eintrag zu einem von Interact gelieferten Index zurueck
func (f *FuzzySelect) ItemAt(idx int) Item {
	return f.items[idx]
}

// Interact oeffnet das Terminal und laeuft bis Bestaetigung oder Abbruch.
// Ohne Output wird auf stderr gezeichnet, damit stdout fuer das Ergebnis
// frei bleibt.
func (f *FuzzySelect) Interact() (int, bool, error) {
	in, closeIn, err := openInput()
	if err != nil {
		return 0, false, err
	}
	defer closeIn()

	tty, err := OpenTTY(in, f.outputFile())
	if err != nil {
		return 0, false, err
	}
	defer tty.Close()

	return f.InteractOn(tty)
}

// InteractOn laeuft auf einem beliebigen Terminal.
// Rueckgabe: (Index, true, nil) bei Bestaetigung, (0, false, nil) bei
// Abbruch, (0, false, err) bei Terminal-Fehlern.
func (f *FuzzySelect) InteractOn(t Terminal) (idx int, ok bool, err error) {
	labels := make([]string, len(f.items))
	for i, it := range f.items {
		labels[i] = displayLabel(it.Label)
	}

	_, height := t.Size()
	s := newState(labels, f.initialText, NewPaging(len(labels), height, f.maxLength), f.cancelKeys)
	if f.hasDefault {
		s.sel, s.hasSel = f.def, true
	}
	r := newRenderer(t, f.theme)

	if err := t.HideCursor(); err != nil {
		return 0, false, fmt.Errorf("hide cursor: %w", err)
	}
	defer func() {
		if serr := t.ShowCursor(); serr != nil && err == nil {
			idx, ok, err = 0, false, fmt.Errorf("show cursor: %w", serr)
		}
	}()

	redraw := true
	for {
		if redraw {
			if err := f.frame(r, s); err != nil {
				return 0, false, err
			}
		}

		key, err := t.ReadKey()
		if err != nil {
			return 0, false, fmt.Errorf("read key: %w", err)
		}

		switch s.handle(key) {
		case actionCancel:
			if f.clear {
				if err := r.clear(); err != nil {
					return 0, false, err
				}
			}
			return 0, false, t.Flush()
		case actionCommit:
			m, _ := s.selected()
			if err := f.finish(r, labels[m.Index]); err != nil {
				return 0, false, err
			}
			return m.Index, true, nil
		case actionRedraw:
			redraw = true
		default:
			redraw = false
		}
	}
}

// frame loescht den alten Frame und zeichnet den aktuellen Zustand
func (f *FuzzySelect) frame(r *renderer, s *state) error {
	width, height := r.term.Size()
	s.paging.Resize(height)
	s.refresh()

	if err := r.clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	r.width = width
	if err := r.draw(f.prompt, s, f.highlightMatches); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return r.term.Flush()
}

func (f *FuzzySelect) finish(r *renderer, label string) error {
	if f.clear {
		if err := r.clear(); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
	}
	if f.report {
		if err := r.report(f.prompt, label); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	return r.term.Flush()
}

// openInput liefert die Tastatur-Eingabe. Ist stdin umgeleitet, wird
// direkt vom Terminal gelesen.
func openInput() (*os.File, func() error, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, func() error { return nil }, nil
	}

	name := "/dev/tty"
	if runtime.GOOS == "windows" {
		name = "CONIN$"
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, errors.Join(ErrNoTerminal, err)
	}
	return f, f.Close, nil
}

// ErrNoTerminal: keine interaktive Eingabe verfuegbar
var ErrNoTerminal = errors.New("no interactive terminal")
