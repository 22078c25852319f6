// Modul: render.go
// Beschreibung: Zeichnet Frames ueber ein Theme auf ein Terminal.
// Jede Zeile wird verbucht, damit der naechste Frame genau den alten
// Bereich loescht.

package selector

import (
	"fmt"
	"strings"
)

type renderer struct {
	term  Terminal
	theme Theme
	frame *FrameAccountant
	width int
}

func newRenderer(t Terminal, theme Theme) *renderer {
	return &renderer{
		term:  t,
		theme: theme,
		frame: NewFrameAccountant(nil),
	}
}

// line formatiert eine Zeile, schreibt sie und verbucht sie im Prompt-
// oder Listenbereich
func (r *renderer) line(prompt bool, format func(sb *strings.Builder) error) error {
	var sb strings.Builder
	if err := format(&sb); err != nil {
		return err
	}
	text := sb.String()
	if err := r.term.WriteLine(text); err != nil {
		return err
	}

	if prompt {
		r.frame.AddPrompt(text, r.width)
	} else {
		r.frame.AddBody(text, r.width)
	}
	return nil
}

// clear loescht den zuletzt gezeichneten Frame komplett
func (r *renderer) clear() error {
	if err := r.term.ClearLastLines(r.frame.Total()); err != nil {
		return err
	}
	r.frame.Reset()
	return nil
}

// draw zeichnet Suchzeile, sichtbares Fenster und Seitenanzeige
func (r *renderer) draw(prompt string, s *state, highlight bool) error {
	err := r.line(true, func(sb *strings.Builder) error {
		return r.theme.FormatFuzzySelectPrompt(sb, prompt, s.query.String(), s.query.Pos)
	})
	if err != nil {
		return err
	}

	// ohne Suchtext gibt es nichts hervorzuheben
	highlight = highlight && !s.query.IsEmpty()

	start, end := s.paging.Window()
	for i := start; i < end; i++ {
		m := s.filtered[i]
		active := s.hasSel && s.sel == i
		err := r.line(false, func(sb *strings.Builder) error {
			return r.theme.FormatFuzzySelectPromptItem(sb, s.labels[m.Index], active, highlight, m.Positions)
		})
		if err != nil {
			return err
		}
	}

	if page, pages, ok := s.paging.Info(); ok {
		return r.line(false, func(sb *strings.Builder) error {
			_, err := fmt.Fprintf(sb, " [Page %d/%d] ", page, pages)
			return err
		})
	}
	return nil
}

// report zeichnet die bestaetigte Auswahl
func (r *renderer) report(prompt, sel string) error {
	return r.line(true, func(sb *strings.Builder) error {
		return r.theme.FormatInputPromptSelection(sb, prompt, sel)
	})
}
