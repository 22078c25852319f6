// Modul: state.go
// Beschreibung: Zustandsmaschine des Selectors (Normal/Editing).
// Verarbeitet einen Tastendruck und meldet, ob neu gezeichnet, bestaetigt
// oder abgebrochen werden soll. Zeichnet selbst nichts.

package selector

import (
	"slices"

	"github.com/7blacky7/ranobe/fuzzy"
	"github.com/7blacky7/ranobe/readline"
)

// Mode ist der Eingabemodus
type Mode int

const (
	// ModeNormal: Navigationstasten aktiv
	ModeNormal Mode = iota
	// ModeEditing: Texteingabe in die Suchzeile
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "normal"
}

type direction int

const (
	previous direction = -1
	next     direction = 1
)

// cycle bewegt eine optionale Auswahl zyklisch in einer Liste der Laenge n.
// Ohne Auswahl springt previous auf den letzten, next auf den ersten Index.
func cycle(sel int, ok bool, n int, dir direction) int {
	if !ok {
		if dir == previous {
			return n - 1
		}
		return 0
	}
	return ((sel+int(dir))%n + n) % n
}

type action int

const (
	actionNone action = iota
	actionRedraw
	actionCommit
	actionCancel
)

type state struct {
	mode   Mode
	query  *readline.Buffer
	labels []string
	paging *Paging
	cancel []Key

	// Auswahl als Index in filtered, nur gueltig wenn hasSel
	sel    int
	hasSel bool

	filtered []fuzzy.Match
}

func newState(labels []string, initialText string, paging *Paging, cancel []Key) *state {
	return &state{
		mode:   ModeNormal,
		query:  readline.NewBuffer(initialText),
		labels: labels,
		paging: paging,
		cancel: cancel,
	}
}

// refresh filtert neu und stellt die Invarianten fuer Auswahl und Seite her
func (s *state) refresh() {
	s.filtered = fuzzy.Filter(s.query.String(), s.labels)
	s.paging.SetTotal(len(s.filtered))

	switch {
	case len(s.filtered) == 0:
		s.sel, s.hasSel = 0, false
	case s.hasSel && (s.sel < 0 || s.sel >= len(s.filtered)):
		s.sel = 0
	}

	if s.hasSel {
		s.paging.Update(s.sel)
	} else {
		s.paging.Update(0)
	}
}

// selected gibt den Treffer unter der Auswahl zurueck
func (s *state) selected() (fuzzy.Match, bool) {
	if !s.hasSel || s.sel >= len(s.filtered) {
		return fuzzy.Match{}, false
	}
	return s.filtered[s.sel], true
}

func (s *state) isCancel(k Key) bool {
	return slices.Contains(s.cancel, k)
}

func (s *state) move(dir direction) action {
	s.sel = cycle(s.sel, s.hasSel, len(s.filtered), dir)
	s.hasSel = true
	return actionRedraw
}

func (s *state) jump(idx int) action {
	s.sel, s.hasSel = idx, true
	return actionRedraw
}

// edited wird nach jeder Aenderung der Suchzeile aufgerufen
func (s *state) edited(changed bool) action {
	if !changed {
		return actionNone
	}
	s.sel, s.hasSel = 0, true
	return actionRedraw
}

// redrawIf: Cursor-Bewegung ohne Wirkung zeichnet nicht neu
func redrawIf(moved bool) action {
	if moved {
		return actionRedraw
	}
	return actionNone
}

// handle verarbeitet einen Tastendruck gegen den zuletzt gezeichneten Zustand
func (s *state) handle(k Key) action {
	normal := s.mode == ModeNormal
	vim := func(r rune) bool { return normal && k == readline.Rune(r) }
	hasItems := len(s.filtered) > 0

	switch {
	case k.Event == readline.EventInterrupt:
		return actionCancel
	case normal && s.isCancel(k):
		return actionCancel
	case k.Event == readline.EventEscape:
		if normal {
			return actionNone
		}
		s.mode = ModeNormal
		return actionRedraw
	case vim('i'):
		s.mode = ModeEditing
		return actionRedraw
	case (k.Event == readline.EventUp || k.Event == readline.EventBackTab || vim('k')) && hasItems:
		return s.move(previous)
	case (k.Event == readline.EventDown || k.Event == readline.EventTab || vim('j')) && hasItems:
		return s.move(next)
	case (k.Event == readline.EventLeft || vim('h')) && s.paging.Active:
		return s.jump(s.paging.PreviousPage())
	case (k.Event == readline.EventRight || vim('l')) && s.paging.Active:
		return s.jump(s.paging.NextPage())
	case k.Event == readline.EventEnter:
		if !normal {
			s.mode = ModeNormal
			return actionRedraw
		}
		if _, ok := s.selected(); ok {
			return actionCommit
		}
		return actionNone
	case normal:
		return actionNone
	}

	// ab hier nur Editing
	switch k.Event {
	case readline.EventBackspace:
		return s.edited(s.query.Remove())
	case readline.EventDelete:
		return s.edited(s.query.Delete())
	case readline.EventKillLine:
		return s.edited(s.query.DeleteBefore())
	case readline.EventDeleteWord:
		return s.edited(s.query.DeleteWord())
	case readline.EventKillRest:
		return s.edited(s.query.DeleteRemaining())
	case readline.EventHome:
		s.query.MoveToStart()
		return actionRedraw
	case readline.EventEnd:
		s.query.MoveToEnd()
		return actionRedraw
	case readline.EventCharLeft:
		return redrawIf(s.query.MoveLeft())
	case readline.EventCharRight:
		return redrawIf(s.query.MoveRight())
	case readline.EventWordLeft:
		return redrawIf(s.query.MoveLeftWord())
	case readline.EventWordRight:
		return redrawIf(s.query.MoveRightWord())
	case readline.EventRune:
		s.query.Add(k.Rune)
		return s.edited(true)
	}
	return actionNone
}
