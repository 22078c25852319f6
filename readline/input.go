// Package readline - Input-Verarbeitungsmodul
//
// Dieses Modul dekodiert einzelne Tastendruecke aus dem Raw-Mode-Strom.
//
// Hauptkomponenten:
// - Event/Key: dekodierte Tasten
// - ReadKey: liest eine Taste inkl. Escape-Sequenzen

package readline

import (
	"fmt"
	"unicode"
)

// Event ist die Art eines Tastendrucks
type Event int

const (
	EventNone Event = iota
	EventRune
	EventEnter
	EventEscape
	EventBackspace
	EventDelete
	EventTab
	EventBackTab
	EventUp
	EventDown
	EventLeft
	EventRight
	EventHome
	EventEnd
	EventInterrupt
	EventKillLine
	EventDeleteWord
	EventKillRest
	EventCharLeft
	EventCharRight
	EventWordLeft
	EventWordRight
)

var eventNames = map[Event]string{
	EventNone:       "none",
	EventRune:       "rune",
	EventEnter:      "enter",
	EventEscape:     "escape",
	EventBackspace:  "backspace",
	EventDelete:     "delete",
	EventTab:        "tab",
	EventBackTab:    "backtab",
	EventUp:         "up",
	EventDown:       "down",
	EventLeft:       "left",
	EventRight:      "right",
	EventHome:       "home",
	EventEnd:        "end",
	EventInterrupt:  "ctrl+c",
	EventKillLine:   "ctrl+u",
	EventDeleteWord: "ctrl+w",
	EventKillRest:   "ctrl+k",
	EventCharLeft:   "ctrl+b",
	EventCharRight:  "ctrl+f",
	EventWordLeft:   "alt+b",
	EventWordRight:  "alt+f",
}

func (e Event) String() string {
	if s, ok := eventNames[e]; ok {
		return s
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// Key ist ein dekodierter Tastendruck. Rune ist nur bei EventRune gesetzt.
type Key struct {
	Event Event
	Rune  rune
}

// Rune erstellt einen Key fuer ein druckbares Zeichen
func Rune(r rune) Key {
	return Key{Event: EventRune, Rune: r}
}

// Special erstellt einen Key fuer eine Sondertaste
func Special(e Event) Key {
	return Key{Event: e}
}

func (k Key) String() string {
	if k.Event == EventRune {
		return string(k.Rune)
	}
	return k.Event.String()
}

// ReadKey liest einen vollstaendigen Tastendruck.
// Ein einzelnes ESC ohne gepufferte Folgezeichen ist die Escape-Taste.
func (t *Terminal) ReadKey() (Key, error) {
	r, err := t.Read()
	if err != nil {
		return Key{}, err
	}

	switch r {
	case CharEsc:
		if t.reader.Buffered() == 0 {
			return Special(EventEscape), nil
		}
		return t.readEscape()
	case CharEnter, CharCtrlJ:
		return Special(EventEnter), nil
	case CharTab:
		return Special(EventTab), nil
	case CharBackspace, CharCtrlH:
		return Special(EventBackspace), nil
	case CharInterrupt:
		return Special(EventInterrupt), nil
	case CharCtrlU:
		return Special(EventKillLine), nil
	case CharCtrlW:
		return Special(EventDeleteWord), nil
	case CharKill:
		return Special(EventKillRest), nil
	case CharDelete:
		return Special(EventDelete), nil
	case CharBackward:
		return Special(EventCharLeft), nil
	case CharForward:
		return Special(EventCharRight), nil
	case CharLineStart:
		return Special(EventHome), nil
	case CharLineEnd:
		return Special(EventEnd), nil
	case CharPrev:
		return Special(EventUp), nil
	case CharNext:
		return Special(EventDown), nil
	}

	if unicode.IsControl(r) {
		return Special(EventNone), nil
	}
	return Rune(r), nil
}

// readEscape verarbeitet die Zeichen nach ESC (CSI und SS3)
func (t *Terminal) readEscape() (Key, error) {
	r, err := t.Read()
	if err != nil {
		return Key{}, err
	}

	switch r {
	case 'b':
		return Special(EventWordLeft), nil
	case 'f':
		return Special(EventWordRight), nil
	case CharEscapeEx, CharEscapeSS3:
	default:
		// sonstige Alt+Taste
		return Special(EventNone), nil
	}

	r, err = t.Read()
	if err != nil {
		return Key{}, err
	}

	switch r {
	case KeyUp:
		return Special(EventUp), nil
	case KeyDown:
		return Special(EventDown), nil
	case KeyRight:
		return Special(EventRight), nil
	case KeyLeft:
		return Special(EventLeft), nil
	case MetaStart:
		return Special(EventHome), nil
	case MetaEnd:
		return Special(EventEnd), nil
	case KeyBackTab:
		return Special(EventBackTab), nil
	}

	if r < '0' || r > '9' {
		return Special(EventNone), nil
	}

	// Sequenzen der Form ESC [ <zahl> ~ (evtl. mit ;modifier)
	code := r - '0'
	var modifier bool
	for {
		r, err = t.Read()
		if err != nil {
			return Key{}, err
		}
		switch {
		case r >= '0' && r <= '9':
			if !modifier {
				code = code*10 + (r - '0')
			}
			continue
		case r == ';':
			modifier = true
			continue
		case r != '~':
			return Special(EventNone), nil
		}
		break
	}

	switch code {
	case 1, 7:
		return Special(EventHome), nil
	case 3:
		return Special(EventDelete), nil
	case 4, 8:
		return Special(EventEnd), nil
	}
	return Special(EventNone), nil
}
