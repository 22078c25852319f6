// Package readline - Terminal-Modul
//
// Dieses Modul enthaelt die Terminal-Strukturen und -Methoden fuer die
// Raw-Mode-Terminal-Interaktion.
//
// Hauptkomponenten:
// - Terminal: Struktur fuer Terminal-Eingabe mit Buffered Reader
// - NewTerminal: Konstruktor fuer Terminal-Instanzen
// - Read: Liest einzelne Runes vom Terminal

package readline

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal verwaltet die Terminal-Eingabe im Raw-Mode
type Terminal struct {
	fd      int
	reader  *bufio.Reader
	rawmode bool
	termios *term.State
}

// NewTerminal erstellt eine Terminal-Instanz fuer die Datei in.
// Der Raw-Mode wird erst mit SetRawMode aktiviert.
func NewTerminal(in *os.File) *Terminal {
	return &Terminal{
		fd:     int(in.Fd()),
		reader: bufio.NewReader(in),
	}
}

// NewReaderTerminal erstellt ein Terminal ohne Dateideskriptor,
// z.B. fuer vorbereitete Eingaben. Raw-Mode ist dann ein No-Op.
func NewReaderTerminal(r io.Reader) *Terminal {
	return &Terminal{
		fd:     -1,
		reader: bufio.NewReader(r),
	}
}

// SetRawMode schaltet das Terminal in den Raw-Mode
func (t *Terminal) SetRawMode() error {
	if t.rawmode || t.fd < 0 {
		return nil
	}
	termios, err := SetRawMode(uintptr(t.fd))
	if err != nil {
		return err
	}
	t.rawmode = true
	t.termios = termios
	return nil
}

// Restore stellt den urspruenglichen Terminal-Zustand wieder her
func (t *Terminal) Restore() error {
	if !t.rawmode {
		return nil
	}
	t.rawmode = false
	return UnsetRawMode(uintptr(t.fd), t.termios)
}

// Read liest ein einzelnes Rune vom Terminal
func (t *Terminal) Read() (rune, error) {
	r, _, err := t.reader.ReadRune()
	if err != nil {
		return 0, err
	}
	return r, nil
}

// SetRawMode aktiviert den Raw-Mode fuer fd und gibt den alten Zustand zurueck
func SetRawMode(fd uintptr) (*term.State, error) {
	return term.MakeRaw(int(fd))
}

// UnsetRawMode stellt den Zustand wieder her
func UnsetRawMode(fd uintptr, state *term.State) error {
	if state == nil {
		return nil
	}
	return term.Restore(int(fd), state)
}
