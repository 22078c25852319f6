// Modul: terminal.go
// Beschreibung: Terminal-Schnittstelle des Selectors und die TTY-Implementierung.
// Enthaelt Raw-Mode-Steuerung, Cursor-Sichtbarkeit und Zeilen-Loeschen.

package selector

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/7blacky7/ranobe/readline"
)

// Key ist ein dekodierter Tastendruck
type Key = readline.Key

// Terminal ist alles, was der Selector vom Terminal braucht
type Terminal interface {
	HideCursor() error
	ShowCursor() error
	ReadKey() (Key, error)
	WriteLine(s string) error
	ClearLastLines(n int) error
	Flush() error
	// Size gibt Breite und Hoehe in Zellen zurueck
	Size() (width, height int)
}

// TTY ist ein echtes Terminal: Eingabe im Raw-Mode, gepufferte Ausgabe
type TTY struct {
	input *readline.Terminal
	out   *bufio.Writer
	outFd int
}

var _ Terminal = (*TTY)(nil)

// OpenTTY schaltet in in den Raw-Mode und schreibt nach out.
// Close stellt den alten Zustand wieder her.
func OpenTTY(in, out *os.File) (*TTY, error) {
	input := readline.NewTerminal(in)
	if err := input.SetRawMode(); err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}

	return &TTY{
		input: input,
		out:   bufio.NewWriter(out),
		outFd: int(out.Fd()),
	}, nil
}

// Close leert die Ausgabe und beendet den Raw-Mode
func (t *TTY) Close() error {
	ferr := t.out.Flush()
	if err := t.input.Restore(); err != nil {
		return err
	}
	return ferr
}

func (t *TTY) HideCursor() error {
	if _, err := t.out.WriteString(readline.CursorHide); err != nil {
		return err
	}
	return t.out.Flush()
}

func (t *TTY) ShowCursor() error {
	if _, err := t.out.WriteString(readline.CursorShow); err != nil {
		return err
	}
	return t.out.Flush()
}

func (t *TTY) ReadKey() (Key, error) {
	return t.input.ReadKey()
}

// WriteLine schreibt s und beendet die Zeile. Im Raw-Mode fehlt die
// Ausgabe-Nachbearbeitung, daher explizit CR LF.
func (t *TTY) WriteLine(s string) error {
	s = strings.ReplaceAll(s, "\n", readline.NewLine)
	_, err := t.out.WriteString(s + readline.NewLine)
	return err
}

// ClearLastLines loescht die letzten n Zeilen ueber dem Cursor
func (t *TTY) ClearLastLines(n int) error {
	if n <= 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(readline.CursorBOL)
	for range n {
		sb.WriteString(readline.CursorUp + readline.ClearLine)
	}
	_, err := t.out.WriteString(sb.String())
	return err
}

func (t *TTY) Flush() error {
	return t.out.Flush()
}

func (t *TTY) Size() (int, int) {
	width, height, err := term.GetSize(t.outFd)
	if err != nil {
		return 80, 24
	}
	return width, height
}
