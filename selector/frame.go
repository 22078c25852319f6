// Modul: frame.go
// Beschreibung: Zeilenbuchhaltung fuer das Neuzeichnen eines Frames.
// Trennt die Hoehe der Prompt-Zeile von der Hoehe des Listenbereichs und
// berechnet umgebrochene Zeilen anhand der Terminal-Breite.

package selector

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FrameAccountant zaehlt, wie viele Terminal-Zeilen der letzte Frame
// belegt hat. Vor jedem neuen Frame werden genau Total() Zeilen geloescht.
type FrameAccountant struct {
	PromptHeight int
	BodyHeight   int

	measure func(string) int
}

// NewFrameAccountant erstellt einen Accountant; measure liefert die
// sichtbare Breite einer Zeile. nil bedeutet ANSI-bewusste Breite.
func NewFrameAccountant(measure func(string) int) *FrameAccountant {
	if measure == nil {
		measure = lipgloss.Width
	}
	return &FrameAccountant{measure: measure}
}

// Rows gibt die Anzahl Terminal-Zeilen fuer text bei termWidth Spalten
// zurueck. Jede logische Zeile belegt mindestens eine Terminal-Zeile.
func (a *FrameAccountant) Rows(text string, termWidth int) int {
	rows := 0
	for line := range strings.SplitSeq(text, "\n") {
		rows += wrappedRows(a.measure(line), termWidth)
	}
	return rows
}

// AddPrompt verbucht text als Teil der Prompt-Zeile
func (a *FrameAccountant) AddPrompt(text string, termWidth int) int {
	n := a.Rows(text, termWidth)
	a.PromptHeight += n
	return n
}

// AddBody verbucht text als Zeile im Listenbereich
func (a *FrameAccountant) AddBody(text string, termWidth int) int {
	n := a.Rows(text, termWidth)
	a.BodyHeight += n
	return n
}

// Total ist die Anzahl zu loeschender Zeilen
func (a *FrameAccountant) Total() int {
	return a.PromptHeight + a.BodyHeight
}

// Reset setzt beide Zaehler zurueck
func (a *FrameAccountant) Reset() {
	a.PromptHeight = 0
	a.BodyHeight = 0
}

// wrappedRows = ceil(width / termWidth), mindestens 1
func wrappedRows(width, termWidth int) int {
	if termWidth <= 0 || width <= termWidth {
		return 1
	}
	return (width + termWidth - 1) / termWidth
}
