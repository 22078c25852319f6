// Package pager zeigt Markdown in einem externen Pager an (Standard: glow).
// Der Text wird vorher auf die Zielbreite umgebrochen.
package pager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// ErrNoCommand: leerer Pager-Befehl
var ErrNoCommand = errors.New("no pager command")

// Pager startet ein externes Programm mit dem Text auf stdin
type Pager struct {
	// Command ist Programm plus Argumente
	Command []string
	// Width ist die Umbruchbreite
	Width int

	Stdout io.Writer
	Stderr io.Writer
}

// New erstellt einen Pager aus einer Befehlszeile wie "glow" oder "less -R"
func New(command string, width int) *Pager {
	return &Pager{
		Command: strings.Fields(command),
		Width:   width,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Width gibt min(Terminal-Breite, wrap) zurueck; ohne Terminal gilt wrap
func Width(wrap int) int {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		return wrap
	}
	if wrap <= 0 {
		return cols
	}
	return min(cols, wrap)
}

// Wrap bricht text an Wortgrenzen auf width Spalten um, zu lange Woerter
// werden hart getrennt
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}

func (p *Pager) args() []string {
	args := slices.Clone(p.Command[1:])
	if filepath.Base(p.Command[0]) == "glow" {
		// glow zeigt sonst eine Spalte zu wenig
		args = append(args, "-p", "-w", strconv.Itoa(p.Width+1), "-")
	}
	return args
}

// Show uebergibt text an den Pager und wartet, bis er beendet wird
func (p *Pager) Show(ctx context.Context, text string) error {
	if len(p.Command) == 0 {
		return ErrNoCommand
	}

	path, err := exec.LookPath(p.Command[0])
	if err != nil {
		return fmt.Errorf("pager %q: %w", p.Command[0], err)
	}

	cmd := exec.CommandContext(ctx, path, p.args()...)
	cmd.Stdin = strings.NewReader(Wrap(text, p.Width))
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	slog.Debug("starting pager", "cmd", cmd.Args, "width", p.Width)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pager %q: %w", p.Command[0], err)
	}
	return nil
}
