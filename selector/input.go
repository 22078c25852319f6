package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Input fragt eine Textzeile im normalen (nicht Raw-) Terminal-Modus ab
type Input struct {
	theme  Theme
	prompt string
	def    string
}

// NewInput erstellt eine Eingabe mit Theme und Prompt
func NewInput(theme Theme, prompt string) *Input {
	return &Input{theme: theme, prompt: prompt}
}

// Default setzt den Wert fuer eine leere Eingabe
func (in *Input) Default(def string) *Input {
	in.def = def
	return in
}

// InteractOn liest eine Zeile von r. Bei leerer Eingabe gilt der Default.
func (in *Input) InteractOn(r io.Reader, w io.Writer) (string, error) {
	if err := in.theme.FormatInputPrompt(w, in.prompt, in.def); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && (line != "" || in.def != "")) {
		return "", fmt.Errorf("read input: %w", err)
	}

	value := strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(value) == "" {
		value = in.def
	}

	if in.prompt != "" {
		var sb strings.Builder
		if err := in.theme.FormatInputPromptSelection(&sb, in.prompt, value); err != nil {
			return "", err
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return "", err
		}
	}
	return value, nil
}
