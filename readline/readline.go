// Package readline - Tastatur- und Zeilenpuffer-Grundlagen
//
// Dieses Paket liefert die Bausteine fuer interaktive Terminal-Eingabe:
// Steuerzeichen, ANSI-Sequenzen, einen Rune-Puffer mit Cursor und das
// Dekodieren einzelner Tastendruecke im Raw-Mode.
//
// Hauptkomponenten:
// - Buffer: Eingabepuffer mit Cursor-Position
// - Terminal: Raw-Mode-Steuerung und Rune-Reader
// - Key/Event: dekodierte Tastendruecke

package readline

// Steuerzeichen wie sie im Raw-Mode ankommen
const (
	CharLineStart = 1
	CharBackward  = 2
	CharInterrupt = 3
	CharDelete    = 4
	CharLineEnd   = 5
	CharForward   = 6
	CharCtrlH     = 8
	CharTab       = 9
	CharCtrlJ     = 10
	CharKill      = 11
	CharEnter     = 13
	CharNext      = 14
	CharPrev      = 16
	CharCtrlU     = 21
	CharCtrlW     = 23
	CharEsc       = 27
	CharEscapeSS3 = 79
	CharEscapeEx  = 91
	CharBackspace = 127
)

// Finale Bytes von CSI/SS3-Sequenzen
const (
	KeyUp      = 65
	KeyDown    = 66
	KeyRight   = 67
	KeyLeft    = 68
	MetaEnd    = 70
	MetaStart  = 72
	KeyBackTab = 90
)

// ANSI-Sequenzen fuer die Ausgabe
const (
	CursorUp   = "\033[1A"
	CursorBOL  = "\r"
	CursorHide = "\033[?25l"
	CursorShow = "\033[?25h"
	ClearLine  = "\033[2K"

	ColorDefault = "\033[0m"
	ColorBold    = "\033[1m"

	NewLine = "\r\n"
)
