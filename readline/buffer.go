// Buffer-Modul: Hauptstruktur und Basis-Funktionen
// Dieses Modul verwaltet den Textpuffer einer Eingabezeile.
// Der Puffer zeichnet nichts selbst, die Darstellung uebernimmt der Aufrufer.
// Siehe auch: buffer_cursor.go, buffer_edit.go

package readline

import (
	"github.com/emirpasic/gods/v2/lists/arraylist"
)

// Buffer haelt die Runes der Eingabe und die Cursor-Position.
// Invariante: 0 <= Pos <= Buf.Size()
type Buffer struct {
	Pos int
	Buf *arraylist.List[rune]
}

// NewBuffer erstellt einen Puffer mit initialem Text, Cursor am Ende
func NewBuffer(initial string) *Buffer {
	b := &Buffer{Buf: arraylist.New[rune]()}
	for _, r := range initial {
		b.Buf.Add(r)
	}
	b.Pos = b.Buf.Size()
	return b
}

func (b *Buffer) Size() int {
	return b.Buf.Size()
}

func (b *Buffer) IsEmpty() bool {
	return b.Buf.Empty()
}

func (b *Buffer) String() string {
	return string(b.Buf.Values())
}
