// Buffer-Edit-Modul: Bearbeitungsfunktionen fuer den Textpuffer
// Dieses Modul enthaelt alle Funktionen zum Hinzufuegen und Entfernen von Text.

package readline

// Add fuegt r an der Cursor-Position ein und rueckt den Cursor vor
func (b *Buffer) Add(r rune) {
	if b.Pos == b.Buf.Size() {
		b.Buf.Add(r)
	} else {
		b.Buf.Insert(b.Pos, r)
	}
	b.Pos += 1
}

// Remove loescht das Zeichen vor dem Cursor (Backspace).
// Am Zeilenanfang passiert nichts.
func (b *Buffer) Remove() bool {
	if b.Buf.Size() == 0 || b.Pos == 0 {
		return false
	}
	b.Pos -= 1
	b.Buf.Remove(b.Pos)
	return true
}

// Delete loescht das Zeichen unter dem Cursor
func (b *Buffer) Delete() bool {
	if b.Buf.Size() == 0 || b.Pos >= b.Buf.Size() {
		return false
	}
	b.Buf.Remove(b.Pos)
	return true
}

// DeleteBefore loescht alles vor dem Cursor (Ctrl+U)
func (b *Buffer) DeleteBefore() bool {
	if b.Pos == 0 {
		return false
	}
	for b.Pos > 0 {
		b.Remove()
	}
	return true
}

// DeleteRemaining loescht alles ab dem Cursor (Ctrl+K)
func (b *Buffer) DeleteRemaining() bool {
	if b.Pos >= b.Buf.Size() {
		return false
	}
	for b.Pos < b.Buf.Size() {
		b.Buf.Remove(b.Pos)
	}
	return true
}

// DeleteWord loescht das Wort vor dem Cursor (Ctrl+W)
func (b *Buffer) DeleteWord() bool {
	if b.Buf.Size() == 0 || b.Pos == 0 {
		return false
	}
	var foundNonspace bool
	for b.Pos > 0 {
		v, _ := b.Buf.Get(b.Pos - 1)
		if v == ' ' {
			if foundNonspace {
				break
			}
		} else {
			foundNonspace = true
		}
		b.Remove()
	}
	return true
}
