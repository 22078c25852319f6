// Buffer-Cursor-Modul: Cursor-Bewegungen im Textpuffer

package readline

func (b *Buffer) MoveLeft() bool {
	if b.Pos > 0 {
		b.Pos -= 1
		return true
	}
	return false
}

func (b *Buffer) MoveRight() bool {
	if b.Pos < b.Buf.Size() {
		b.Pos += 1
		return true
	}
	return false
}

// MoveLeftWord springt an den Anfang des Worts vor dem Cursor
func (b *Buffer) MoveLeftWord() bool {
	if b.Pos == 0 {
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
		b.Pos--
	}
	return true
}

// MoveRightWord springt hinter das naechste Wort
func (b *Buffer) MoveRightWord() bool {
	if b.Pos >= b.Buf.Size() {
		return false
	}

	for b.Pos < b.Buf.Size() {
		b.Pos++
		if v, _ := b.Buf.Get(b.Pos); v == ' ' {
			break
		}
	}
	return true
}

func (b *Buffer) MoveToStart() {
	b.Pos = 0
}

func (b *Buffer) MoveToEnd() {
	b.Pos = b.Buf.Size()
}
