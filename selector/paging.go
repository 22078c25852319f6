// Modul: paging.go
// Beschreibung: Seitenverwaltung fuer die Trefferliste.
// Bildet Trefferanzahl und Seitenkapazitaet auf das sichtbare Fenster ab.

package selector

import "math"

// reservedRows sind die Zeilen fuer Suchzeile und Seitenanzeige
const reservedRows = 2

// Paging haelt den Seitenzustand.
// Invariante nach Update(i): CurrentPage*Capacity <= i < (CurrentPage+1)*Capacity
type Paging struct {
	CurrentPage int
	Capacity    int
	Pages       int
	Active      bool

	total     int
	maxLength int
	height    int
}

// NewPaging erstellt die Seitenverwaltung. maxLength <= 0 bedeutet
// keine Obergrenze ausser der Terminal-Hoehe.
func NewPaging(total, termHeight, maxLength int) *Paging {
	p := &Paging{maxLength: maxLength}
	p.height = termHeight
	p.Capacity = capacity(maxLength, termHeight)
	p.SetTotal(total)
	return p
}

// capacity = clamp(maxLength, 3, height-1) - 2.
// Die letzte Terminal-Zeile bleibt fuer den Cursor nach dem Frame frei,
// sonst scrollt jeder Frame eine Zeile aus dem loeschbaren Bereich.
func capacity(maxLength, height int) int {
	limit := maxLength
	if limit <= 0 {
		limit = math.MaxInt
	}
	upper := max(height-1, reservedRows+1)
	return min(max(limit, reservedRows+1), upper) - reservedRows
}

// SetTotal setzt die Anzahl der Treffer und berechnet Seiten neu
func (p *Paging) SetTotal(total int) {
	p.total = total
	p.Pages = (total + p.Capacity - 1) / p.Capacity
	p.Active = p.Pages > 1
	if p.CurrentPage >= p.Pages {
		p.CurrentPage = max(p.Pages-1, 0)
	}
}

// Resize passt die Kapazitaet an eine neue Terminal-Hoehe an
func (p *Paging) Resize(termHeight int) {
	if termHeight == p.height {
		return
	}
	p.height = termHeight
	p.Capacity = capacity(p.maxLength, termHeight)
	p.SetTotal(p.total)
}

// Update setzt die aktuelle Seite so, dass selected sichtbar ist
func (p *Paging) Update(selected int) {
	if selected < 0 {
		selected = 0
	}
	p.CurrentPage = selected / p.Capacity
}

// NextPage blaettert zyklisch vorwaerts und gibt den ersten Index der
// neuen Seite zurueck
func (p *Paging) NextPage() int {
	if p.Pages == 0 {
		return 0
	}
	if p.CurrentPage >= p.Pages-1 {
		p.CurrentPage = 0
	} else {
		p.CurrentPage++
	}

	return p.CurrentPage * p.Capacity
}

// PreviousPage blaettert zyklisch zurueck und gibt den ersten Index der
// neuen Seite zurueck
func (p *Paging) PreviousPage() int {
	if p.Pages == 0 {
		return 0
	}
	if p.CurrentPage == 0 {
		p.CurrentPage = p.Pages - 1
	} else {
		p.CurrentPage--
	}

	return p.CurrentPage * p.Capacity
}

// Window gibt den sichtbaren Bereich [start, end) der Trefferliste zurueck
func (p *Paging) Window() (start, end int) {
	start = min(p.CurrentPage*p.Capacity, p.total)
	end = min(start+p.Capacity, p.total)
	return start, end
}

// Info gibt (aktuelle Seite, Seitenanzahl) fuer die Anzeige zurueck,
// ok ist false wenn nur eine Seite existiert
func (p *Paging) Info() (page, pages int, ok bool) {
	if !p.Active {
		return 0, 0, false
	}
	return p.CurrentPage + 1, p.Pages, true
}
