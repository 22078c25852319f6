package selector

import "testing"

func TestPagingCapacity(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		height     int
		maxLength  int
		wantCap    int
		wantPages  int
		wantActive bool
	}{
		{"ohne Obergrenze", 10, 24, 0, 21, 1, false},
		{"MaxLength(2) wie im Builder", 4, 24, 4, 2, 2, true},
		{"Terminal zu niedrig", 100, 2, 0, 1, 100, true},
		{"MaxLength unter Minimum", 5, 24, 1, 1, 5, true},
		{"MaxLength ueber Terminal-Hoehe", 30, 10, 50, 7, 5, true},
		{"leere Liste", 0, 24, 0, 21, 0, false},
		{"genau eine volle Seite", 3, 24, 5, 3, 1, false},
		{"Hoehe begrenzt, Cursorzeile frei", 10, 6, 0, 3, 4, true},
		{"MaxLength passt knapp", 20, 23, 22, 20, 1, false},
		{"MaxLength eine Zeile zu gross", 20, 22, 22, 19, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaging(tt.total, tt.height, tt.maxLength)
			if p.Capacity != tt.wantCap {
				t.Errorf("Capacity: erwartet %d, bekommen %d", tt.wantCap, p.Capacity)
			}
			if p.Pages != tt.wantPages {
				t.Errorf("Pages: erwartet %d, bekommen %d", tt.wantPages, p.Pages)
			}
			if p.Active != tt.wantActive {
				t.Errorf("Active: erwartet %v, bekommen %v", tt.wantActive, p.Active)
			}
		})
	}
}

func TestPagingUpdateInvariant(t *testing.T) {
	for _, capacityRows := range []int{1, 2, 3, 7} {
		p := NewPaging(25, capacityRows+reservedRows+1, 0)
		if p.Capacity != capacityRows {
			t.Fatalf("Capacity: erwartet %d, bekommen %d", capacityRows, p.Capacity)
		}
		for i := range 25 {
			p.Update(i)
			if lo, hi := p.CurrentPage*p.Capacity, (p.CurrentPage+1)*p.Capacity; i < lo || i >= hi {
				t.Errorf("cap=%d: Index %d nicht auf Seite %d [%d,%d)", p.Capacity, i, p.CurrentPage, lo, hi)
			}
			start, end := p.Window()
			if i < start || i >= end {
				t.Errorf("cap=%d: Index %d nicht im Fenster [%d,%d)", p.Capacity, i, start, end)
			}
		}
	}
}

func TestPagingTurnPages(t *testing.T) {
	// 4 Eintraege, Kapazitaet 2
	p := NewPaging(4, 24, 4)

	if got := p.NextPage(); got != 2 || p.CurrentPage != 1 {
		t.Errorf("NextPage: erwartet 2/Seite 1, bekommen %d/Seite %d", got, p.CurrentPage)
	}
	if got := p.NextPage(); got != 0 || p.CurrentPage != 0 {
		t.Errorf("NextPage am Ende: erwartet 0/Seite 0, bekommen %d/Seite %d", got, p.CurrentPage)
	}
	if got := p.PreviousPage(); got != 2 || p.CurrentPage != 1 {
		t.Errorf("PreviousPage am Anfang: erwartet 2/Seite 1, bekommen %d/Seite %d", got, p.CurrentPage)
	}
	if got := p.PreviousPage(); got != 0 || p.CurrentPage != 0 {
		t.Errorf("PreviousPage: erwartet 0/Seite 0, bekommen %d/Seite %d", got, p.CurrentPage)
	}
}

func TestPagingEmptyTurn(t *testing.T) {
	p := NewPaging(0, 24, 0)
	if got := p.NextPage(); got != 0 {
		t.Errorf("erwartet 0, bekommen %d", got)
	}
	if got := p.PreviousPage(); got != 0 {
		t.Errorf("erwartet 0, bekommen %d", got)
	}
	if start, end := p.Window(); start != 0 || end != 0 {
		t.Errorf("Fenster: erwartet [0,0), bekommen [%d,%d)", start, end)
	}
}

func TestPagingSetTotalClampsPage(t *testing.T) {
	p := NewPaging(10, 6, 0) // Kapazitaet 3, 4 Seiten
	p.Update(9)
	if p.CurrentPage != 3 {
		t.Fatalf("erwartet Seite 3, bekommen %d", p.CurrentPage)
	}

	p.SetTotal(4)
	if p.Pages != 2 || p.CurrentPage != 1 {
		t.Errorf("erwartet 2 Seiten/Seite 1, bekommen %d/%d", p.Pages, p.CurrentPage)
	}
	if start, end := p.Window(); start != 3 || end != 4 {
		t.Errorf("Fenster: erwartet [3,4), bekommen [%d,%d)", start, end)
	}

	p.SetTotal(0)
	if p.Active || p.CurrentPage != 0 {
		t.Errorf("leere Liste: Active=%v Seite=%d", p.Active, p.CurrentPage)
	}
}

func TestPagingResize(t *testing.T) {
	p := NewPaging(10, 24, 0)
	if p.Active {
		t.Fatal("bei 24 Zeilen sollte keine Seitenanzeige aktiv sein")
	}

	p.Resize(6)
	if p.Capacity != 3 || p.Pages != 4 || !p.Active {
		t.Errorf("nach Resize: Capacity=%d Pages=%d Active=%v", p.Capacity, p.Pages, p.Active)
	}

	page, pages, ok := p.Info()
	if !ok || page != 1 || pages != 4 {
		t.Errorf("Info: erwartet (1, 4, true), bekommen (%d, %d, %v)", page, pages, ok)
	}
}
