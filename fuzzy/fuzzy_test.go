package fuzzy

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var flavors = []string{
	"Ice Cream",
	"Vanilla Cupcake",
	"Chocolate Muffin",
	"A Pile of sweet, sweet mustard",
}

// isSubsequence ist die Referenz fuer die Zugehoerigkeit zur gefilterten Liste
func isSubsequence(query, text string) bool {
	q := []rune(strings.ToLower(query))
	if len(q) == 0 {
		return true
	}
	i := 0
	for _, r := range strings.ToLower(text) {
		if r == q[i] {
			i++
			if i == len(q) {
				return true
			}
		}
	}
	return false
}

func indices(matches []Match) []int {
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}

func TestFilterEmptyQueryKeepsOrder(t *testing.T) {
	matches := Filter("", flavors)

	if diff := cmp.Diff([]int{0, 1, 2, 3}, indices(matches)); diff != "" {
		t.Errorf("Reihenfolge falsch (-want +got):\n%s", diff)
	}

	for _, m := range matches {
		if m.Score != 0 {
			t.Errorf("Score fuer %q = %d, erwartet 0", flavors[m.Index], m.Score)
		}
		if len(m.Positions) != 0 {
			t.Errorf("Positionen fuer %q = %v, erwartet keine", flavors[m.Index], m.Positions)
		}
	}
}

func TestFilterMembership(t *testing.T) {
	queries := []string{"ice", "ch", "c", "sweet", "xyz", "ae", "mud", "a p", "lla"}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			var want []int
			for i, label := range flavors {
				if isSubsequence(q, label) {
					want = append(want, i)
				}
			}

			got := indices(Filter(q, flavors))
			if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b int) bool { return a < b }), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Filter(%q) Mitglieder falsch (-want +got):\n%s", q, diff)
			}
		})
	}
}

func TestFilterSortedAndStable(t *testing.T) {
	labels := []string{"abc", "xabc", "abc", "a-b-c", "abc"}
	matches := Filter("abc", labels)

	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		if prev.Score < cur.Score {
			t.Fatalf("nicht absteigend sortiert: %+v vor %+v", prev, cur)
		}
		if prev.Score == cur.Score && prev.Index > cur.Index {
			t.Fatalf("gleicher Score, Reihenfolge nicht stabil: %d vor %d", prev.Index, cur.Index)
		}
	}

	// die drei identischen Labels muessen in Eingabereihenfolge bleiben
	var same []int
	for _, m := range matches {
		if labels[m.Index] == "abc" {
			same = append(same, m.Index)
		}
	}
	if diff := cmp.Diff([]int{0, 2, 4}, same); diff != "" {
		t.Errorf("identische Labels (-want +got):\n%s", diff)
	}
}

func TestFilterTopMatch(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"ice", "Ice Cream"},
		{"ch", "Chocolate Muffin"},
		{"cupc", "Vanilla Cupcake"},
		{"must", "A Pile of sweet, sweet mustard"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			matches := Filter(tt.query, flavors)
			if len(matches) == 0 {
				t.Fatalf("Filter(%q) leer", tt.query)
			}
			if got := flavors[matches[0].Index]; got != tt.want {
				t.Errorf("bester Treffer = %q, erwartet %q", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	t.Run("NoMatch", func(t *testing.T) {
		if _, _, ok := Score("zz", "Ice Cream"); ok {
			t.Error("erwartet keinen Treffer")
		}
	})

	t.Run("QueryLongerThanText", func(t *testing.T) {
		if _, _, ok := Score("ice cream sandwich", "ice"); ok {
			t.Error("erwartet keinen Treffer")
		}
	})

	t.Run("Positions", func(t *testing.T) {
		_, positions, ok := Score("ice", "Ice Cream")
		if !ok {
			t.Fatal("erwartet Treffer")
		}
		if diff := cmp.Diff([]int{0, 1, 2}, positions); diff != "" {
			t.Errorf("Positionen (-want +got):\n%s", diff)
		}
	})

	t.Run("PositionsAreRuneIndices", func(t *testing.T) {
		_, positions, ok := Score("ab", "ü-a-b")
		if !ok {
			t.Fatal("erwartet Treffer")
		}
		if diff := cmp.Diff([]int{2, 4}, positions); diff != "" {
			t.Errorf("Positionen (-want +got):\n%s", diff)
		}
	})

	t.Run("SmartCase", func(t *testing.T) {
		if _, _, ok := Score("ICE", "ice cream"); ok {
			t.Error("Grossbuchstaben sollten case-sensitiv matchen")
		}
		if _, _, ok := Score("ice", "ICE CREAM"); !ok {
			t.Error("Kleinbuchstaben sollten case-insensitiv matchen")
		}
	})

	t.Run("ContiguousBeatsScattered", func(t *testing.T) {
		contiguous, _, _ := Score("cup", "Vanilla Cupcake")
		scattered, _, _ := Score("cup", "Chocolate Muffin pie")
		if contiguous <= scattered {
			t.Errorf("zusammenhaengend %d <= verstreut %d", contiguous, scattered)
		}
	})
}
