// Package fuzzy - Fuzzy-Matching fuer die Auswahlliste
//
// Dieses Paket bewertet Kandidaten-Texte gegen eine Suchanfrage mit dem
// FuzzyMatchV2-Algorithmus von fzf (Subsequenz-Matching mit Boni fuer
// zusammenhaengende Treffer und Wortgrenzen).
//
// Hauptkomponenten:
// - Score: bewertet einen einzelnen Text
// - Filter: filtert und sortiert eine Liste von Labels
package fuzzy

import (
	"slices"
	"sort"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

func init() {
	algo.Init("default")
}

// Match ist ein Treffer in der gefilterten Liste.
// Index verweist auf die Position in der urspruenglichen Kandidatenliste,
// Positions sind Rune-Indizes der getroffenen Zeichen (aufsteigend).
type Match struct {
	Index     int
	Score     int
	Positions []int
}

// Score bewertet text gegen query. ok ist false, wenn query keine
// Subsequenz von text ist. Eine leere Anfrage trifft jeden Text mit Score 0.
func Score(query, text string) (score int, positions []int, ok bool) {
	return score0(query, text, nil)
}

func score0(query, text string, slab *util.Slab) (int, []int, bool) {
	if query == "" {
		return 0, nil, true
	}

	pattern, caseSensitive := preparePattern(query)
	input := []rune(text)
	if !caseSensitive {
		input = lowerRunes(input)
	}

	chars := util.RunesToChars(input)
	result, pos := algo.FuzzyMatchV2(caseSensitive, true, true, &chars, pattern, true, slab)
	if result.Start < 0 {
		return 0, nil, false
	}

	var positions []int
	if pos != nil {
		positions = slices.Clone(*pos)
		slices.Sort(positions)
	}

	return result.Score, positions, true
}

// Filter bewertet alle labels und gibt die Treffer absteigend nach Score
// zurueck. Gleiche Scores behalten die Reihenfolge der Eingabe.
func Filter(query string, labels []string) []Match {
	slab := util.MakeSlab(100*1024, 2048)

	matches := make([]Match, 0, len(labels))
	for i, label := range labels {
		score, positions, ok := score0(query, label, slab)
		if !ok {
			continue
		}
		matches = append(matches, Match{Index: i, Score: score, Positions: positions})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// preparePattern wendet Smart-Case an: Grossbuchstaben in der Anfrage
// schalten auf case-sensitives Matching um.
func preparePattern(query string) ([]rune, bool) {
	pattern := []rune(query)
	caseSensitive := slices.ContainsFunc(pattern, unicode.IsUpper)
	if !caseSensitive {
		pattern = lowerRunes(pattern)
	}
	return algo.NormalizeRunes(pattern), caseSensitive
}

// lowerRunes wandelt Rune fuer Rune um, damit die Positionen
// zum Originaltext passen.
func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}
