// Package provider - Quellen fuer neue Light-Novel-Kapitel.
//
// Hauptkomponenten:
// - Ranobe: Titel und URL eines Kapitels
// - Scraper: Schnittstelle eines Providers
// - Register/Get: Registry der verfuegbaren Provider
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Ranobe ist ein Eintrag der "latest"-Liste
type Ranobe struct {
	Title string
	URL   *url.URL
}

// New erstellt einen Eintrag aus Titel und absoluter URL
func New(title, rawURL string) (Ranobe, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Ranobe{}, fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	if !u.IsAbs() {
		return Ranobe{}, fmt.Errorf("url %q is not absolute", rawURL)
	}
	return Ranobe{Title: strings.TrimSpace(title), URL: u}, nil
}

func (r Ranobe) String() string {
	return r.Title
}

// Chapter ist der aufbereitete Text eines Kapitels als Markdown
type Chapter struct {
	Title string
	Text  string
}

// Fetcher laedt eine Seite; erfuellt von *client.Client
type Fetcher interface {
	Fetch(ctx context.Context, u *url.URL) (string, error)
}

// Scraper ist ein Provider
type Scraper interface {
	// Name ist der Registry-Name
	Name() string
	// Latest gibt die Seite page der neuesten Kapitel zurueck, beginnend bei 0
	Latest(ctx context.Context, page int) ([]Ranobe, error)
	// Text laedt ein Kapitel
	Text(ctx context.Context, u *url.URL) (Chapter, error)
}

// Factory erstellt einen Provider
type Factory func() Scraper

// ErrUnknown: kein Provider mit diesem Namen registriert
var ErrUnknown = errors.New("unknown provider")

var (
	mu       sync.RWMutex
	registry = orderedmap.New[string, Factory]()
)

// Register meldet einen Provider an. Doppelte Namen sind ein Programmierfehler.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, present := registry.Set(name, f); present {
		panic(fmt.Sprintf("provider %q registered twice", name))
	}
}

// Get erstellt den Provider name
func Get(name string) (Scraper, error) {
	mu.RLock()
	defer mu.RUnlock()

	if f, ok := registry.Get(name); ok {
		return f(), nil
	}

	if s := suggest(name); s != "" {
		return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknown, name, s)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknown, name)
}

// Names gibt alle Provider in Registrierungsreihenfolge zurueck
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, registry.Len())
	for pair := registry.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// suggest gibt den aehnlichsten Namen zurueck, wenn er nah genug ist
func suggest(name string) string {
	best, score := "", len(name)/2+1
	for pair := registry.Oldest(); pair != nil; pair = pair.Next() {
		if d := levenshtein.ComputeDistance(strings.ToLower(name), pair.Key); d < score {
			best, score = pair.Key, d
		}
	}
	return best
}

// ErrNoContent: die Seite enthaelt keinen Kapiteltext
var ErrNoContent = errors.New("no chapter content")
