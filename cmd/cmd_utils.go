// cmd_utils.go - Gemeinsame Hilfsfunktionen
// Hauptfunktionen: optionsFromFlags, latest, pickRanobe
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/7blacky7/ranobe/envconfig"
	"github.com/7blacky7/ranobe/provider"
	"github.com/7blacky7/ranobe/selector"
)

// maxConcurrentPages begrenzt parallele Listen-Requests
const maxConcurrentPages = 4

// errNothingFound: der Provider hat keine Eintraege geliefert
var errNothingFound = errors.New("no ranobe found")

// runOptions - Optionen aus Flags und Umgebung
type runOptions struct {
	Provider string
	Size     int
	Theme    selector.Theme
	Wrap     int
	Pages    int
}

// interact startet den Selector; in Tests austauschbar
var interact = func(f *selector.FuzzySelect) (int, bool, error) {
	return f.Interact()
}

// ErrReported markiert Fehler, die bereits ueber das Theme ausgegeben wurden
var ErrReported = errors.New("error already reported")

// reportError - Gibt err ueber das Theme auf stderr aus
func reportError(cmd *cobra.Command, theme selector.Theme, err error) error {
	var sb strings.Builder
	if ferr := theme.FormatError(&sb, err.Error()); ferr != nil {
		return errors.Join(err, ferr)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), sb.String())
	return fmt.Errorf("%w: %w", ErrReported, err)
}

// optionsFromFlags - Liest die globalen Flags. Ungueltige Werte werden
// ueber das Theme gemeldet.
func optionsFromFlags(cmd *cobra.Command) (runOptions, error) {
	var opts runOptions
	var err error

	flags := cmd.Flags()
	name, err := flags.GetString("theme")
	if err != nil {
		return opts, err
	}
	if envconfig.NoColor() {
		name = "plain"
	}
	if opts.Theme, err = selector.ThemeByName(name); err != nil {
		return opts, reportError(cmd, selector.SimpleTheme{}, err)
	}

	if opts.Provider, err = flags.GetString("provider"); err != nil {
		return opts, err
	}
	if opts.Size, err = flags.GetInt("size"); err != nil {
		return opts, err
	}
	if opts.Size <= 0 {
		return opts, reportError(cmd, opts.Theme, fmt.Errorf("size must be a positive number, got %d", opts.Size))
	}
	if opts.Wrap, err = flags.GetInt("wrap"); err != nil {
		return opts, err
	}
	if opts.Pages, err = flags.GetInt("pages"); err != nil {
		return opts, err
	}
	if opts.Pages <= 0 {
		opts.Pages = 1
	}

	return opts, nil
}

// latest - Laedt pages Listen-Seiten parallel, Reihenfolge bleibt erhalten.
// Doppelte URLs (Kapitel rutscht waehrend des Ladens auf die naechste Seite)
// werden entfernt.
func latest(ctx context.Context, s provider.Scraper, pages int) ([]provider.Ranobe, error) {
	results := make([][]provider.Ranobe, pages)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPages)
	for page := range pages {
		g.Go(func() error {
			r, err := s.Latest(ctx, page)
			if err != nil {
				return fmt.Errorf("page %d: %w", page, err)
			}
			results[page] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var all []provider.Ranobe
	for _, rs := range results {
		for _, r := range rs {
			key := r.URL.String()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			all = append(all, r)
		}
	}

	slog.Debug("loaded latest", "provider", s.Name(), "pages", pages, "count", len(all))
	return all, nil
}

// pickRanobe - Laedt die Liste und laesst den Benutzer waehlen.
// ok ist false, wenn der Benutzer abgebrochen hat.
func pickRanobe(cmd *cobra.Command, opts runOptions, s provider.Scraper) (provider.Ranobe, bool, error) {
	ranobes, err := latest(cmd.Context(), s, opts.Pages)
	if err != nil {
		return provider.Ranobe{}, false, err
	}
	if len(ranobes) == 0 {
		return provider.Ranobe{}, false, reportError(cmd, opts.Theme, errNothingFound)
	}

	sel := selector.WithTheme(opts.Theme).
		Prompt("Pick a ranobe").
		MaxLength(opts.Size).
		Default(0)
	for _, r := range ranobes {
		sel.Item(r.Title, r)
	}

	idx, ok, err := interact(sel)
	if err != nil || !ok {
		return provider.Ranobe{}, false, err
	}
	return sel.ItemAt(idx).Value.(provider.Ranobe), true, nil
}

// scraperFromFlags - Optionen lesen und Provider erstellen
func scraperFromFlags(cmd *cobra.Command) (runOptions, provider.Scraper, error) {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return opts, nil, err
	}
	s, err := provider.Get(opts.Provider)
	if err != nil {
		return opts, nil, reportError(cmd, opts.Theme, err)
	}
	return opts, s, nil
}

func nothingSelected(cmd *cobra.Command) {
	fmt.Fprintln(cmd.ErrOrStderr(), "You didn't select anything")
}
