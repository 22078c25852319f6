// Package readlightnovel - Provider fuer readlightnovel.me.
//
// Die "latest"-Liste besteht aus Links mit itemprop="url" und
// rel="bookmark". Der Kapiteltext steht zwischen dem zweiten
// "audio"-Kommentar und dem Desktop-Werbeblock.
package readlightnovel

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dlclark/regexp2"

	"github.com/7blacky7/ranobe/client"
	"github.com/7blacky7/ranobe/document"
	"github.com/7blacky7/ranobe/envconfig"
	"github.com/7blacky7/ranobe/logutil"
	"github.com/7blacky7/ranobe/provider"
)

// Name ist der Registry-Name
const Name = "readlightnovel"

// DefaultBaseURL wird ohne RANOBE_BASE_URL verwendet
var DefaultBaseURL = &url.URL{Scheme: "https", Host: "readlightnovel.me"}

const latestSelector = `a[itemprop="url"][rel="bookmark"]`

var rawTextRe = regexp2.MustCompile(`<!-- audio -->[\S\s]+?<!-- audio -->([\S\s]+?)<!-- .+ desktop start -->`, regexp2.None)

func init() {
	provider.Register(Name, func() provider.Scraper {
		return New(client.Default(), envconfig.BaseURL())
	})
}

// ReadLightNovel implementiert provider.Scraper
type ReadLightNovel struct {
	fetch provider.Fetcher
	base  *url.URL
}

var _ provider.Scraper = (*ReadLightNovel)(nil)

// New erstellt den Provider. base == nil bedeutet DefaultBaseURL.
func New(f provider.Fetcher, base *url.URL) *ReadLightNovel {
	if base == nil {
		base = DefaultBaseURL
	}
	return &ReadLightNovel{fetch: f, base: base}
}

func (*ReadLightNovel) Name() string {
	return Name
}

// Latest laedt /latest-update/{page}
func (r *ReadLightNovel) Latest(ctx context.Context, page int) ([]provider.Ranobe, error) {
	u := r.base.JoinPath("latest-update", strconv.Itoa(page))
	body, err := r.fetch.Fetch(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("latest page %d: %w", page, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse latest page %d: %w", page, err)
	}

	var list []provider.Ranobe
	doc.Find(latestSelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}

		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			slog.Debug("skipping invalid link", "href", href, "error", err)
			return
		}

		item, err := provider.New(collapse(s.Text()), u.ResolveReference(ref).String())
		if err != nil || item.Title == "" {
			slog.Debug("skipping entry", "href", href, "error", err)
			return
		}
		list = append(list, item)
	})

	slog.Debug("latest page parsed", "page", page, "entries", len(list))
	return list, nil
}

// Text laedt ein Kapitel und bereitet es als Markdown auf
func (r *ReadLightNovel) Text(ctx context.Context, u *url.URL) (provider.Chapter, error) {
	body, err := r.fetch.Fetch(ctx, u)
	if err != nil {
		return provider.Chapter{}, fmt.Errorf("chapter: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return provider.Chapter{}, fmt.Errorf("parse chapter: %w", err)
	}
	title := collapse(doc.Find("h1").First().Text())

	sections, err := rawSections(body)
	if err != nil {
		return provider.Chapter{}, err
	}
	if len(sections) == 0 {
		return provider.Chapter{}, fmt.Errorf("%s: %w", u, provider.ErrNoContent)
	}

	var paragraphs []string
	for _, section := range sections {
		paragraphs = append(paragraphs, blocks(section)...)
	}

	return provider.Chapter{
		Title: title,
		Text:  document.Markdown(title, paragraphs),
	}, nil
}

// rawSections gibt alle Textbereiche zwischen den Markierungskommentaren zurueck
func rawSections(body string) ([]string, error) {
	var sections []string
	m, err := rawTextRe.FindStringMatch(body)
	for m != nil && err == nil {
		if s := strings.TrimSpace(m.GroupByNumber(1).String()); s != "" {
			logutil.Trace("chapter section", "index", len(sections), "bytes", len(s))
			sections = append(sections, s)
		}
		m, err = rawTextRe.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("extract chapter text: %w", err)
	}
	return sections, nil
}

// blocks gibt die aufbereiteten <p>-Absaetze zurueck. Ohne <p> gilt der
// ganze Bereich als ein Absatz.
func blocks(section string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(section))
	if err != nil {
		return []string{document.Process(section)}
	}

	var out []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		inner, err := s.Html()
		if err != nil {
			return
		}
		if p := document.Process(inner); p != "" {
			out = append(out, p)
		}
	})

	if len(out) == 0 {
		out = append(out, document.Process(section))
	}
	return out
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
