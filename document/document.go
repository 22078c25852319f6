// Package document bereitet Kapiteltext fuer den Markdown-Pager auf.
//
// Ablauf fuer ein HTML-Fragment (Process):
// <br> -> Zeilenumbruch, Tags entfernen und Entities aufloesen,
// Zitate kursiv setzen, Unicode NFC.
package document

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/dlclark/regexp2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Oeffnendes Zeichen nicht vor Leerraum, schliessendes nicht nach
	// Leerraum. Sonst wird bei unpaarigen Zeichen ein schliessendes als
	// oeffnendes gelesen.
	quoteRe = regexp2.MustCompile(`(“|"|&quot;|&ldquo;)(?!\s)(.+?)(?<!\s)(”|"|&quot;|&rdquo;)`, regexp2.None)

	breakRe = regexp2.MustCompile(`<br\s*/?>`, regexp2.IgnoreCase)

	blankRe = regexp2.MustCompile(`\n{3,}`, regexp2.None)

	slugRe = regexp2.MustCompile(`[^a-z0-9]+`, regexp2.None)
)

// Italicize setzt Text in doppelten Anfuehrungszeichen kursiv.
// Die Zeichen selbst bleiben erhalten: "x" -> ` _"x"_ `
func Italicize(s string) string {
	return replace(quoteRe, s, " _${1}${2}${3}_ ")
}

// NormalizeBreaks ersetzt <br>, <br/> und <br /> durch Zeilenumbrueche
func NormalizeBreaks(s string) string {
	return replace(breakRe, s, "\n")
}

// PlainText entfernt Tags und loest Entities auf
func PlainText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		// strings.Reader liefert keine Lesefehler
		return fragment
	}
	return doc.Text()
}

// Normalize bringt s in Unicode-Normalform C
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Process bereitet ein HTML-Fragment als Markdown-Absatz auf
func Process(fragment string) string {
	s := NormalizeBreaks(fragment)
	s = PlainText(s)
	s = Italicize(s)
	return strings.TrimSpace(Normalize(s))
}

// Markdown setzt Titel und Absaetze zu einem Dokument zusammen
func Markdown(title string, paragraphs []string) string {
	var sb strings.Builder
	if title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", title)
	}
	for _, p := range paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			sb.WriteString(p)
			sb.WriteString("\n\n")
		}
	}
	return replace(blankRe, sb.String(), "\n\n")
}

// Slug macht aus einem Titel einen Dateinamen: ASCII, klein, mit Bindestrichen
func Slug(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, title)
	if err != nil {
		s = title
	}

	s = replace(slugRe, strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "chapter"
	}
	return s
}

func replace(re *regexp2.Regexp, s, repl string) string {
	out, err := re.Replace(s, repl, -1, -1)
	if err != nil {
		// nur bei Timeout, der hier nicht gesetzt ist
		return s
	}
	return out
}
