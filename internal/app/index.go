package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// IndexEntry is the ephemeral per-page view the index lists. It is rebuilt
// from scratch on every run by re-parsing page markup; nothing about it
// persists across runs.
type IndexEntry struct {
	Title   string
	File    string
	Date    string
	Summary string
}

// RebuildIndex scans every .html page in the site directory except the index
// itself, extracts title and summary from each document, sorts by the date
// token embedded in the filename, and rewrites index.html with the ten most
// recent. A page missing its <h1> or description meta tag fails the whole
// rebuild; there is no per-page isolation.
func (a *Automator) RebuildIndex() error {
	pages, err := filepath.Glob(filepath.Join(a.cfg.SiteDir, "*.html"))
	if err != nil {
		return err
	}

	var entries []IndexEntry
	for _, path := range pages {
		name := filepath.Base(path)
		if name == indexName {
			continue
		}

		entry, err := scrapePage(path)
		if err != nil {
			return fmt.Errorf("scan %s: %w", name, err)
		}
		entries = append(entries, entry)
	}

	// Lexical sort on the raw date token, newest first. The 8-digit
	// YYYYMMDD convention makes this line up with calendar order.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	if len(entries) > a.cfg.IndexSize {
		entries = entries[:a.cfg.IndexSize]
	}

	return a.writeIndex(entries)
}

// scrapePage pulls the index fields out of one page document. The date comes
// from the filename, not the markup: the stem's last hyphen-separated segment
// is assumed to be the embedded creation date.
func scrapePage(path string) (IndexEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return IndexEntry{}, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return IndexEntry{}, fmt.Errorf("parse html: %w", err)
	}

	heading := doc.Find("h1").First()
	if heading.Length() == 0 {
		return IndexEntry{}, fmt.Errorf("missing <h1> title")
	}

	summary, ok := doc.Find(`meta[name="description"]`).First().Attr("content")
	if !ok {
		return IndexEntry{}, fmt.Errorf("missing description meta tag")
	}

	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	segments := strings.Split(stem, "-")

	return IndexEntry{
		Title:   strings.TrimSpace(heading.Text()),
		File:    name,
		Date:    segments[len(segments)-1],
		Summary: summary,
	}, nil
}

func (a *Automator) writeIndex(entries []IndexEntry) error {
	data := struct {
		Entries []IndexEntry
		Year    int
	}{
		Entries: entries,
		Year:    a.now().Year(),
	}

	f, err := os.Create(filepath.Join(a.cfg.SiteDir, indexName))
	if err != nil {
		return err
	}

	if err := siteTemplates.ExecuteTemplate(f, "index.gohtml", data); err != nil {
		f.Close()
		return fmt.Errorf("render index template: %w", err)
	}
	return f.Close()
}
