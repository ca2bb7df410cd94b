package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Categories and page types the creator draws from. Both are chosen uniformly
// at random on every run.
var (
	categories = []string{"AI", "Cybersecurity", "Cloud Computing", "Mobile Tech", "Gaming"}
	pageTypes  = []string{"tutorial", "news", "analysis", "review", "comparison"}
)

var titleCaser = cases.Title(language.English)

// Slugify renders a topic as a filename-safe slug: lowercased, spaces to
// hyphens.
func Slugify(topic string) string {
	return strings.ReplaceAll(strings.ToLower(topic), " ", "-")
}

// PageFilename derives the on-disk name for a generated page. The trailing
// date segment is what the index rebuild later sorts on.
func PageFilename(pageType, topic string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s.html", pageType, Slugify(topic), now.Format("20060102"))
}

// CreatePage generates one new article page: random category and type, body
// text from the completion API, rendered into the site directory. Returns the
// filename. Two runs landing on the same type, category, and calendar day
// overwrite each other silently.
func (a *Automator) CreatePage(ctx context.Context) (string, error) {
	pageType := choose(a.rand, pageTypes)
	category := choose(a.rand, categories)

	content, err := a.GenerateArticle(ctx, fmt.Sprintf("%s about %s", pageType, category))
	if err != nil {
		return "", fmt.Errorf("generate article: %w", err)
	}

	now := a.now()
	filename := PageFilename(pageType, category, now)
	displayType := titleCaser.String(pageType)

	if err := a.RenderPage(filename, content, displayType, category); err != nil {
		return "", fmt.Errorf("write page: %w", err)
	}

	meta := PageMetadata{
		Title:     fmt.Sprintf("%s %s", category, displayType),
		Category:  category,
		Type:      pageType,
		Summary:   fmt.Sprintf("Latest %s about %s in tech", displayType, category),
		CreatedAt: now,
	}
	if err := a.writeMetadata(filename, meta); err != nil {
		return "", fmt.Errorf("write page metadata: %w", err)
	}

	return filename, nil
}
