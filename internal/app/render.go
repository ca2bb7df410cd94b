package app

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

const (
	indexName      = "index.html"
	stylesheetName = "style.css"
)

type pageData struct {
	// Content is the completion API's output embedded without escaping.
	Content   template.HTML
	Type      string
	Topic     string
	Published string
	Year      int
}

// RenderPage writes one article document into the site directory, overwriting
// any existing file of the same name. The body content is inserted as-is; the
// generator's output is trusted raw HTML here.
func (a *Automator) RenderPage(filename, content, displayType, topic string) error {
	now := a.now()
	data := pageData{
		Content:   template.HTML(content),
		Type:      displayType,
		Topic:     topic,
		Published: now.Format("January 02, 2006"),
		Year:      now.Year(),
	}

	f, err := os.Create(filepath.Join(a.cfg.SiteDir, filename))
	if err != nil {
		return err
	}

	if err := siteTemplates.ExecuteTemplate(f, "page.gohtml", data); err != nil {
		f.Close()
		return fmt.Errorf("render page template: %w", err)
	}
	return f.Close()
}
