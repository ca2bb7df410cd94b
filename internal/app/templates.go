package app

import (
	"embed"
	"html/template"
	texttemplate "text/template"
)

// templateFS contains the page, index, and stylesheet templates bundled with
// the binary.
//
//go:embed templates/*
var templateFS embed.FS

var siteTemplates = template.Must(template.ParseFS(templateFS, "templates/page.gohtml", "templates/index.gohtml"))

// The stylesheet is CSS, not markup; html/template's escaping rules do not
// apply to it.
var styleTemplate = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/style.gotmpl"))
