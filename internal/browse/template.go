package browse

import (
	"embed"
	"html/template"

	"github.com/bornholm/sidenav/internal/content"
	"github.com/bornholm/sidenav/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// PageTemplateData contains the data needed to render a content page and
// its sidebar
type PageTemplateData struct {
	ui.HeadTemplateData
	Sidebar ui.SidebarTemplateData
	Path    string
	Page    *content.Page
}

type LoadingTemplateData struct {
	ui.HeadTemplateData
}
