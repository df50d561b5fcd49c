package ui

import "github.com/bornholm/sidenav/internal/nav"

// SidebarTemplateData is the data of the "sidebar" template.
type SidebarTemplateData struct {
	// Current path, posted back on toggle
	Path      string
	ToggleURL string
	Blocks    []nav.Block
	Motion    nav.Motion
	// Render as an htmx out-of-band swap
	OOB bool
}

func NewSidebarTemplateData(state *nav.State, path string, toggleURL string) SidebarTemplateData {
	return SidebarTemplateData{
		Path:      path,
		ToggleURL: toggleURL,
		Blocks:    state.View(path),
		Motion:    state.Motion(),
	}
}
