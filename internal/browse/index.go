package browse

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/sidenav/internal/content"
	"github.com/bornholm/sidenav/internal/ui"
	"github.com/bornholm/sidenav/pkg/log"
	"github.com/pkg/errors"
)

// serveIndex renders the content page matching the request path along with
// the sidebar
func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	ctx, widget := h.mount(r)

	urlPath := r.URL.Path

	status := http.StatusOK

	page, err := h.source.Page(ctx, urlPath)
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			slog.ErrorContext(ctx, "could not retrieve page", log.Error(errors.WithStack(err)), slog.String("path", urlPath))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		status = http.StatusNotFound
		page = nil
	}

	if widget.mounted {
		if err := h.save(w, r, widget); err != nil {
			slog.ErrorContext(ctx, "could not save session", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	data := h.getPageData(widget, urlPath, page)

	templateName := "index"
	if isContentRequest(r) {
		templateName = "content"
		data.Sidebar.OOB = true
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := templates.ExecuteTemplate(w, templateName, data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		return
	}
}

// serveSidebar renders the sidebar alone for the path given in query
func (h *Handler) serveSidebar(w http.ResponseWriter, r *http.Request) {
	ctx, widget := h.mount(r)

	urlPath := sanitizePath(r.URL.Query().Get("path"))

	if widget.mounted {
		if err := h.save(w, r, widget); err != nil {
			slog.ErrorContext(ctx, "could not save session", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.renderSidebar(ctx, w, widget, urlPath)
}

func (h *Handler) renderSidebar(ctx context.Context, w http.ResponseWriter, widget *instance, urlPath string) {
	data := ui.NewSidebarTemplateData(widget.state, urlPath, h.toggleURL())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, "sidebar", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		return
	}
}

func (h *Handler) serveLoading(w http.ResponseWriter, r *http.Request) {
	data := LoadingTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Loading",
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, "loading-page", data); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", log.Error(errors.WithStack(err)))
		return
	}
}

func (h *Handler) getPageData(widget *instance, urlPath string, page *content.Page) PageTemplateData {
	title := "Not found"
	if page != nil {
		title = page.Title
	}

	return PageTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: title,
		},
		Sidebar: ui.NewSidebarTemplateData(widget.state, urlPath, h.toggleURL()),
		Path:    urlPath,
		Page:    page,
	}
}
