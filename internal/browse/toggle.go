package browse

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/sidenav/internal/nav"
	"github.com/bornholm/sidenav/pkg/log"
	"github.com/pkg/errors"
)

// handleToggle expands or collapses the posted section. Expanding navigates
// to the section's first item.
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, widget := h.mount(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	label := r.PostFormValue("section")
	if label == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	// Labels are client supplied, only configured sections reach the state
	// and the observers
	if _, exists := h.sections.Find(label); !exists {
		slog.WarnContext(ctx, "toggle of unknown section", slog.String("section", label))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	currentPath := sanitizePath(r.PostFormValue("path"))

	var target string
	transition := widget.state.Toggle(label, currentPath, nav.NavigateFunc(func(href string) {
		target = href
	}))

	if err := h.save(w, r, widget); err != nil {
		slog.ErrorContext(ctx, "could not save session", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	for _, o := range h.observers {
		o.Observe(transition)
	}

	slog.DebugContext(ctx, "section toggled",
		slog.String("section", transition.Label),
		slog.Bool("expanded", transition.Expanded),
		slog.String("target", target),
	)

	if target != "" {
		h.navigate(w, r, target)
		return
	}

	if isHTMXRequest(r) {
		h.renderSidebar(ctx, w, widget, currentPath)
		return
	}

	http.Redirect(w, r, currentPath, http.StatusSeeOther)
}

type hxLocation struct {
	Path   string `json:"path"`
	Target string `json:"target"`
}

// navigate moves the client to href, through htmx when the request comes
// from it.
func (h *Handler) navigate(w http.ResponseWriter, r *http.Request, href string) {
	if !isHTMXRequest(r) {
		http.Redirect(w, r, href, http.StatusSeeOther)
		return
	}

	location, err := json.Marshal(hxLocation{Path: href, Target: "#" + contentTarget})
	if err != nil {
		slog.ErrorContext(r.Context(), "could not encode location", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("HX-Location", string(location))
	w.WriteHeader(http.StatusNoContent)
}

// sanitizePath restricts client supplied paths to local absolute paths. The
// path is otherwise kept as is since link matching works on raw prefixes.
func sanitizePath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, "\\") {
		return "/"
	}

	return p
}
