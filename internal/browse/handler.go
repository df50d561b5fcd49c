package browse

import (
	"fmt"
	"net/http"

	"github.com/bornholm/sidenav/internal/content"
	"github.com/bornholm/sidenav/internal/nav"
	"github.com/gorilla/sessions"
)

type Handler struct {
	mux          *http.ServeMux
	source       content.Source
	sections     nav.Sections
	sessionStore sessions.Store
	sessionName  string
	prefix       string
	motion       nav.Motion
	observers    []Observer
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(source content.Source, sections nav.Sections, sessionStore sessions.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	handler := &Handler{
		mux:          &http.ServeMux{},
		source:       source,
		sections:     sections,
		sessionStore: sessionStore,
		sessionName:  opts.SessionName,
		prefix:       opts.Prefix,
		motion:       opts.Motion,
		observers:    opts.Observers,
	}

	var toggle http.Handler = http.HandlerFunc(handler.handleToggle)
	if opts.RateLimiter != nil {
		toggle = opts.RateLimiter.Middleware(handler.instanceKey)(toggle)
	}

	// Register routes
	handler.mux.Handle(fmt.Sprintf("POST %s/toggle", handler.prefix), toggle)
	handler.mux.HandleFunc(fmt.Sprintf("GET %s/sidebar", handler.prefix), handler.serveSidebar)
	handler.mux.HandleFunc(fmt.Sprintf("GET %s/loading", handler.prefix), handler.serveLoading)
	handler.mux.HandleFunc("GET /", handler.serveIndex)

	return handler
}

func (h *Handler) toggleURL() string {
	return h.prefix + "/toggle"
}

// isContentRequest reports whether the request comes from an htmx link
// targeting the content area only.
func isContentRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Target") == contentTarget
}

func isHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

const contentTarget = "content"

var _ http.Handler = &Handler{}
