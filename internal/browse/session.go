package browse

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/bornholm/sidenav/internal/nav"
	"github.com/bornholm/sidenav/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

const (
	sessionKeyInstance = "instance"
	sessionKeyExpanded = "expanded"
)

// instance is a sidebar instance bound to a browser session.
type instance struct {
	state   *nav.State
	session *sessions.Session
	mounted bool
}

// mount retrieves the sidebar bound to the request's session, creating a
// fresh instance when the session holds none.
func (h *Handler) mount(r *http.Request) (context.Context, *instance) {
	ctx := r.Context()

	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		// The store still returns a new session when the cookie can not be decoded
		slog.WarnContext(ctx, "could not decode session, mounting a new sidebar", log.Error(errors.WithStack(err)))
	}

	if sess == nil {
		sess = sessions.NewSession(h.sessionStore, h.sessionName)
	}

	sidebar := &instance{
		session: sess,
		state:   nav.NewState(h.sections, nav.WithMotion(h.motion)),
	}

	id, _ := sess.Values[sessionKeyInstance].(string)
	if id == "" {
		id = xid.New().String()
		sess.Values[sessionKeyInstance] = id
		sidebar.mounted = true
	}

	if expanded, ok := sess.Values[sessionKeyExpanded].(string); ok {
		sidebar.state.Restore(expanded)
	}

	ctx = log.WithAttrs(ctx, slog.String("instance", id))

	if sidebar.mounted {
		slog.DebugContext(ctx, "sidebar mounted")
	}

	return ctx, sidebar
}

// save persists the explicit selection of the widget's state.
func (h *Handler) save(w http.ResponseWriter, r *http.Request, widget *instance) error {
	expanded, _ := widget.state.Expanded()
	widget.session.Values[sessionKeyExpanded] = expanded

	if err := widget.session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// instanceKey identifies the sidebar instance issuing the request, falling
// back to the client address for sessions without instance.
func (h *Handler) instanceKey(r *http.Request) (string, error) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err == nil {
		if id, ok := sess.Values[sessionKeyInstance].(string); ok && id != "" {
			return id, nil
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr == "" {
			return "", errors.New("could not identify client")
		}

		return r.RemoteAddr, nil
	}

	return host, nil
}
