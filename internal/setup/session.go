package setup

import (
	"context"
	"crypto/rand"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/sidenav/internal/config"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var NewSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	keyPairs := make([][]byte, 0)
	for _, k := range conf.Session.Keys {
		if k == "" {
			continue
		}

		keyPairs = append(keyPairs, []byte(k))
	}

	if len(keyPairs) == 0 {
		key, err := getRandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		slog.WarnContext(ctx, "no session key configured, sidebar states will not survive a restart")

		keyPairs = append(keyPairs, key)
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	if conf.Session.Cookie.MaxAge != nil {
		sessionStore.MaxAge(int(time.Duration(*conf.Session.Cookie.MaxAge).Seconds()))
	}

	sessionStore.Options.Path = string(conf.Session.Cookie.Path)
	sessionStore.Options.HttpOnly = bool(conf.Session.Cookie.HTTPOnly)
	sessionStore.Options.Secure = bool(conf.Session.Cookie.Secure)
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})

func getRandomBytes(n int) ([]byte, error) {
	data := make([]byte, n)

	if _, err := rand.Read(data); err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}
