package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type Session struct {
	Name   InterpolatedString      `yaml:"name"`
	Keys   InterpolatedStringSlice `yaml:"keys"`
	Cookie Cookie                  `yaml:"cookie"`
}

type Cookie struct {
	Path     InterpolatedString    `yaml:"path"`
	MaxAge   *InterpolatedDuration `yaml:"maxAge"`
	HTTPOnly InterpolatedBool      `yaml:"httpOnly"`
	Secure   InterpolatedBool      `yaml:"secure"`
}

func NewDefaultSessionConfig() Session {
	return Session{
		Name: "${SIDENAV_SESSION_NAME:-sidenav_state}",
		Keys: InterpolatedStringSlice{"${SIDENAV_SESSION_KEY:-}"},
		Cookie: Cookie{
			Path:     "/",
			MaxAge:   NewInterpolatedDuration(24 * time.Hour),
			HTTPOnly: true,
			Secure:   false,
		},
	}
}

func NewSessionConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":               []*yaml.Comment{yaml.HeadComment(" Session configuration", " The sidebar state is bound to the browser session")},
		".name":          []*yaml.Comment{yaml.HeadComment(" Session cookie name")},
		".keys":          []*yaml.Comment{yaml.HeadComment(" Cookie signing keys, a random key is generated when empty")},
		".cookie.maxAge": []*yaml.Comment{yaml.HeadComment(" Session lifetime")},
	}
}
