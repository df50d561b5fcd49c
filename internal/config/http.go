package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address   InterpolatedString `yaml:"address"`
	BaseURL   InterpolatedString `yaml:"baseUrl"`
	RateLimit RateLimit          `yaml:"rateLimit"`
}

type RateLimit struct {
	Rate        InterpolatedFloat     `yaml:"rate"`
	Burst       InterpolatedInt       `yaml:"burst"`
	IdleTimeout *InterpolatedDuration `yaml:"idleTimeout"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address: "${SIDENAV_HTTP_ADDRESS:-:8080}",
		BaseURL: "${SIDENAV_HTTP_BASE_URL:-http://localhost:8080}",
		RateLimit: RateLimit{
			Rate:        10,
			Burst:       20,
			IdleTimeout: NewInterpolatedDuration(10 * time.Minute),
		},
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                       []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":               []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".baseUrl":               []*yaml.Comment{yaml.HeadComment(" Public base URL of the site")},
		".rateLimit":             []*yaml.Comment{yaml.HeadComment(" Rate limiting of sidebar interactions, per widget instance")},
		".rateLimit.rate":        []*yaml.Comment{yaml.HeadComment(" Sustained interactions per second")},
		".rateLimit.burst":       []*yaml.Comment{yaml.HeadComment(" Maximum burst of interactions")},
		".rateLimit.idleTimeout": []*yaml.Comment{yaml.HeadComment(" Unused buckets are forgotten after this delay")},
	}
}
