package config

import "github.com/goccy/go-yaml"

type Metrics struct {
	Enabled InterpolatedBool   `yaml:"enabled"`
	Path    InterpolatedString `yaml:"path"`
}

func NewDefaultMetricsConfig() Metrics {
	return Metrics{
		Enabled: false,
		Path:    "/metrics",
	}
}

func NewMetricsConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":         []*yaml.Comment{yaml.HeadComment(" Prometheus metrics")},
		".enabled": []*yaml.Comment{yaml.HeadComment(" Expose metrics endpoint")},
		".path":    []*yaml.Comment{yaml.HeadComment(" Metrics endpoint path")},
	}
}
