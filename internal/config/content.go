package config

import (
	"fmt"

	"github.com/bornholm/sidenav/internal/content"
	"github.com/bornholm/sidenav/internal/content/markdown"
	"github.com/goccy/go-yaml"
)

type Content struct {
	Type    InterpolatedString `yaml:"type"`
	Options *InterpolatedMap   `yaml:"options"`
}

func NewDefaultContentConfig() Content {
	return Content{
		Type: InterpolatedString(fmt.Sprintf("${SIDENAV_CONTENT_TYPE:-%s}", markdown.Type)),
		Options: &InterpolatedMap{
			Data: map[string]any{
				"dir": "${SIDENAV_CONTENT_DIR:-./content}",
			},
		},
	}
}

func NewContentConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":         []*yaml.Comment{yaml.HeadComment(" Content source configuration")},
		".type":    []*yaml.Comment{yaml.HeadComment(" Content source type", fmt.Sprintf(" Available: %v", content.Registered()))},
		".options": []*yaml.Comment{yaml.HeadComment(" Content source options")},
	}
}
