package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type Navigation struct {
	Sections []NavigationSection `yaml:"sections"`
	Motion   Motion              `yaml:"motion"`
}

type NavigationSection struct {
	Label InterpolatedString `yaml:"label"`
	Items []NavigationItem   `yaml:"items"`
}

type NavigationItem struct {
	Label InterpolatedString `yaml:"label"`
	Href  InterpolatedString `yaml:"href,omitempty"`
}

type Motion struct {
	Duration     *InterpolatedDuration `yaml:"duration"`
	ItemDuration *InterpolatedDuration `yaml:"itemDuration"`
	Stagger      *InterpolatedDuration `yaml:"stagger"`
	Easing       InterpolatedString    `yaml:"easing"`
	ItemOffset   *InterpolatedInt      `yaml:"itemOffset"`
}

func NewDefaultNavigationConfig() Navigation {
	return Navigation{
		Sections: []NavigationSection{
			{
				Label: "Guides",
				Items: []NavigationItem{
					{Label: "Introduction", Href: "/guides/intro"},
					{Label: "Advanced", Href: "/guides/advanced"},
				},
			},
			{
				Label: "API",
				Items: []NavigationItem{
					{Label: "Reference", Href: "/api/ref"},
				},
			},
		},
		Motion: Motion{
			Duration:     NewInterpolatedDuration(300 * time.Millisecond),
			ItemDuration: NewInterpolatedDuration(200 * time.Millisecond),
			Stagger:      NewInterpolatedDuration(50 * time.Millisecond),
			Easing:       "ease-in-out",
			ItemOffset:   NewInterpolatedInt(-10),
		},
	}
}

func NewNavigationConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                   []*yaml.Comment{yaml.HeadComment(" Sidebar navigation")},
		".sections":          []*yaml.Comment{yaml.HeadComment(" Ordered sections, labels must be unique", " Items without href are listed but never rendered")},
		".motion":            []*yaml.Comment{yaml.HeadComment(" Expand/collapse transition parameters")},
		".motion.stagger":    []*yaml.Comment{yaml.HeadComment(" Delay added per link index when a section opens")},
		".motion.itemOffset": []*yaml.Comment{yaml.HeadComment(" Horizontal offset, in pixels, links slide in from")},
	}
}
