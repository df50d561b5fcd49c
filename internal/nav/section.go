package nav

import "strings"

// Item is a single entry of a section. An empty Href means the item has no
// target: it is neither rendered as a link nor used for path matching.
type Item struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href,omitempty"`
}

// Section is a top-level navigation category.
type Section struct {
	Label string `yaml:"label"`
	Items []Item `yaml:"items"`
}

// Links returns the items that carry a target.
func (s Section) Links() []Item {
	links := make([]Item, 0, len(s.Items))
	for _, item := range s.Items {
		if item.Href == "" {
			continue
		}

		links = append(links, item)
	}

	return links
}

// Matches reports whether one of the section's targets is a prefix of the
// given path.
func (s Section) Matches(path string) bool {
	for _, item := range s.Items {
		if item.Href != "" && IsLinkActive(path, item.Href) {
			return true
		}
	}

	return false
}

// Sections is the ordered, immutable navigation configuration.
type Sections struct {
	sections []Section
}

func NewSections(sections ...Section) Sections {
	copied := make([]Section, len(sections))
	for idx, s := range sections {
		copied[idx] = Section{
			Label: s.Label,
			Items: append([]Item(nil), s.Items...),
		}
	}

	return Sections{sections: copied}
}

func (s Sections) Len() int {
	return len(s.sections)
}

// All returns a copy of the sections in configuration order.
func (s Sections) All() []Section {
	return NewSections(s.sections...).sections
}

func (s Sections) Find(label string) (Section, bool) {
	for _, section := range s.sections {
		if section.Label == label {
			return section, true
		}
	}

	return Section{}, false
}

// Match returns the first section, in configuration order, having a target
// that prefixes path.
func (s Sections) Match(path string) (Section, bool) {
	for _, section := range s.sections {
		if section.Matches(path) {
			return section, true
		}
	}

	return Section{}, false
}

// IsLinkActive reports whether path starts with href. The comparison is a
// raw, case-sensitive string prefix: "/guides" is active for "/guides-extra".
func IsLinkActive(path, href string) bool {
	return strings.HasPrefix(path, href)
}
