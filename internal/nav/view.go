package nav

import "time"

// Block is the render model of a section.
type Block struct {
	Label    string
	Expanded bool
	Links    []Link
}

// Link is the render model of an item with a target.
type Link struct {
	Label  string
	Href   string
	Active bool
	Index  int
	Delay  time.Duration
}

// View computes the blocks to render for the given path, in configuration
// order. Only the effective section is expanded and carries links.
func (s *State) View(path string) []Block {
	effective, hasEffective := s.Effective(path)

	blocks := make([]Block, 0, s.sections.Len())
	for _, section := range s.sections.sections {
		block := Block{
			Label:    section.Label,
			Expanded: hasEffective && section.Label == effective,
		}

		if block.Expanded {
			links := section.Links()
			block.Links = make([]Link, 0, len(links))
			for idx, item := range links {
				block.Links = append(block.Links, Link{
					Label:  item.Label,
					Href:   item.Href,
					Active: IsLinkActive(path, item.Href),
					Index:  idx,
					Delay:  s.motion.Delay(idx),
				})
			}
		}

		blocks = append(blocks, block)
	}

	return blocks
}
