package nav

// Transition is emitted by State.Toggle.
type Transition struct {
	Label    string
	Expanded bool
	// Href is the target the navigator was asked to move to, if any
	Href      string
	Navigated bool
}

// State is the per-instance UI state of the sidebar. It only stores the
// explicitly expanded section; the current path is owned by the caller and
// passed on every read.
type State struct {
	sections Sections
	motion   Motion
	expanded string
	explicit bool
}

type OptionFunc func(s *State)

func WithMotion(motion Motion) OptionFunc {
	return func(s *State) {
		s.motion = motion
	}
}

// NewState creates a state with no explicitly expanded section.
func NewState(sections Sections, funcs ...OptionFunc) *State {
	state := &State{
		sections: sections,
		motion:   DefaultMotion(),
	}

	for _, fn := range funcs {
		fn(state)
	}

	return state
}

// Restore sets the explicit selection, typically from a previously persisted
// value. An empty label leaves the state unset.
func (s *State) Restore(label string) {
	s.expanded = label
	s.explicit = label != ""
}

// Expanded returns the explicit selection.
func (s *State) Expanded() (string, bool) {
	return s.expanded, s.explicit
}

func (s *State) Motion() Motion {
	return s.motion
}

func (s *State) Sections() Sections {
	return s.sections
}

// Effective returns the section shown expanded for the given path: the
// explicit selection if any, else the first section matching the path.
func (s *State) Effective(path string) (string, bool) {
	if s.explicit {
		return s.expanded, true
	}

	section, found := s.sections.Match(path)
	if !found {
		return "", false
	}

	return section.Label, true
}

// Toggle expands the section with the given label, navigating to its first
// item, or collapses it when it is already the effective section.
func (s *State) Toggle(label string, path string, navigator Navigator) Transition {
	if current, ok := s.Effective(path); ok && current == label {
		s.Restore("")
		return Transition{Label: label, Expanded: false}
	}

	s.Restore(label)

	transition := Transition{Label: label, Expanded: true}

	section, found := s.sections.Find(label)
	if !found || len(section.Items) == 0 {
		return transition
	}

	// Only the first item is considered, even when it has no target
	first := section.Items[0]
	if first.Href == "" {
		return transition
	}

	if navigator != nil {
		navigator.Navigate(first.Href)
	}

	transition.Href = first.Href
	transition.Navigated = true

	return transition
}
