package metric

import (
	"github.com/bornholm/sidenav/internal/nav"
	"github.com/prometheus/client_golang/prometheus"
)

// Navigation counts sidebar transitions.
type Navigation struct {
	toggles     IncrementalCounter
	navigations IncrementalCounter
}

func (n *Navigation) Observe(t nav.Transition) {
	state := "collapsed"
	if t.Expanded {
		state = "expanded"
	}

	n.toggles.Increment(t.Label, state)

	if t.Navigated {
		n.navigations.Increment(t.Label)
	}
}

func NewNavigation(reg prometheus.Registerer) *Navigation {
	return &Navigation{
		toggles:     NewCounter(reg, "section_toggles_total", "Number of sidebar section toggles", "section", "state"),
		navigations: NewCounter(reg, "section_navigations_total", "Number of navigations triggered by expanding a section", "section"),
	}
}
