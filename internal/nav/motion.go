package nav

import "time"

// Motion holds the transition parameters the rendering layer applies when a
// section opens or closes.
type Motion struct {
	Duration     time.Duration
	Easing       string
	ItemDuration time.Duration
	Stagger      time.Duration
	// Horizontal offset, in pixels, links slide in from
	ItemOffset int
}

func DefaultMotion() Motion {
	return Motion{
		Duration:     300 * time.Millisecond,
		Easing:       "ease-in-out",
		ItemDuration: 200 * time.Millisecond,
		Stagger:      50 * time.Millisecond,
		ItemOffset:   -10,
	}
}

// Delay returns the entrance delay of the link at the given index.
func (m Motion) Delay(index int) time.Duration {
	return time.Duration(index) * m.Stagger
}
