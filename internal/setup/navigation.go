package setup

import (
	"time"

	"github.com/bornholm/sidenav/internal/config"
	"github.com/bornholm/sidenav/internal/nav"
	"github.com/pkg/errors"
)

func NewSectionsFromConfig(conf *config.Config) (nav.Sections, error) {
	sections := make([]nav.Section, 0, len(conf.Navigation.Sections))
	labels := make(map[string]struct{}, len(conf.Navigation.Sections))

	for _, s := range conf.Navigation.Sections {
		label := string(s.Label)
		if label == "" {
			return nav.Sections{}, errors.New("navigation section without label")
		}

		if _, exists := labels[label]; exists {
			return nav.Sections{}, errors.Errorf("duplicated navigation section '%s'", label)
		}

		labels[label] = struct{}{}

		items := make([]nav.Item, 0, len(s.Items))
		for _, i := range s.Items {
			items = append(items, nav.Item{
				Label: string(i.Label),
				Href:  string(i.Href),
			})
		}

		sections = append(sections, nav.Section{
			Label: label,
			Items: items,
		})
	}

	return nav.NewSections(sections...), nil
}

func NewMotionFromConfig(conf *config.Config) nav.Motion {
	motion := nav.DefaultMotion()

	if d := conf.Navigation.Motion.Duration; d != nil {
		motion.Duration = time.Duration(*d)
	}

	if d := conf.Navigation.Motion.ItemDuration; d != nil {
		motion.ItemDuration = time.Duration(*d)
	}

	if d := conf.Navigation.Motion.Stagger; d != nil {
		motion.Stagger = time.Duration(*d)
	}

	if easing := conf.Navigation.Motion.Easing; easing != "" {
		motion.Easing = string(easing)
	}

	if offset := conf.Navigation.Motion.ItemOffset; offset != nil {
		motion.ItemOffset = int(*offset)
	}

	return motion
}
