package nav

import (
	"fmt"
	"testing"
	"time"
)

func testSections() Sections {
	return NewSections(
		Section{
			Label: "Guides",
			Items: []Item{
				{Label: "Intro", Href: "/guides/intro"},
				{Label: "Advanced", Href: "/guides/advanced"},
			},
		},
		Section{
			Label: "API",
			Items: []Item{
				{Label: "Ref", Href: "/api/ref"},
			},
		},
	)
}

type recorder struct {
	hrefs []string
}

func (r *recorder) Navigate(href string) {
	r.hrefs = append(r.hrefs, href)
}

func TestStateEffective(t *testing.T) {
	type testCase struct {
		Sections         Sections
		Path             string
		Restore          string
		ExpectedLabel    string
		ExpectedExpanded bool
	}

	testCases := []testCase{
		{
			Sections:         testSections(),
			Path:             "/guides/advanced",
			ExpectedLabel:    "Guides",
			ExpectedExpanded: true,
		},
		{
			Sections:         testSections(),
			Path:             "/api/ref/types",
			ExpectedLabel:    "API",
			ExpectedExpanded: true,
		},
		{
			Sections:         testSections(),
			Path:             "/unknown",
			ExpectedLabel:    "",
			ExpectedExpanded: false,
		},
		{
			Sections:         testSections(),
			Path:             "/guides/intro",
			Restore:          "API",
			ExpectedLabel:    "API",
			ExpectedExpanded: true,
		},
		{
			// First section in configuration order wins
			Sections: NewSections(
				Section{Label: "A", Items: []Item{{Label: "a", Href: "/shared"}}},
				Section{Label: "B", Items: []Item{{Label: "b", Href: "/shared/b"}}},
			),
			Path:             "/shared/b",
			ExpectedLabel:    "A",
			ExpectedExpanded: true,
		},
		{
			// Items without target never match
			Sections: NewSections(
				Section{Label: "A", Items: []Item{{Label: "a"}}},
			),
			Path:             "/anything",
			ExpectedLabel:    "",
			ExpectedExpanded: false,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			state := NewState(tc.Sections)
			state.Restore(tc.Restore)

			label, expanded := state.Effective(tc.Path)

			if e, g := tc.ExpectedExpanded, expanded; e != g {
				t.Errorf("expanded: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedLabel, label; e != g {
				t.Errorf("label: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestStateToggle(t *testing.T) {
	state := NewState(testSections())
	nav := &recorder{}

	path := "/guides/intro"

	transition := state.Toggle("API", path, nav)

	if !transition.Expanded {
		t.Errorf("transition.Expanded: expected true, got false")
	}

	if e, g := "/api/ref", transition.Href; e != g {
		t.Errorf("transition.Href: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(nav.hrefs); e != g {
		t.Fatalf("len(nav.hrefs): expected '%v', got '%v'", e, g)
	}

	if e, g := "/api/ref", nav.hrefs[0]; e != g {
		t.Errorf("nav.hrefs[0]: expected '%v', got '%v'", e, g)
	}

	if label, ok := state.Expanded(); !ok || label != "API" {
		t.Errorf("state.Expanded(): expected 'API', got '%v' (%v)", label, ok)
	}

	path = "/api/ref"

	transition = state.Toggle("API", path, nav)

	if transition.Expanded {
		t.Errorf("transition.Expanded: expected false, got true")
	}

	if transition.Navigated {
		t.Errorf("transition.Navigated: expected false, got true")
	}

	if e, g := 1, len(nav.hrefs); e != g {
		t.Errorf("len(nav.hrefs): expected '%v', got '%v'", e, g)
	}

	if _, ok := state.Expanded(); ok {
		t.Errorf("state.Expanded(): expected unset state")
	}
}

func TestStateToggleTwiceRestoresState(t *testing.T) {
	type testCase struct {
		Path    string
		Restore string
		Label   string
	}

	testCases := []testCase{
		{Path: "/unknown", Label: "Guides"},
		{Path: "/unknown", Label: "API"},
		{Path: "/guides/intro", Label: "API"},
		{Path: "/guides/intro", Label: "Guides"},
		{Path: "/guides/intro", Restore: "API", Label: "API"},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			state := NewState(testSections())
			state.Restore(tc.Restore)

			initialLabel, initialSet := state.Expanded()

			state.Toggle(tc.Label, tc.Path, nil)
			state.Toggle(tc.Label, tc.Path, nil)

			label, set := state.Expanded()

			if e, g := initialSet, set; e != g {
				t.Errorf("set: expected '%v', got '%v'", e, g)
			}

			if e, g := initialLabel, label; e != g {
				t.Errorf("label: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestStateToggleWithoutNavigation(t *testing.T) {
	type testCase struct {
		Sections Sections
		Label    string
	}

	testCases := []testCase{
		{
			Sections: NewSections(Section{Label: "Empty"}),
			Label:    "Empty",
		},
		{
			// The first item lacks a target, later ones are not considered
			Sections: NewSections(Section{
				Label: "Draft",
				Items: []Item{
					{Label: "Soon"},
					{Label: "Now", Href: "/draft/now"},
				},
			}),
			Label: "Draft",
		},
		{
			Sections: testSections(),
			Label:    "Missing",
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			state := NewState(tc.Sections)
			nav := &recorder{}

			transition := state.Toggle(tc.Label, "/", nav)

			if !transition.Expanded {
				t.Errorf("transition.Expanded: expected true, got false")
			}

			if transition.Navigated {
				t.Errorf("transition.Navigated: expected false, got true")
			}

			if e, g := 0, len(nav.hrefs); e != g {
				t.Errorf("len(nav.hrefs): expected '%v', got '%v'", e, g)
			}

			if label, _ := state.Effective("/"); label != tc.Label {
				t.Errorf("state.Effective(): expected '%v', got '%v'", tc.Label, label)
			}
		})
	}
}

func TestIsLinkActive(t *testing.T) {
	type testCase struct {
		Path     string
		Href     string
		Expected bool
	}

	testCases := []testCase{
		{Path: "/guides/advanced", Href: "/guides/advanced", Expected: true},
		{Path: "/guides/advanced", Href: "/guides/intro", Expected: false},
		{Path: "/guides/advanced/part-2", Href: "/guides/advanced", Expected: true},
		{Path: "/guides-extra", Href: "/guides", Expected: true},
		{Path: "/Guides", Href: "/guides", Expected: false},
		{Path: "/guides", Href: "/guides/", Expected: false},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			if e, g := tc.Expected, IsLinkActive(tc.Path, tc.Href); e != g {
				t.Errorf("IsLinkActive(%q, %q): expected '%v', got '%v'", tc.Path, tc.Href, e, g)
			}
		})
	}
}

func TestStateView(t *testing.T) {
	sections := NewSections(
		Section{
			Label: "Guides",
			Items: []Item{
				{Label: "Intro", Href: "/guides/intro"},
				{Label: "Hidden"},
				{Label: "Advanced", Href: "/guides/advanced"},
			},
		},
		Section{
			Label: "API",
			Items: []Item{
				{Label: "Ref", Href: "/api/ref"},
			},
		},
	)

	state := NewState(sections)

	blocks := state.View("/guides/advanced")

	if e, g := 2, len(blocks); e != g {
		t.Fatalf("len(blocks): expected '%v', got '%v'", e, g)
	}

	guides, api := blocks[0], blocks[1]

	if !guides.Expanded {
		t.Errorf("guides.Expanded: expected true, got false")
	}

	if api.Expanded {
		t.Errorf("api.Expanded: expected false, got true")
	}

	if e, g := 0, len(api.Links); e != g {
		t.Errorf("len(api.Links): expected '%v', got '%v'", e, g)
	}

	if e, g := 2, len(guides.Links); e != g {
		t.Fatalf("len(guides.Links): expected '%v', got '%v'", e, g)
	}

	intro, advanced := guides.Links[0], guides.Links[1]

	if intro.Active {
		t.Errorf("intro.Active: expected false, got true")
	}

	if !advanced.Active {
		t.Errorf("advanced.Active: expected true, got false")
	}

	if e, g := 1, advanced.Index; e != g {
		t.Errorf("advanced.Index: expected '%v', got '%v'", e, g)
	}

	if e, g := 50*time.Millisecond, advanced.Delay; e != g {
		t.Errorf("advanced.Delay: expected '%v', got '%v'", e, g)
	}

	blocks = state.View("/unknown")
	for _, b := range blocks {
		if b.Expanded {
			t.Errorf("block '%s': expected collapsed for unmatched path", b.Label)
		}
	}
}

func TestSectionsAreImmutable(t *testing.T) {
	items := []Item{{Label: "Intro", Href: "/guides/intro"}}
	sections := NewSections(Section{Label: "Guides", Items: items})

	items[0].Href = "/changed"

	all := sections.All()
	all[0].Label = "Changed"

	section, found := sections.Find("Guides")
	if !found {
		t.Fatalf("section 'Guides' not found")
	}

	if e, g := "/guides/intro", section.Items[0].Href; e != g {
		t.Errorf("section.Items[0].Href: expected '%v', got '%v'", e, g)
	}
}
