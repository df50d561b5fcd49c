package markdown

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/bornholm/sidenav/internal/content"
	"github.com/pkg/errors"
)

func TestSourcePage(t *testing.T) {
	type testCase struct {
		Path          string
		ExpectedError error
		ExpectedTitle string
		ExpectedBody  string
	}

	testCases := []testCase{
		{
			Path:          "/",
			ExpectedTitle: "Welcome",
			ExpectedBody:  "Pick a section",
		},
		{
			Path:          "/guides/intro",
			ExpectedTitle: "Introduction",
			ExpectedBody:  "<strong>started</strong>",
		},
		{
			Path:          "/guides/untitled",
			ExpectedTitle: "untitled",
			ExpectedBody:  "without heading",
		},
		{
			Path:          "/api/ref",
			ExpectedTitle: "Reference",
			ExpectedBody:  "<table>",
		},
		{
			Path:          "/guides/missing",
			ExpectedError: content.ErrNotFound,
		},
		{
			Path:          "/guides",
			ExpectedError: content.ErrNotFound,
		},
		{
			Path:          "/../../etc/passwd",
			ExpectedError: content.ErrNotFound,
		},
		{
			Path:          "/.hidden/page",
			ExpectedError: content.ErrNotFound,
		},
	}

	source := NewSource(os.DirFS("testdata/content"))

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			page, err := source.Page(context.Background(), tc.Path)

			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Fatalf("err: expected '%v', got '%v'", tc.ExpectedError, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if !strings.Contains(page.Title, tc.ExpectedTitle) {
				t.Errorf("page.Title: expected '%v', got '%v'", tc.ExpectedTitle, page.Title)
			}

			if !strings.Contains(string(page.Body), tc.ExpectedBody) {
				t.Errorf("page.Body: expected to contain '%v', got '%v'", tc.ExpectedBody, page.Body)
			}

			if e, g := tc.Path, page.Path; e != g {
				t.Errorf("page.Path: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestCreateSourceFromOptions(t *testing.T) {
	source, err := content.New(Type, map[string]any{
		"dir": "testdata/content",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	page, err := source.Page(context.Background(), "/guides/intro")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Introduction", page.Title; e != g {
		t.Errorf("page.Title: expected '%v', got '%v'", e, g)
	}

	if _, err := content.New(Type, map[string]any{}); err == nil {
		t.Errorf("err: expected missing dir error, got nil")
	}

	if _, err := content.New("unknown", nil); err == nil {
		t.Errorf("err: expected unknown type error, got nil")
	}
}
