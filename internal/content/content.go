package content

import (
	"context"
	"html/template"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("not found")

// Page is a rendered content page.
type Page struct {
	Path    string
	Title   string
	Body    template.HTML
	Size    int64
	ModTime time.Time
}

// Source resolves URL paths to content pages.
type Source interface {
	Page(ctx context.Context, urlPath string) (*Page, error)
}
