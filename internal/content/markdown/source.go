package markdown

import (
	"bytes"
	"context"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/bornholm/sidenav/internal/content"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type Source struct {
	root fs.FS
	md   goldmark.Markdown
}

// Page implements content.Source.
func (s *Source) Page(ctx context.Context, urlPath string) (*content.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	for _, candidate := range candidates(urlPath) {
		info, err := fs.Stat(s.root, candidate)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, errors.WithStack(err)
		}

		if info.IsDir() {
			continue
		}

		source, err := fs.ReadFile(s.root, candidate)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		page, err := s.render(source)
		if err != nil {
			return nil, errors.Wrapf(err, "could not render '%s'", candidate)
		}

		page.Path = urlPath
		page.Size = info.Size()
		page.ModTime = info.ModTime()

		if page.Title == "" {
			page.Title = strings.TrimSuffix(path.Base(candidate), path.Ext(candidate))
		}

		return page, nil
	}

	return nil, errors.WithStack(content.ErrNotFound)
}

func (s *Source) render(source []byte) (*content.Page, error) {
	doc := s.md.Parser().Parse(text.NewReader(source))

	var buff bytes.Buffer
	if err := s.md.Renderer().Render(&buff, source, doc); err != nil {
		return nil, errors.WithStack(err)
	}

	return &content.Page{
		Title: title(doc, source),
		Body:  template.HTML(buff.String()),
	}, nil
}

// candidates lists the files a URL path may resolve to, in lookup order.
func candidates(urlPath string) []string {
	cleaned := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if cleaned == "" {
		return []string{"index.md"}
	}

	for _, segment := range strings.Split(cleaned, "/") {
		if strings.HasPrefix(segment, ".") {
			return nil
		}
	}

	return []string{cleaned + ".md", path.Join(cleaned, "index.md")}
}

// title returns the text of the first level 1 heading.
func title(doc ast.Node, source []byte) string {
	var buff strings.Builder

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		heading, ok := n.(*ast.Heading)
		if !ok || !entering || heading.Level != 1 {
			return ast.WalkContinue, nil
		}

		ast.Walk(heading, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
			if t, ok := child.(*ast.Text); ok && entering {
				buff.Write(t.Segment.Value(source))
			}

			return ast.WalkContinue, nil
		})

		return ast.WalkStop, nil
	})

	return strings.TrimSpace(buff.String())
}

func NewSource(root fs.FS) *Source {
	return &Source{
		root: root,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

var _ content.Source = &Source{}
