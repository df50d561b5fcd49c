package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed templates/**
var commonFs embed.FS

var commonFuncs = template.FuncMap{
	"humanizeBytes": func(n int64) string {
		if n < 0 {
			n = 0
		}

		return humanize.Bytes(uint64(n))
	},
	"humanizeTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}

		return humanize.Time(t)
	},
	// seconds formats a duration as a CSS time value
	"seconds": func(d time.Duration) string {
		return fmt.Sprintf("%gs", d.Seconds())
	},
}

var templatePatterns = []string{
	"**/views/*.gohtml",
	"**/layouts/*.gohtml",
}

// Templates parses the shared layouts together with the views and layouts
// found in the given filesystems.
func Templates(funcs template.FuncMap, filesystems ...fs.FS) (*template.Template, error) {
	filesystems = append([]fs.FS{commonFs}, filesystems...)

	// Each filesystem is globbed on its own, the merged one logs every
	// directory missing from one of its members
	templates := make([]string, 0)
	seen := make(map[string]struct{})

	for _, fsys := range filesystems {
		for _, pattern := range templatePatterns {
			matches, err := fs.Glob(fsys, pattern)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			for _, m := range matches {
				if _, exists := seen[m]; exists {
					continue
				}

				seen[m] = struct{}{}
				templates = append(templates, m)
			}
		}
	}

	tmpl := template.New("").Funcs(sprig.FuncMap()).Funcs(commonFuncs)

	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}

	tmpl, err := tmpl.ParseFS(mergefs.Merge(filesystems...), templates...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}

type HeadTemplateData struct {
	PageTitle string
}
