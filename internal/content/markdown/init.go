package markdown

import (
	"os"

	"github.com/bornholm/sidenav/internal/content"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const (
	Type content.Type = "markdown"
)

func init() {
	content.Register(Type, CreateSourceFromOptions)
}

type Options struct {
	Dir string `mapstructure:"dir"`
}

func CreateSourceFromOptions(options any) (content.Source, error) {
	opts := Options{}

	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' content source options", Type)
	}

	if opts.Dir == "" {
		return nil, errors.Errorf("'%s' content source requires the 'dir' option", Type)
	}

	return NewSource(os.DirFS(opts.Dir)), nil
}
