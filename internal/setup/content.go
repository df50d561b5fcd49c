package setup

import (
	"context"

	"github.com/bornholm/sidenav/internal/config"
	"github.com/bornholm/sidenav/internal/content"
	"github.com/pkg/errors"

	_ "github.com/bornholm/sidenav/internal/content/markdown"
)

var NewContentSourceFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (content.Source, error) {
	var options any
	if conf.Content.Options != nil {
		options = conf.Content.Options.Data
	}

	source, err := content.New(content.Type(conf.Content.Type), options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return source, nil
})
