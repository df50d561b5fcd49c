package content

import (
	"slices"
	"sync"

	"github.com/pkg/errors"
)

type Type string

type FactoryFunc func(options any) (Source, error)

var (
	registryMutex sync.RWMutex
	registry      = map[Type]FactoryFunc{}
)

func Register(sourceType Type, factory FactoryFunc) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	registry[sourceType] = factory
}

func Registered() []Type {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}

	slices.Sort(types)

	return types
}

func New(sourceType Type, options any) (Source, error) {
	registryMutex.RLock()
	factory, exists := registry[sourceType]
	registryMutex.RUnlock()

	if !exists {
		return nil, errors.Errorf("no content source registered with type '%s'", sourceType)
	}

	source, err := factory(options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return source, nil
}
