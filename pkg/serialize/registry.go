package serialize

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var ErrUnknownKind = errors.New("unknown kind")

// TypeRegistry maps schema kinds to model factories.
type TypeRegistry struct {
	mu        sync.RWMutex
	factories map[string]func() any
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{factories: make(map[string]func() any)}
}

// Register binds a kind to its factory. Registering the same kind twice is a
// programmer error and panics.
func (r *TypeRegistry) Register(kind string, factory func() any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[kind]; ok {
		panic(fmt.Sprintf("serialize: kind %q registered twice", kind))
	}

	r.factories[kind] = factory
}

// New returns a fresh instance of the model registered under kind.
func (r *TypeRegistry) New(kind string) (any, error) {
	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}

	return factory(), nil
}

// Kinds returns the registered kinds in lexical order.
func (r *TypeRegistry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}

	slices.Sort(kinds)

	return kinds
}

// ModelTypeRegistry holds every model kind of the gateway schema. Each model
// registers itself here at init.
var ModelTypeRegistry = NewTypeRegistry()

// DecodeKind builds an instance of a registered kind from its wire mapping.
func DecodeKind(kind string, data map[string]any) (any, error) {
	instance, err := ModelTypeRegistry.New(kind)
	if err != nil {
		return nil, err
	}

	if err := Decode(data, instance); err != nil {
		return nil, err
	}

	return instance, nil
}
