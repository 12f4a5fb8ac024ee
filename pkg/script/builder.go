package script

import (
	"github.com/vango-dev/mirror/pkg/convert"
	"github.com/vango-dev/mirror/pkg/markup"
)

// Builder creates live nodes that share an identity source, a namespace and
// a registry.
type Builder struct {
	ids       IdentitySource
	namespace string
	registry  *convert.Registry[markup.Node]
}

// Option configures a Builder.
type Option func(*Builder)

// WithIdentities sets the identity source. The default is UUIDs.
func WithIdentities(src IdentitySource) Option {
	return func(b *Builder) {
		b.ids = src
	}
}

// WithNamespace sets the slot name prefix. The default is DefaultNamespace.
func WithNamespace(ns string) Option {
	return func(b *Builder) {
		b.namespace = ns
	}
}

// WithRegistry sets the registry that converts values for built nodes.
// The default is Registry.
func WithRegistry(reg *convert.Registry[markup.Node]) Option {
	return func(b *Builder) {
		b.registry = reg
	}
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		ids:       UUIDs(),
		namespace: DefaultNamespace,
		registry:  Registry(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// LiveWith creates a live node. The identity is the id attribute when one
// with a value is supplied, otherwise the next identity from the source.
func (b *Builder) LiveWith(opts ...markup.Option) (*Live, error) {
	return b.build(false, opts)
}

// FrozenWith creates a live node whose client render function is constant.
func (b *Builder) FrozenWith(opts ...markup.Option) (*Live, error) {
	return b.build(true, opts)
}

// Live is LiveWith for values the registry always accepts. It panics on a
// conversion error.
func (b *Builder) Live(opts ...markup.Option) *Live {
	return must(b.LiveWith(opts...))
}

// Frozen is the panicking form of FrozenWith.
func (b *Builder) Frozen(opts ...markup.Option) *Live {
	return must(b.FrozenWith(opts...))
}

func (b *Builder) build(frozen bool, opts []markup.Option) (*Live, error) {
	el, err := markup.NewWith(b.registry, opts...)
	if err != nil {
		return nil, err
	}
	var identity string
	if a, ok := el.Lookup("id"); ok && !a.Bare() {
		identity = a.Value.Render()
	}
	if identity == "" {
		identity = b.ids.Next()
	}
	return newLive(el, identity, b.namespace, frozen), nil
}

func must(l *Live, err error) *Live {
	if err != nil {
		panic(err)
	}
	return l
}

var defaultBuilder = NewBuilder()

// New creates a live node with UUID identities in DefaultNamespace.
func New(opts ...markup.Option) *Live {
	return defaultBuilder.Live(opts...)
}

// NewFrozen creates a frozen node with UUID identities in DefaultNamespace.
func NewFrozen(opts ...markup.Option) *Live {
	return defaultBuilder.Frozen(opts...)
}
