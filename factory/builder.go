package factory

import (
	"context"
	"reflect"

	"github.com/go-leo/typefactory/typelist"
)

// Builder collects sequences and builds a Universe from them.
type Builder struct {
	lists []typelist.TypeList
	opts  []Option
}

func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: opts}
}

// Add registers a sequence made of types.
func (b *Builder) Add(types ...reflect.Type) *Builder {
	return b.AddList(typelist.New(types...))
}

// AddList registers a sequence.
func (b *Builder) AddList(l typelist.TypeList) *Builder {
	b.lists = append(b.lists, l)
	return b
}

// Build returns the Universe of the registered sequences.
func (b *Builder) Build(ctx context.Context) (*Universe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return New(b.lists, b.opts...)
}
