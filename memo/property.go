package memo

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrScopeNotInitialized is returned when a property is used with a
	// context that carries no Scope.
	ErrScopeNotInitialized = errors.New("memo: scope not initialized")
	// ErrPropertyNotSet is returned by Get for an unset property that has no
	// getter.
	ErrPropertyNotSet = errors.New("memo: property not set")
	// ErrReadOnly is returned when setting or deleting a read-only property.
	ErrReadOnly = errors.New("memo: property is read-only")
)

// Property is a named value stored in the Scope of a context. A property with
// a getter computes its value on first read and keeps it in the scope until
// deleted.
type Property[T any] struct {
	name     string
	readOnly bool
	getter   func(ctx context.Context) (T, error)
}

type propertyOptions struct {
	readOnly bool
	getter   any
}

// PropertyOption configures a Property.
type PropertyOption func(*propertyOptions)

// ReadOnly makes Set and Delete fail with ErrReadOnly. Combined with
// WithGetter the property can only be computed.
func ReadOnly() PropertyOption {
	return func(o *propertyOptions) {
		o.readOnly = true
	}
}

// WithGetter computes the property on first read. Its result type must match
// the property type.
func WithGetter[T any](getter func(ctx context.Context) (T, error)) PropertyOption {
	return func(o *propertyOptions) {
		o.getter = getter
	}
}

// NewProperty returns a property stored under name. It panics if a getter
// returns a type other than T.
func NewProperty[T any](name string, opts ...PropertyOption) *Property[T] {
	var o propertyOptions
	for _, opt := range opts {
		opt(&o)
	}
	p := &Property[T]{name: name, readOnly: o.readOnly}
	if o.getter != nil {
		getter, ok := o.getter.(func(ctx context.Context) (T, error))
		if !ok {
			var zero T
			panic(fmt.Sprintf("memo: property %q getter is %T, want a getter of %T", name, o.getter, zero))
		}
		p.getter = getter
	}
	return p
}

// Name returns the key the property is stored under.
func (p *Property[T]) Name() string {
	return p.name
}

func (p *Property[T]) scope(ctx context.Context) (*Scope, error) {
	s, ok := ScopeFromContext(ctx)
	if !ok {
		return nil, errors.Wrapf(ErrScopeNotInitialized, "property %q", p.name)
	}
	return s, nil
}

// Get returns the property value from the context's Scope, computing it with
// the getter if it is unset. Getter errors are returned unchanged and leave
// the property unset.
func (p *Property[T]) Get(ctx context.Context) (T, error) {
	var zero T
	s, err := p.scope(ctx)
	if err != nil {
		return zero, err
	}
	if v, ok := s.values[p.name]; ok {
		typed, ok := v.(T)
		if !ok {
			return zero, errors.Newf("memo: property %q holds %T, not %T", p.name, v, zero)
		}
		return typed, nil
	}
	if p.getter == nil {
		return zero, errors.Wrapf(ErrPropertyNotSet, "property %q", p.name)
	}
	v, err := p.getter(ctx)
	if err != nil {
		return zero, err
	}
	s.values[p.name] = v
	return v, nil
}

// Set stores v in the context's Scope.
func (p *Property[T]) Set(ctx context.Context, v T) error {
	if p.readOnly {
		return errors.Wrapf(ErrReadOnly, "property %q", p.name)
	}
	s, err := p.scope(ctx)
	if err != nil {
		return err
	}
	s.values[p.name] = v
	return nil
}

// Delete removes the value from the context's Scope. A lazy property is
// recomputed on the next Get.
func (p *Property[T]) Delete(ctx context.Context) error {
	if p.readOnly {
		return errors.Wrapf(ErrReadOnly, "property %q", p.name)
	}
	s, err := p.scope(ctx)
	if err != nil {
		return err
	}
	delete(s.values, p.name)
	return nil
}
