package loop

import "reflect"

// Resources is a type-keyed registry of shared values. Each type has at most
// one instance, stored by pointer so that every accessor sees the same value.
type Resources struct {
	values map[reflect.Type]any
}

func NewResources() *Resources {
	return &Resources{values: make(map[reflect.Type]any)}
}

// Provide stores ptr as the instance of T, replacing any previous one.
func Provide[T any](r *Resources, ptr *T) {
	r.values[typeOf[T]()] = ptr
}

// Lookup returns the instance of T, or nil if none has been provided.
func Lookup[T any](r *Resources) *T {
	if r == nil {
		return nil
	}
	v, ok := r.values[typeOf[T]()]
	if !ok {
		return nil
	}
	return v.(*T)
}

// Len returns the number of provided resources.
func (r *Resources) Len() int {
	return len(r.values)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Resource provides typed access to a single shared value that is not owned
// by any system. Declare one as a system field and the Scheduler binds it on
// Register.
type Resource[T any] struct {
	resources *Resources
	ptr       *T
}

// NewResource returns an accessor for T. If T has not been provided yet it is
// created from init, or from the zero value, so the resource always exists
// after the call.
func NewResource[T any](r *Resources, init ...T) *Resource[T] {
	ptr := Lookup[T](r)
	if ptr == nil {
		var value T
		if len(init) > 0 {
			value = init[0]
		}
		ptr = &value
		Provide(r, ptr)
	}
	return &Resource[T]{resources: r, ptr: ptr}
}

// Init binds the accessor to r. It is called by Scheduler.Register.
func (s *Resource[T]) Init(r *Resources) {
	s.resources = r
	s.ptr = Lookup[T](r)
}

// Get returns the shared value, or nil if it has not been provided.
func (s *Resource[T]) Get() *T {
	if s.ptr == nil {
		s.ptr = Lookup[T](s.resources)
	}
	return s.ptr
}

func (s *Resource[T]) Exists() bool {
	return s.Get() != nil
}
