package observable

// Observable holds one value and the listeners that receive every change of it.
// Use a pointer, slice or map type for T when the value may be absent.
type Observable[T any] struct {
	value     T
	listeners []func(T)
}

// New creates an observable holding initial and no listeners
func New[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current value
func (o *Observable[T]) Value() T {
	return o.value
}

// Set replaces the current value and calls every listener with it, in the
// order they subscribed, before returning. A panicking listener stops the
// broadcast; later listeners are not called.
func (o *Observable[T]) Set(value T) {
	o.value = value
	for _, listener := range o.listeners {
		listener(value)
	}
}

// Subscribe registers listener and calls it once right away with the current
// value. There is no way to unsubscribe.
func (o *Observable[T]) Subscribe(listener func(T)) {
	o.listeners = append(o.listeners, listener)
	listener(o.value)
}
