package fetcher

// Result represents the outcome of one leg of a page fetch.
// Ok is false when the leg failed; the failure has already been logged and
// Value must be ignored.
type Result[T any] struct {
	Value T
	Ok    bool
}

// Some wraps a successful value
func Some[T any](v T) Result[T] {
	return Result[T]{Value: v, Ok: true}
}

// None is a failed leg
func None[T any]() Result[T] {
	return Result[T]{}
}

// Ptr returns a pointer to Value, or nil when the leg failed
func (r Result[T]) Ptr() *T {
	if !r.Ok {
		return nil
	}
	v := r.Value
	return &v
}
