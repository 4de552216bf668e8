package types

// Wire sentinels kept for compatibility with existing API consumers.
const (
	NotFound       = "Not found"
	NoSuitableJobs = "No suitable jobs found"
)

// Field is a value that an extractor either found or did not.
type Field[T any] struct {
	value T
	found bool
}

// Found wraps a present value.
func Found[T any](v T) Field[T] {
	return Field[T]{value: v, found: true}
}

// Missing returns the empty variant.
func Missing[T any]() Field[T] {
	return Field[T]{}
}

func (f Field[T]) IsFound() bool { return f.found }

// Get returns the value and whether it was found.
func (f Field[T]) Get() (T, bool) { return f.value, f.found }

// Value returns the wrapped value, or the zero value when missing.
func (f Field[T]) Value() T { return f.value }

// Or returns the value when found and the given sentinel otherwise.
// It exists for the JSON boundary where one key may carry either shape.
func (f Field[T]) Or(sentinel any) any {
	if f.found {
		return f.value
	}
	return sentinel
}

// ListOr returns the list when found, or a one-element list holding the sentinel.
func ListOr(f Field[[]string], sentinel string) []string {
	if v, ok := f.Get(); ok && len(v) > 0 {
		return v
	}
	return []string{sentinel}
}
