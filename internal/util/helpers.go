package util

// IntToBool reads a SQLite 0/1 column as a bool.
func IntToBool(i int) bool {
	return i != 0
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns *p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
