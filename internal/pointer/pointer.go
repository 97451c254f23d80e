package pointer

func To[T any](t T) *T {
	return &t
}

// Each returns a pointer to a copy of every element of values, in order.
func Each[T any](values []T) []*T {
	r := make([]*T, len(values))
	for i, v := range values {
		r[i] = To(v)
	}
	return r
}

// Describe renders a possibly-nil pointer for diagnostics.
func Describe[T any](p *T, absent string, format func(T) string) string {
	if p == nil {
		return absent
	}
	return format(*p)
}
