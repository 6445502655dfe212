package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps an optional field unless the patch carries a value for it.
func CoalescePtr[T any](ptr *T, fallback *T) *T {
	if ptr != nil {
		v := *ptr
		return &v
	}
	return fallback
}
