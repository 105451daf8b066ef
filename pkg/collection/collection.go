// Package collection provides generic, functional-style helpers for slices.
//
//	names := collection.Map(dishes, func(d *models.Dish) string { return d.Name })
//	i := collection.IndexOf(orders, func(o *models.Order) bool { return o.ID == id })
package collection

// Map transforms each element of slice s using fn. The result is never nil.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// IndexOf returns the index of the first element matching fn, or -1.
func IndexOf[T any](s []T, fn func(T) bool) int {
	for i, v := range s {
		if fn(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element of s satisfies fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	return IndexOf(s, fn) != -1
}
