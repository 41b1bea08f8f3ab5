// Package truthy provides generic boolean folds over slices with a
// default truthiness predicate.
//
// Truthiness follows zero-value semantics: the empty string, numeric
// zero and false are falsy, everything else is truthy. Nil pointers
// are falsy via Deref. The supported types are enumerated by the Value
// constraint, so truthiness of an unsupported type is a compile error
// rather than a runtime surprise.
package truthy

// Value enumerates the types that have a defined truthiness.
type Value interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Truthy reports whether v is truthy, i.e. not its type's zero value.
func Truthy[T Value](v T) bool {
	var zero T
	return v != zero
}

// Deref reports the truthiness of the pointed-to value. A nil pointer
// is falsy.
func Deref[T Value](p *T) bool {
	return p != nil && Truthy(*p)
}

// All reports whether every item is truthy, scanning left to right and
// stopping at the first falsy item. An empty slice is all-truthy.
func All[T Value](items []T) bool {
	return AllFunc(items, Truthy[T])
}

// Any reports whether at least one item is truthy, scanning left to
// right and stopping at the first truthy item. An empty slice has
// none.
func Any[T Value](items []T) bool {
	return AnyFunc(items, Truthy[T])
}

// AllFunc reports whether pred holds for every item, stopping at the
// first failure.
func AllFunc[T any](items []T, pred func(T) bool) bool {
	for _, v := range items {
		if !pred(v) {
			return false
		}
	}
	return true
}

// AnyFunc reports whether pred holds for at least one item, stopping
// at the first success.
func AnyFunc[T any](items []T, pred func(T) bool) bool {
	for _, v := range items {
		if pred(v) {
			return true
		}
	}
	return false
}
