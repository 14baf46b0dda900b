package patmat

import (
	"reflect"
	"strings"
)

// --- Predicates ------------------------------------------------------------

// Predicate wraps a boolean test as a Pattern. On success the pattern
// derives the original value, unchanged.
func Predicate(test func(x interface{}) bool) Pattern {
	return PatternFunc(func(x interface{}) (interface{}, bool) {
		if test(x) {
			return x, true
		}
		return nil, false
	})
}

// Equal matches values equal to v. Values of uncomparable dynamic type
// never match (they cannot panic the equality test).
func Equal(v interface{}) Pattern {
	return Predicate(func(x interface{}) bool {
		return equal(v, x)
	})
}

// Is matches the value identical to x: for pointers, maps, channels,
// functions and slices identity means the same underlying reference; for
// everything else Is degrades to Equal.
func Is(identity interface{}) Pattern {
	return Predicate(func(x interface{}) bool {
		return identical(identity, x)
	})
}

// In matches values contained in container: elements of a slice or array,
// keys of a map, substrings of a string. Unsupported container shapes
// never match.
func In(container interface{}) Pattern {
	return Predicate(func(x interface{}) bool {
		return contains(container, x)
	})
}

// Type matches values whose runtime type is t, is assignable to t, or,
// for interface types, implements t.
func Type(t reflect.Type) Pattern {
	return Predicate(func(x interface{}) bool {
		if t == nil || x == nil {
			return false
		}
		return reflect.TypeOf(x).AssignableTo(t)
	})
}

// TypeOf is the generic shorthand for Type: it matches values which
// type-assert to T.
func TypeOf[T any]() Pattern {
	return Predicate(func(x interface{}) bool {
		_, ok := x.(T)
		return ok
	})
}

// --- Equality helpers ------------------------------------------------------

func equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() || !ra.Type().Comparable() {
		return false
	}
	return a == b
}

func identical(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() != rb.Kind() {
		return false
	}
	switch ra.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Type() == rb.Type() && ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}
	return equal(a, b)
}

func contains(container, x interface{}) bool {
	if container == nil {
		return false
	}
	rc := reflect.ValueOf(container)
	switch rc.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rc.Len(); i++ {
			if equal(rc.Index(i).Interface(), x) {
				return true
			}
		}
	case reflect.Map:
		if x == nil || !reflect.TypeOf(x).AssignableTo(rc.Type().Key()) {
			return false
		}
		if !reflect.TypeOf(x).Comparable() { // MapIndex cannot hash it
			return false
		}
		return rc.MapIndex(reflect.ValueOf(x)).IsValid()
	case reflect.String:
		if s, ok := x.(string); ok {
			return strings.Contains(rc.String(), s)
		}
	}
	return false
}
