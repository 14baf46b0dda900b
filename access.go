package patmat

import (
	"reflect"
)

// --- Subscript access ------------------------------------------------------

// Key matches a subscriptable value containing the given key, deriving the
// value stored under that key. Maps are subscripted by key, slices, arrays
// and strings by integer index. An absent key, an index out of range, or a
// value that cannot be subscripted at all is an ordinary match failure.
func Key(key interface{}) Pattern {
	return PatternFunc(func(x interface{}) (interface{}, bool) {
		return subscript(x, key)
	})
}

// Keys matches a subscriptable value containing all given keys, deriving
// the list of values stored under them, in key order.
func Keys(keys ...interface{}) Pattern {
	return PatternFunc(func(x interface{}) (interface{}, bool) {
		values := make([]interface{}, len(keys))
		for i, k := range keys {
			v, ok := subscript(x, k)
			if !ok {
				return nil, false
			}
			values[i] = v
		}
		return values, true
	})
}

// --- Named-field access ----------------------------------------------------

// Attr matches a value owning the named attribute, deriving that
// attribute: an exported struct field (pointers are followed), or an
// exported method as a bound function value. An absent name or a fieldless
// shape is an ordinary match failure.
func Attr(name string) Pattern {
	return PatternFunc(func(x interface{}) (interface{}, bool) {
		return attribute(x, name)
	})
}

// Attrs matches a value owning all named attributes, deriving the list of
// their values, in name order.
func Attrs(names ...string) Pattern {
	return PatternFunc(func(x interface{}) (interface{}, bool) {
		values := make([]interface{}, len(names))
		for i, name := range names {
			v, ok := attribute(x, name)
			if !ok {
				return nil, false
			}
			values[i] = v
		}
		return values, true
	})
}

// --- Reflection helpers ----------------------------------------------------

// subscript performs the lookup for Key/Keys. Reflection panics are
// confined here and downgraded to match failures.
func subscript(x, key interface{}) (v interface{}, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Debugf("subscript lookup confined: %v", r)
			v, ok = nil, false
		}
	}()
	if x == nil {
		return nil, false
	}
	rx := reflect.ValueOf(x)
	switch rx.Kind() {
	case reflect.Map:
		if key == nil || !reflect.TypeOf(key).AssignableTo(rx.Type().Key()) {
			return nil, false
		}
		rv := rx.MapIndex(reflect.ValueOf(key))
		if !rv.IsValid() {
			return nil, false
		}
		return rv.Interface(), true
	case reflect.Slice, reflect.Array, reflect.String:
		i, isIndex := asIndex(key)
		if !isIndex || i < 0 || i >= rx.Len() {
			return nil, false
		}
		return rx.Index(i).Interface(), true
	case reflect.Ptr:
		if rx.IsNil() {
			return nil, false
		}
		return subscript(rx.Elem().Interface(), key)
	}
	return nil, false
}

// attribute performs the lookup for Attr/Attrs.
func attribute(x interface{}, name string) (v interface{}, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Debugf("attribute lookup confined: %v", r)
			v, ok = nil, false
		}
	}()
	if x == nil {
		return nil, false
	}
	rx := reflect.ValueOf(x)
	if m := rx.MethodByName(name); m.IsValid() {
		return m.Interface(), true
	}
	for rx.Kind() == reflect.Ptr {
		if rx.IsNil() {
			return nil, false
		}
		rx = rx.Elem()
	}
	if rx.Kind() != reflect.Struct {
		return nil, false
	}
	f := rx.FieldByName(name)
	if !f.IsValid() || !f.CanInterface() {
		return nil, false
	}
	return f.Interface(), true
}

func asIndex(key interface{}) (int, bool) {
	if key == nil {
		return 0, false
	}
	rk := reflect.ValueOf(key)
	switch rk.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rk.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rk.Uint()), true
	}
	return 0, false
}
