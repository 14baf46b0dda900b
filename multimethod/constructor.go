package multimethod

import (
	"reflect"

	"github.com/npillmayer/patmat"
)

// Canned pattern constructors covering the common dispatch styles. Every
// constructor lets tokens that already are Patterns pass through, so a
// registry may freely mix literal tokens with hand-built patterns.

// Exactly is the identity constructor and the engine's fallback when a
// dispatcher yields no constructor: a Pattern token is used as-is, any
// other token t gates on Equal(t).
func Exactly(spec interface{}) patmat.Pattern {
	if p, ok := spec.(patmat.Pattern); ok {
		return p
	}
	return patmat.Equal(spec)
}

// OnType dispatches on the arguments' runtime types. A token may be a
// reflect.Type or a sample value standing in for its type:
//
//	add.Register([]interface{}{reflect.TypeOf(0), reflect.TypeOf("")}, nil, impl)
//
func OnType(spec interface{}) patmat.Pattern {
	switch t := spec.(type) {
	case patmat.Pattern:
		return t
	case reflect.Type:
		return patmat.Type(t)
	default:
		return patmat.Type(reflect.TypeOf(spec))
	}
}

// OnKey builds a constructor dispatching on the value stored under a fixed
// key of each argument: a token v gates on Compose(Equal(v), Key(key)), so
// an argument matches when subscripting it by key yields v. The gate is
// wrapped in AsPredicate, handing the method the original argument rather
// than the extracted key value.
//
//	say := multimethod.New("say", multimethod.WithConstructor(multimethod.OnKey("type")))
//	say.Register([]interface{}{"person", "robot"}, nil, impl)
//
func OnKey(key interface{}) Constructor {
	return func(spec interface{}) patmat.Pattern {
		if p, ok := spec.(patmat.Pattern); ok {
			return p
		}
		return patmat.AsPredicate(patmat.Compose(patmat.Equal(spec), patmat.Key(key)))
	}
}
