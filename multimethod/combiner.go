package multimethod

import (
	"fmt"
)

// --- Dispatch failure ------------------------------------------------------

// NoMethodError is returned by every combiner when no registered method
// matches a call. It carries the generic function's name and the actual
// arguments for diagnostics; retrieve it with errors.As.
type NoMethodError struct {
	Call Call
}

func (e *NoMethodError) Error() string {
	msg := fmt.Sprintf("no applicable method: %s(", e.Call.Name)
	sep := ""
	for _, arg := range e.Call.Args {
		msg += sep + fmt.Sprintf("%v", arg)
		sep = ", "
	}
	for _, name := range sortedNames(e.Call.Kwargs) {
		msg += sep + fmt.Sprintf("%s=%v", name, e.Call.Kwargs[name])
		sep = ", "
	}
	return msg + ")"
}

// --- Combiners -------------------------------------------------------------

// Combiner is the strategy reducing the ordered candidate sequence of one
// call to the call's result. next yields candidates lazily, in registry
// order; a combiner that stops pulling leaves later entries unevaluated.
type Combiner func(call Call, next func() (Candidate, bool)) (interface{}, error)

// ApplyFirst invokes the earliest-registered matching method.
var ApplyFirst Combiner = func(call Call, next func() (Candidate, bool)) (interface{}, error) {
	c, ok := next()
	if !ok {
		return nil, &NoMethodError{Call: call}
	}
	return c.Impl(c.Args, c.Kwargs), nil
}

// ApplyLast invokes the latest-registered matching method.
var ApplyLast Combiner = func(call Call, next func() (Candidate, bool)) (interface{}, error) {
	c, ok := next()
	if !ok {
		return nil, &NoMethodError{Call: call}
	}
	for {
		succ, more := next()
		if !more {
			return c.Impl(c.Args, c.Kwargs), nil
		}
		c = succ
	}
}

// ApplyAll invokes every matching method, in registry order, and returns
// the list of their results.
var ApplyAll Combiner = func(call Call, next func() (Candidate, bool)) (interface{}, error) {
	c, ok := next()
	if !ok {
		return nil, &NoMethodError{Call: call}
	}
	var results []interface{}
	for ; ok; c, ok = next() {
		results = append(results, c.Impl(c.Args, c.Kwargs))
	}
	return results, nil
}

// ApplyReduce invokes every matching method, in registry order, and
// left-folds their results with op, seeding the fold with the first
// result. Like ApplyAll it fails, rather than defaulting, on a call with
// no matching method.
func ApplyReduce(op func(acc, x interface{}) interface{}) Combiner {
	return func(call Call, next func() (Candidate, bool)) (interface{}, error) {
		c, ok := next()
		if !ok {
			return nil, &NoMethodError{Call: call}
		}
		acc := c.Impl(c.Args, c.Kwargs)
		for {
			c, ok = next()
			if !ok {
				return acc, nil
			}
			acc = op(acc, c.Impl(c.Args, c.Kwargs))
		}
	}
}
