/*
Package multimethod implements generic functions with multiple dispatch.

A generic function owns an ordered registry of methods. Each method is
registered under a tuple of spec tokens, one per argument position (plus
optional keyword specs). At call time a pattern constructor turns each spec
token into a patmat.Pattern, the registry is walked in insertion order, and
every entry whose patterns all match the actual arguments becomes a
candidate. A method combiner then reduces the candidate sequence to the
call's result: the first match, the last, all of them, or a fold.

	add := multimethod.New("add", multimethod.WithConstructor(multimethod.OnType))
	add.Register([]interface{}{reflect.TypeOf(0), reflect.TypeOf(0)}, nil,
		func(args []interface{}, _ map[string]interface{}) interface{} {
			return args[0].(int) + args[1].(int)
		})
	sum, err := add.Call(1, 2)   // 3, nil

Arguments handed to an implementation are the derived values of the
matching patterns, so a spec may extract or transform as well as test.

A call with no matching method returns a *NoMethodError. A non-match of a
single entry is not an error at all, just a skipped candidate.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package multimethod

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patmat.dispatch'.
func tracer() tracing.Trace {
	return tracing.Select("patmat.dispatch")
}
