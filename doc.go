/*
Package patmat implements composable pattern matching over dynamically
typed values.

A pattern inspects a value and either derives a value from it (the value
itself, an extracted field, a transformed value, or a list of values) or
fails. Failure is an ordinary outcome, not an error: every pattern
application returns a (value, ok) pair, so a matched nil stays
distinguishable from a non-match.

	tag := patmat.Compose(patmat.Equal("particle"), patmat.Key("type"))
	if _, ok := tag.Match(map[string]string{"type": "particle"}); ok {
		// …
	}

Patterns compose freely: All, Any and OneOf gate on sub-pattern success,
Compose pipes derived values right-to-left, Many fans one value out to
several patterns. Any type implementing the one-method Pattern interface
participates in every combinator; PatternFunc adapts a plain function.

Sibling package multimethod drives multiple-dispatch generic functions with
these patterns.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package patmat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patmat.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("patmat.pattern")
}
