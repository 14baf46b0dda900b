package patmat

// --- Pattern ---------------------------------------------------------------

// Pattern is the matching primitive: it consumes a candidate value and
// either produces a derived value or fails. Implementations must be pure:
// repeated application to the same value yields the same outcome, and a
// failed lookup must surface as ok=false, never as a panic.
type Pattern interface {
	Match(x interface{}) (interface{}, bool)
}

// PatternFunc adapts a plain function to the Pattern interface.
type PatternFunc func(x interface{}) (interface{}, bool)

// Match calls f(x).
func (f PatternFunc) Match(x interface{}) (interface{}, bool) {
	return f(x)
}

// IsMatch evaluates a pattern for its boolean outcome only.
func IsMatch(p Pattern, x interface{}) bool {
	_, ok := p.Match(x)
	return ok
}

// Ignore is the wildcard: it matches every value and derives the void
// marker (nil).
var Ignore Pattern = PatternFunc(func(interface{}) (interface{}, bool) {
	return nil, true
})

// --- Function helpers ------------------------------------------------------

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// ComposeFn returns h = f . g
func ComposeFn[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
