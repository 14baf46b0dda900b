package patmat

// Combinators are implemented strictly in terms of Pattern.Match, never by
// inspecting concrete pattern variants. Any user-defined Pattern therefore
// participates in all of them.

// --- Boolean combinators ---------------------------------------------------

// All matches a value which every subpattern matches; each subpattern is
// evaluated for its boolean outcome only and the original value is
// derived. All with no subpatterns matches everything.
func All(patterns ...Pattern) Pattern {
	return Predicate(func(x interface{}) bool {
		for _, p := range patterns {
			if !IsMatch(p, x) {
				return false
			}
		}
		return true
	})
}

// Any matches a value which at least one subpattern matches. Any with no
// subpatterns matches nothing.
func Any(patterns ...Pattern) Pattern {
	return Predicate(func(x interface{}) bool {
		for _, p := range patterns {
			if IsMatch(p, x) {
				return true
			}
		}
		return false
	})
}

// OneOf matches a value which exactly one subpattern matches. Zero
// subpatterns is zero matches, so OneOf() matches nothing.
func OneOf(patterns ...Pattern) Pattern {
	return Predicate(func(x interface{}) bool {
		count := 0
		for _, p := range patterns {
			if IsMatch(p, x) {
				count++
				if count > 1 {
					return false
				}
			}
		}
		return count == 1
	})
}

// --- Structural combinators ------------------------------------------------

// Compose chains patterns right-to-left: the rightmost pattern is applied
// to the value, its derived value is fed to the next pattern, and so on.
// The composite fails as soon as any stage fails. Compose with no
// subpatterns is the identity pattern.
func Compose(patterns ...Pattern) Pattern {
	return PatternFunc(func(x interface{}) (interface{}, bool) {
		m := x
		for i := len(patterns) - 1; i >= 0; i-- {
			var ok bool
			if m, ok = patterns[i].Match(m); !ok {
				return nil, false
			}
		}
		return m, true
	})
}

// Many applies every pattern independently to the same value, deriving the
// list of their individual results; it fails if any subpattern fails.
func Many(patterns ...Pattern) Pattern {
	return PatternFunc(func(x interface{}) (interface{}, bool) {
		values := make([]interface{}, len(patterns))
		for i, p := range patterns {
			v, ok := p.Match(x)
			if !ok {
				return nil, false
			}
			values[i] = v
		}
		return values, true
	})
}

// AsPredicate gates on whether p matches, but derives the original value,
// discarding p's derived value.
func AsPredicate(p Pattern) Pattern {
	return Predicate(func(x interface{}) bool {
		return IsMatch(p, x)
	})
}

// WithMatch pairs a raw input value with the submatch derived from it.
type WithMatch struct {
	Value interface{}
	Match interface{}
}

// With matches whatever p matches, deriving a WithMatch pair holding both
// the original value and p's derived value.
func With(p Pattern) Pattern {
	return PatternFunc(func(x interface{}) (interface{}, bool) {
		m, ok := p.Match(x)
		if !ok {
			return nil, false
		}
		return WithMatch{Value: x, Match: m}, true
	})
}
