package multimethod

// The dispatch engine. Per call: resolve the pattern constructor, walk the
// registry snapshot in insertion order, and hand candidates to the
// combiner lazily, so ApplyFirst never evaluates patterns beyond the first
// match.

// Call describes one invocation of a generic function. Combiners receive
// it for diagnostics; NoMethodError carries it to the caller.
type Call struct {
	Name   string
	Args   []interface{}
	Kwargs map[string]interface{}
}

// Candidate is one matching method: its implementation plus the arguments
// to invoke it with, each argument replaced by its pattern's derived
// value. Candidates live for a single call; they are not retained.
type Candidate struct {
	Impl   Method
	Args   []interface{}
	Kwargs map[string]interface{}
}

// Call invokes the generic function on positional arguments only.
func (f *Func) Call(args ...interface{}) (interface{}, error) {
	return f.CallKw(args, nil)
}

// CallKw invokes the generic function on positional and keyword arguments.
// It dispatches over the registry, combines the matching candidates with
// the function's combiner and returns the combined result. If no method
// matches, the error is a *NoMethodError.
func (f *Func) CallKw(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	call := Call{Name: f.name, Args: args, Kwargs: kwargs}
	return f.combiner(call, f.candidates(args, kwargs))
}

// candidates returns a pull-style iterator over the methods matching the
// call, in registry order. Each pull evaluates entries until one matches
// or the registry is exhausted.
func (f *Func) candidates(args []interface{}, kwargs map[string]interface{}) func() (Candidate, bool) {
	f.mu.RLock()
	entries := f.entries // snapshot; Register never mutates a published slice
	f.mu.RUnlock()
	construct := f.resolve(args, kwargs)
	at := 0
	return func() (Candidate, bool) {
		for at < len(entries) {
			e := entries[at]
			at++
			if c, ok := match(construct, e, args, kwargs); ok {
				tracer().Debugf("%s: slot %d matches call", f.name, at-1)
				return c, true
			}
		}
		return Candidate{}, false
	}
}

// resolve picks the pattern constructor for one call: the static one if
// configured, otherwise whatever the dispatcher computes from the actual
// arguments, otherwise Exactly.
func (f *Func) resolve(args []interface{}, kwargs map[string]interface{}) Constructor {
	if f.constructor != nil {
		return f.constructor
	}
	if f.dispatcher != nil {
		if c := f.dispatcher(args, kwargs); c != nil {
			return c
		}
		tracer().Debugf("%s: dispatcher yielded no constructor, using Exactly", f.name)
	}
	return Exactly
}

// match attempts one registry entry against the call's arguments.
//
// Positional policy, deliberately permissive: spec tokens pair with
// arguments by position; surplus trailing arguments pass through
// untransformed, and when the call supplies fewer arguments than the
// entry declares specs, the unmatched trailing specs are not evaluated.
// Keyword specs are strict: a keyword argument missing from the call
// fails the entry.
func match(construct Constructor, e entry, args []interface{}, kwargs map[string]interface{}) (Candidate, bool) {
	targs := make([]interface{}, len(args))
	copy(targs, args)
	n := len(e.specs)
	if len(args) < n {
		n = len(args)
	}
	for i := 0; i < n; i++ {
		p := construct(e.specs[i])
		if p == nil {
			return Candidate{}, false
		}
		v, ok := p.Match(args[i])
		if !ok {
			return Candidate{}, false
		}
		targs[i] = v
	}
	var tkwargs map[string]interface{}
	if len(kwargs) > 0 {
		tkwargs = make(map[string]interface{}, len(kwargs))
		for name, v := range kwargs {
			tkwargs[name] = v
		}
	}
	for name, spec := range e.kwspecs {
		arg, present := kwargs[name]
		if !present {
			return Candidate{}, false
		}
		p := construct(spec)
		if p == nil {
			return Candidate{}, false
		}
		v, ok := p.Match(arg)
		if !ok {
			return Candidate{}, false
		}
		tkwargs[name] = v
	}
	return Candidate{Impl: e.impl, Args: targs, Kwargs: tkwargs}, true
}
