package multimethod

import (
	"fmt"
	"sort"
	"sync"

	"github.com/npillmayer/patmat"
)

// --- Types -----------------------------------------------------------------

// Method is the implementation registered for one spec tuple. It receives
// the transformed positional and keyword arguments of a matching call.
// Whatever a Method returns or panics with is the method's own business
// and passes through the engine unchanged.
type Method func(args []interface{}, kwargs map[string]interface{}) interface{}

// Constructor turns a spec token into a Pattern. The registry imposes no
// constraint on token shape; interpretation belongs entirely to the
// constructor. A Constructor returning nil for a token makes every entry
// using that token a non-match.
type Constructor func(spec interface{}) patmat.Pattern

// Dispatcher computes a Constructor from the actual arguments of one call.
// It is invoked once per call, which allows dispatch rules that themselves
// depend on runtime call shape. A Dispatcher may return nil, in which case
// the engine falls back to Exactly.
type Dispatcher func(args []interface{}, kwargs map[string]interface{}) Constructor

// Func is a generic function: a registry of methods plus the strategy for
// selecting and combining them per call. Create instances with New; the
// zero value is not usable.
//
// Registration and calls on the same Func may come from different
// goroutines: registration publishes a fresh snapshot of the method list,
// and each call dispatches over the snapshot current at its start.
type Func struct {
	name        string
	constructor Constructor
	dispatcher  Dispatcher
	combiner    Combiner

	mu      sync.RWMutex
	entries []entry        // methods in first-registration order
	slots   map[string]int // dispatch key → position in entries
}

type entry struct {
	key     string
	specs   []interface{}
	kwspecs map[string]interface{}
	impl    Method
}

// New creates a generic function. The name serves diagnostics only. With
// no options, spec tokens are interpreted by Exactly and candidates are
// combined with ApplyFirst.
//
//	say := multimethod.New("say",
//		multimethod.WithConstructor(multimethod.OnKey("type")),
//		multimethod.WithCombiner(multimethod.ApplyAll))
//
func New(name string, opts ...Option) *Func {
	f := &Func{
		name:     name,
		combiner: ApplyFirst,
		slots:    make(map[string]int),
	}
	for _, option := range opts {
		f = option(f)
	}
	return f
}

// Option is a type to help initializing generic functions at creation time.
type Option func(*Func) *Func

// WithConstructor fixes a static pattern constructor for the function's
// lifetime. It takes precedence over a Dispatcher.
func WithConstructor(c Constructor) Option {
	return func(f *Func) *Func {
		f.constructor = c
		return f
	}
}

// WithDispatcher installs a per-call constructor source; the engine
// invokes it once per call with the call's actual arguments.
func WithDispatcher(d Dispatcher) Option {
	return func(f *Func) *Func {
		f.dispatcher = d
		return f
	}
}

// WithCombiner selects the method-combining strategy; the default is
// ApplyFirst.
func WithCombiner(c Combiner) Option {
	return func(f *Func) *Func {
		f.combiner = c
		return f
	}
}

// --- Registration and lookup -----------------------------------------------

// Register adds an implementation for a tuple of positional spec tokens
// and a set of keyword spec tokens. Registering under a dispatch key
// identical to an existing one replaces that implementation in place:
// insertion order is a property of the key, so overriding a method never
// changes its dispatch priority.
func (f *Func) Register(specs []interface{}, kwspecs map[string]interface{}, impl Method) {
	key := dispatchKey(specs, kwspecs)
	f.mu.Lock()
	defer f.mu.Unlock()
	if at, ok := f.slots[key]; ok {
		entries := make([]entry, len(f.entries))
		copy(entries, f.entries)
		entries[at].impl = impl
		f.entries = entries // dispatchers keep reading the old snapshot
		tracer().Debugf("%s: method %q replaced in slot %d", f.name, key, at)
		return
	}
	entries := make([]entry, len(f.entries), len(f.entries)+1)
	copy(entries, f.entries)
	entries = append(entries, entry{key: key, specs: specs, kwspecs: kwspecs, impl: impl})
	f.slots[key] = len(entries) - 1
	f.entries = entries
	tracer().Debugf("%s: method %q registered in slot %d", f.name, key, len(entries)-1)
}

// Lookup retrieves the implementation registered under the exact spec
// tuple, if any. This is an introspection aid, not part of the call path.
func (f *Func) Lookup(specs []interface{}, kwspecs map[string]interface{}) (Method, bool) {
	key := dispatchKey(specs, kwspecs)
	f.mu.RLock()
	defer f.mu.RUnlock()
	if at, ok := f.slots[key]; ok {
		return f.entries[at].impl, true
	}
	return nil, false
}

// Name returns the function's diagnostic name.
func (f *Func) Name() string {
	return f.name
}

// Len returns the number of registered methods.
func (f *Func) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}

// Keys returns the dispatch keys of all registered methods, in dispatch
// order.
func (f *Func) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	keys := make([]string, len(f.entries))
	for i, e := range f.entries {
		keys[i] = e.key
	}
	return keys
}

// --- Dispatch key ----------------------------------------------------------

// dispatchKey derives the canonical registry key for a spec tuple: the
// positional tokens in order, plus the keyword pairs sorted by name.
// Token equality is equality of the tokens' textual representation, type
// plus value.
func dispatchKey(specs []interface{}, kwspecs map[string]interface{}) string {
	key := ""
	for i, spec := range specs {
		if i > 0 {
			key += "\x1f"
		}
		key += tokenRepr(spec)
	}
	for _, name := range sortedNames(kwspecs) {
		key += fmt.Sprintf("\x1e%s=%s", name, tokenRepr(kwspecs[name]))
	}
	return key
}

func tokenRepr(spec interface{}) string {
	return fmt.Sprintf("%T(%v)", spec, spec)
}

func sortedNames(kwspecs map[string]interface{}) []string {
	names := make([]string, 0, len(kwspecs))
	for name := range kwspecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
