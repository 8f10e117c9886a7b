// Package dispatch implements generic functions: named operations whose
// concrete implementation is selected per call from the runtime types of
// all arguments, CLOS-style, instead of from a single receiver.
//
// Implementations are registered against the tuple of their parameter
// types. Registration is a startup phase and is not safe for concurrent
// use; once it is complete, any number of goroutines may Invoke
// concurrently.
package dispatch

import (
	"reflect"
	"sync"

	"golang.org/x/exp/slices"
)

// Function is a generic function, register implementations and invoke them
// by argument types.
type Function interface {

	// Name returns the operation name the function was created with.
	Name() string

	// Register adds an implementation. impl must be a non-variadic func
	// with at least one parameter and either a single result or a result
	// and an error. Its parameter-type tuple keys the registration; a
	// second implementation with the same tuple is rejected, and all
	// implementations of one function must take the same number of
	// parameters.
	Register(impl any) error

	// RegisterFallback adds the default implementation, consulted only
	// when no registration is applicable to a call.
	RegisterFallback(impl any) error

	// Use appends middleware around dispatch, outermost first. Guards
	// that must run no matter which implementation is selected go here.
	Use(mw ...Middleware)

	// Invoke calls the unique most specific implementation applicable to
	// args. An argument matches a parameter position if its type equals
	// the parameter type or implements a parameter interface.
	Invoke(args ...any) (any, error)
}

var _ Function = (*function)(nil)

type function struct {
	name        string
	mu          sync.Mutex // guards the registration phase
	methods     *table     // exact registrations keyed by parameter tuple
	resolved    *table     // resolution cache keyed by argument tuple
	all         []*method
	fallback    *method
	arity       int // fixed by the first registration
	middlewares []Middleware
	chain       Invoker
	options     *option
}

func (f *function) Name() string {
	return f.name
}

func (f *function) Register(impl any) error {
	m, err := newMethod(impl)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.arity == 0 {
		f.arity = len(m.in)
	} else if len(m.in) != f.arity {
		return ErrSignatureMismatch
	}
	if !f.methods.store(m.in, m) {
		return ErrRegistered
	}
	f.all = append(f.all, m)
	// A later registration may be more specific than an already cached
	// resolution, so the cache starts over.
	f.resolved = &table{}
	return nil
}

func (f *function) RegisterFallback(impl any) error {
	m, err := newMethod(impl)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.arity == 0 {
		f.arity = len(m.in)
	} else if len(m.in) != f.arity {
		return ErrSignatureMismatch
	}
	if f.fallback != nil {
		return ErrRegistered
	}
	f.fallback = m
	f.resolved = &table{}
	return nil
}

func (f *function) Use(mw ...Middleware) {
	f.middlewares = append(f.middlewares, mw...)
	f.chain = Chain(f.dispatch, f.middlewares...)
}

func (f *function) Invoke(args ...any) (any, error) {
	return f.chain(args...)
}

func (f *function) dispatch(args ...any) (any, error) {
	types := make([]reflect.Type, len(args))
	for i, arg := range args {
		if arg == nil {
			return nil, ErrArgNil
		}
		types[i] = reflect.TypeOf(arg)
	}
	if len(args) == 0 || len(args) != f.arity {
		return nil, NoApplicableError{Function: f.name, Types: types}
	}
	if m, ok := f.methods.lookup(types); ok {
		return m.call(args)
	}
	if !f.options.NoCache {
		if m, ok := f.resolved.lookup(types); ok {
			return m.call(args)
		}
	}
	m, err := f.resolve(types)
	if err != nil {
		return nil, err
	}
	if !f.options.NoCache {
		f.resolved.store(types, m)
	}
	return m.call(args)
}

// resolve picks the unique most specific implementation applicable to the
// argument types. The fallback only applies when nothing else does.
func (f *function) resolve(types []reflect.Type) (*method, error) {
	var applicable []*method
	for _, m := range f.all {
		if m.applicable(types) {
			applicable = append(applicable, m)
		}
	}
	if len(applicable) == 0 {
		if f.fallback != nil && f.fallback.applicable(types) {
			return f.fallback, nil
		}
		return nil, NoApplicableError{Function: f.name, Types: types}
	}
	if len(applicable) == 1 {
		return applicable[0], nil
	}
	minimal := make([]*method, 0, len(applicable))
	for _, m := range applicable {
		dominated := false
		for _, o := range applicable {
			if o != m && o.moreSpecific(m) {
				dominated = true
				break
			}
		}
		if !dominated {
			minimal = append(minimal, m)
		}
	}
	if len(minimal) == 1 {
		return minimal[0], nil
	}
	candidates := make([]string, 0, len(minimal))
	for _, m := range minimal {
		candidates = append(candidates, m.signature())
	}
	slices.Sort(candidates)
	return nil, AmbiguousError{Function: f.name, Types: types, Candidates: candidates}
}

// table is one level of a tuple trie: it maps the type at one argument
// position to the next level, or at the last position to a *method.
type table struct {
	entries sync.Map
}

func (t *table) lookup(types []reflect.Type) (*method, bool) {
	value, ok := t.entries.Load(types[0])
	if !ok {
		return nil, false
	}
	if len(types) == 1 {
		return value.(*method), true
	}
	return value.(*table).lookup(types[1:])
}

// store returns false if a method is already stored under types.
func (t *table) store(types []reflect.Type, m *method) bool {
	if len(types) == 1 {
		_, loaded := t.entries.LoadOrStore(types[0], m)
		return !loaded
	}
	next, _ := t.entries.LoadOrStore(types[0], &table{})
	return next.(*table).store(types[1:], m)
}
