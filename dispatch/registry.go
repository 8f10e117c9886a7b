package dispatch

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// A Registry maps operation names to generic functions, so that packages
// extending an operation can reach it without importing its definer.
type Registry struct {
	functions sync.Map
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Define creates a Function and adds it to the registry.
func (r *Registry) Define(name string, opts ...Option) (Function, error) {
	fn := New(name, opts...)
	if _, loaded := r.functions.LoadOrStore(name, fn); loaded {
		return nil, ErrFunctionDefined
	}
	return fn, nil
}

// Lookup returns the Function defined under name.
func (r *Registry) Lookup(name string) (Function, bool) {
	value, ok := r.functions.Load(name)
	if !ok {
		return nil, false
	}
	return value.(Function), true
}

// Functions returns the defined names, sorted.
func (r *Registry) Functions() []string {
	var names []string
	r.functions.Range(func(key, _ any) bool {
		names = append(names, key.(string))
		return true
	})
	slices.Sort(names)
	return names
}

var globalRegistry *Registry
var globalRegistryMutex sync.RWMutex

func SetRegistry(new *Registry) *Registry {
	globalRegistryMutex.Lock()
	defer globalRegistryMutex.Unlock()
	old := globalRegistry
	globalRegistry = new
	return old
}

func GetRegistry() *Registry {
	globalRegistryMutex.RLock()
	defer globalRegistryMutex.RUnlock()
	return globalRegistry
}

func init() {
	globalRegistry = NewRegistry()
}

// Define creates a Function in the global registry. It panics on a
// duplicate name: package-level functions are created in var initializers,
// which have no error path, and a duplicate there is a programming error.
func Define(name string, opts ...Option) Function {
	fn, err := GetRegistry().Define(name, opts...)
	if err != nil {
		panic(fmt.Sprintf("dispatch: function %q already defined", name))
	}
	return fn
}

// Lookup returns the Function defined under name in the global registry.
func Lookup(name string) (Function, bool) {
	return GetRegistry().Lookup(name)
}
