package dispatch

type option struct {
	NoCache bool
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*option)

// NoCache disables the resolution cache; every call then redoes the full
// applicability and specificity computation. Mostly useful in tests.
func NoCache() Option {
	return func(o *option) {
		o.NoCache = true
	}
}

// New creates an unregistered Function. Use Registry.Define or the
// package-level Define to make it reachable by name.
func New(name string, opts ...Option) Function {
	f := &function{
		name:     name,
		methods:  &table{},
		resolved: &table{},
		options:  newOption(opts...),
	}
	f.chain = f.dispatch
	return f
}
