package dispatch

// Invoker is the callable core of a Function.
type Invoker func(args ...any) (any, error)

// Middleware wraps an Invoker. A middleware runs before the implementation
// lookup, so it applies to every variant alike, like an around method.
type Middleware func(next Invoker) Invoker

// Chain wraps invoker with middlewares; the first middleware is the
// outermost.
func Chain(invoker Invoker, middlewares ...Middleware) Invoker {
	for i := len(middlewares) - 1; i >= 0; i-- {
		invoker = middlewares[i](invoker)
	}
	return invoker
}
