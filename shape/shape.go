// Package shape defines an open set of immutable geometric shape variants.
//
// The set is open along two axes. New variants may be declared by any
// package: a variant is anything implementing Shape, and it joins the
// existing operations by registering implementations against them (see the
// dispatch and ops packages). New operations are added the same way without
// touching this package.
package shape

// Shape is one variant of the open shape set. Variants carry their own
// construction data, validate it eagerly in their constructors and are
// immutable afterwards, so values and sub-shapes can be shared freely
// across goroutines and across composite parents.
type Shape interface {
	// Kind returns the variant tag, e.g. "square". Tags key the JSON
	// codec registry and identify variants in error messages.
	Kind() string

	String() string
}
