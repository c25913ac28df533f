// Package optfn provides a tiny generic functional-option mechanism,
// adapted from the teacher's internal/options package
// (github.com/arloliu/mebo/internal/options), which defines
// Option[T]/Func[T]/Apply for configuring any target type T.
//
// The teacher's version lets an option fail (its apply returns error)
// because mebo's options validate enum-like choices (encoding type,
// compression type). Every BONJSON flag is a plain bool or int with no
// invalid values, so this adaptation drops the error path entirely —
// keeping the same "generic Option[T] + Apply" shape but simplified to
// match what config.DecodeFlags/config.EncodeFlags actually need.
package optfn

// Option configures a value of type T in place.
type Option[T any] interface {
	apply(T)
}

type fn[T any] struct {
	do func(T)
}

func (f *fn[T]) apply(target T) {
	f.do(target)
}

// New creates an Option from a plain configuration function.
func New[T any](do func(T)) Option[T] {
	return &fn[T]{do: do}
}

// Apply runs every option against target, in order.
func Apply[T any](target T, opts ...Option[T]) {
	for _, opt := range opts {
		opt.apply(target)
	}
}
