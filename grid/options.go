package grid

import "fmt"

// Size bounds enforced by Resize. They match the symbol slider of the
// calculator window.
const (
	DefaultMinSize = 1
	DefaultMaxSize = 20
)

// Option customizes Resize.
type Option func(*options)

type options struct {
	minSize int
	maxSize int
}

// WithBounds sets the inclusive range of group sizes accepted by Resize.
// Panics if min < 0 or max < min.
func WithBounds(min, max int) Option {
	if min < 0 || max < min {
		panic(fmt.Sprintf("grid: WithBounds(%d, %d): need 0 <= min <= max", min, max))
	}

	return func(o *options) { o.minSize, o.maxSize = min, max }
}

func gatherOptions(opts ...Option) options {
	o := options{minSize: DefaultMinSize, maxSize: DefaultMaxSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
