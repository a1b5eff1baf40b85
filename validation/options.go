package validation

// Option configures the behavior of a Validate call.
type Option func(o *Options)

// Options holds the configuration built from a set of Option funcs.
type Options struct {
	ContextObjects []any
}

// NewOptions creates a new Options from the provided Option funcs.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithContextObject makes the provided object available to nested Validate
// calls, allowing child objects to validate against their enclosing document.
func WithContextObject[T any](obj *T) Option {
	return func(o *Options) {
		o.ContextObjects = append(o.ContextObjects, obj)
	}
}

// GetContextObject returns the first context object of the requested type, or nil.
func GetContextObject[T any](o *Options) *T {
	for _, obj := range o.ContextObjects {
		if t, ok := obj.(*T); ok {
			return t
		}
	}
	return nil
}
