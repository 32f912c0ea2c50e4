package routetable

import "github.com/datatrails/go-datatrails-common/logger"

// DefaultWorkers bounds concurrent path builds when WithWorkers is not given.
const DefaultWorkers = 8

type Options struct {
	Workers int
	Log     logger.Logger
}

// Option is a generic option type. Implementations type assert to their
// options record and ignore options meant for something else.
type Option func(any)

// WithWorkers limits how many paths are built at once. Values below 1 are
// ignored.
func WithWorkers(n int) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok && n > 0 {
			o.Workers = n
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}
