package factory

import "github.com/go-leo/typefactory/logger"

type options struct {
	Logger      logger.Logger
	Middlewares []Middleware
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = logger.NopLogger{}
	}
	return o
}

type Option func(*options)

// Logger sets the logger used while resolving specialisation chains.
func Logger(l logger.Logger) Option {
	return func(o *options) {
		o.Logger = l
	}
}

// Middlewares appends middlewares wrapping every Create of concrete factories.
// The first middleware is the outermost.
func Middlewares(middlewares ...Middleware) Option {
	return func(o *options) {
		o.Middlewares = append(o.Middlewares, middlewares...)
	}
}
