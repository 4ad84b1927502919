package factory

import (
	"context"
	"reflect"

	"github.com/go-leo/typefactory/logger"
)

// Invoker creates a product.
type Invoker func(ctx context.Context, product reflect.Type) (any, error)

// Middleware wraps an Invoker.
type Middleware func(ctx context.Context, product reflect.Type, invoker Invoker) (any, error)

// Chain composes middlewares into one, the first being the outermost. It returns nil when no
// middleware is given.
func Chain(middlewares ...Middleware) Middleware {
	switch len(middlewares) {
	case 0:
		return nil
	case 1:
		return middlewares[0]
	default:
		return func(ctx context.Context, product reflect.Type, invoker Invoker) (any, error) {
			return middlewares[0](ctx, product, getInvoker(middlewares, 0, invoker))
		}
	}
}

func getInvoker(middlewares []Middleware, curr int, finalInvoker Invoker) Invoker {
	if curr == len(middlewares)-1 {
		return finalInvoker
	}
	return func(ctx context.Context, product reflect.Type) (any, error) {
		return middlewares[curr+1](ctx, product, getInvoker(middlewares, curr+1, finalInvoker))
	}
}

// LoggingMiddleware logs every creation at debug level and failures at error level.
func LoggingMiddleware(l logger.Logger) Middleware {
	return func(ctx context.Context, product reflect.Type, invoker Invoker) (any, error) {
		v, err := invoker(ctx, product)
		if err != nil {
			l.Errorf("create %v: %v", product, err)
			return nil, err
		}
		l.Debugw("product created", map[string]any{
			"product":  product.String(),
			"concrete": reflect.TypeOf(v).String(),
		})
		return v, nil
	}
}
