package store

import "context"

type contextKey struct{}

// NewContext attaches the state container to the context. The composition
// root does this once per request via middleware.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the state container attached to the context. Calling
// it outside the container's established scope is a programmer error and
// fails loudly.
func FromContext(ctx context.Context) *Store {
	s, ok := ctx.Value(contextKey{}).(*Store)
	if !ok {
		panic("store: no state container in context; operations are only valid inside the container's scope")
	}
	return s
}
