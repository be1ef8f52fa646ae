package mode

import "context"

type storeKey struct{}

// WithStore returns a context that provides s to everything derived from it.
func WithStore(ctx context.Context, s *Store) context.Context {
	if s == nil {
		panic(ErrNoStore)
	}
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the store provided by WithStore. It panics with ErrNoStore
// when called outside that scope, since that can only be a wiring mistake.
func FromContext(ctx context.Context) *Store {
	s, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || s == nil {
		panic(ErrNoStore)
	}
	return s
}
