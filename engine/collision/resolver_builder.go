package collision

import "log/slog"

// ResolverOption is a functional option for configuring a Resolver.
type ResolverOption func(*resolverImpl)

// WithObstacles sets the static obstacle set. The slice is copied.
//
// Parameters:
//   - obstacles: furniture footprints
//
// Returns:
//   - ResolverOption: functional option to set the obstacles
func WithObstacles(obstacles ...Obstacle) ResolverOption {
	return func(r *resolverImpl) {
		r.obstacles = append([]Obstacle(nil), obstacles...)
	}
}

// WithPadding sets the margin added around every footprint.
//
// Parameters:
//   - padding: margin in world units
//
// Returns:
//   - ResolverOption: functional option to set the padding
func WithPadding(padding float32) ResolverOption {
	return func(r *resolverImpl) {
		r.padding = padding
	}
}

// WithLogger sets the logger used for degenerate-input diagnostics.
//
// Parameters:
//   - logger: structured logger
//
// Returns:
//   - ResolverOption: functional option to set the logger
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *resolverImpl) {
		r.logger = logger
	}
}
