package mobject

import "go.uber.org/zap"

// Options configures a Registry.
type Options struct {
	// MaxDepth is the deepest level below the target that a transform
	// reaches. The target itself is depth 0.
	MaxDepth int

	// PointLimit caps the capacity of each point buffer, in points.
	// Zero means unlimited.
	PointLimit int

	// EdgeLimit caps the capacity of each child and parent list.
	// Zero means unlimited.
	EdgeLimit int

	// VisitGuard makes a transform update each mobject at most once,
	// even when it is reachable along several paths.
	VisitGuard bool

	// Logger receives debug and warning events. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the default registry configuration.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// Option modifies Options.
type Option func(*Options)

// WithLogger sets the registry logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// WithMaxDepth sets the propagation depth cap.
func WithMaxDepth(depth int) Option {
	return func(o *Options) { o.MaxDepth = depth }
}

// WithPointLimit caps each mobject's point capacity.
func WithPointLimit(n int) Option {
	return func(o *Options) { o.PointLimit = n }
}

// WithEdgeLimit caps each mobject's child and parent list capacity.
func WithEdgeLimit(n int) Option {
	return func(o *Options) { o.EdgeLimit = n }
}

// WithVisitGuard enables or disables the per-transform visit guard.
func WithVisitGuard(on bool) Option {
	return func(o *Options) { o.VisitGuard = on }
}
