package gridpoly

// Option configures a call to Process (and its Area/IntersectionArea/
// ComputeMoments shortcuts, and ToLines), following the teacher's
// functional-options pattern.
type Option func(*config)

// config collects the options Process and ToLines honor: Process reads
// gridsize and epsilon, ToLines reads preserveDirection. gridsize has no usable
// zero value by design: WithGridsize is required, and its absence is an
// ErrInvalidInput, not a silent default.
type config struct {
	gridsize          float64
	preserveDirection bool
	epsilon           float64
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithGridsize sets the quantization step every input coordinate is snapped
// to before the sweep runs. Required: Process rejects a non-positive
// gridsize with ErrInvalidInput.
func WithGridsize(gridsize float64) Option {
	return func(c *config) {
		c.gridsize = gridsize
	}
}

// WithPreserveDirection controls how the output polygon's strokes are
// assembled: when true, ToLines emits one sub-path per stroke in its swept
// direction; when false (the default), strokes sharing an endpoint are
// stitched head-to-tail to minimize the number of sub-paths.
func WithPreserveDirection(preserve bool) Option {
	return func(c *config) {
		c.preserveDirection = preserve
	}
}

// WithEpsilon sets the tolerance absorbed before quantization: every input
// coordinate is rounded to the nearest multiple of epsilon before it is
// snapped onto the gridsize lattice, so two points that should coincide but
// differ by a low-order floating-point bit quantize to the same grid point
// instead of straddling a gridsize boundary. Reuses the teacher's
// epsilon-tolerance idea (see the options package). A negative epsilon is
// clamped to zero, matching options.WithEpsilon's own behavior.
func WithEpsilon(epsilon float64) Option {
	return func(c *config) {
		if epsilon < 0 {
			epsilon = 0
		}
		c.epsilon = epsilon
	}
}
