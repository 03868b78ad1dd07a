package gridpoly

import "errors"

// ErrInvalidInput is returned when a caller-supplied polygon, option, or
// configuration value is structurally wrong: a non-positive gridsize, a
// command sequence with a LineTo before any MoveTo, and similar. Process
// never panics for these; it always returns the error.
var ErrInvalidInput = errors.New("gridpoly: invalid input")

// ErrNumericDegenerate is returned when otherwise valid input collapses
// under quantization or floating-point evaluation into something the sweep
// cannot represent: every command emitting a zero-length segment, a spline
// whose control point and endpoints are coincident at the working
// gridsize, and so on. Distinct from ErrInvalidInput because the caller's
// input was sound; the configured precision was not enough to carry it.
var ErrNumericDegenerate = errors.New("gridpoly: numerically degenerate input")

// ErrInternal wraps an invariant violation inside the sweep driver: the
// active list non-empty at the end of a sweep, a condition that should be
// impossible for well-formed input. (A crossing event whose segments are no
// longer neighbors is dropped as stale, not reported.) Following the teacher's own style of
// panicking on invariant violations and recovering at the package
// boundary, internal code panics with an error wrapping ErrInternal;
// Process recovers that panic and returns it as a plain error, so a
// violated invariant never crosses the package boundary as a panic.
var ErrInternal = errors.New("gridpoly: internal invariant violation")
