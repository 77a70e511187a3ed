package geom

import "errors"

// Sentinel errors for the geom package. Callers branch with errors.Is;
// messages are never stringified parameters (wrap with %w for context).
var (
	// ErrNonFinite indicates a coordinate is NaN or infinite.
	ErrNonFinite = errors.New("geom: coordinate is not finite")

	// ErrDegenerate indicates a circumcenter was requested for a collinear
	// (or ε-collinear) triple of sites.
	ErrDegenerate = errors.New("geom: collinear triple has no circumcenter")
)
