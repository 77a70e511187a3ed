// SPDX-License-Identifier: MIT
// Package: tessellate/delaunay
//
// errors.go — sentinel errors for the delaunay package.
//
// Error policy (matches the rest of this module):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - Call sites MAY attach context via fmt.Errorf("%w", ...).
//   - Algorithms never panic on caller data; only BuildOption constructors
//     panic, and only on meaningless option values (see options.go).
package delaunay

import "errors"

var (
	// ErrTooFewSites indicates fewer than two sites were supplied to Build.
	ErrTooFewSites = errors.New("delaunay: need at least two sites")

	// ErrDuplicateSite indicates two input sites share exact coordinates.
	// Duplicates are not supported; callers must deduplicate before Build.
	ErrDuplicateSite = errors.New("delaunay: duplicate site")

	// ErrNonFinite indicates a site coordinate is NaN or infinite.
	ErrNonFinite = errors.New("delaunay: non-finite coordinate")
)
