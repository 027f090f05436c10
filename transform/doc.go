// SPDX-License-Identifier: MIT

// Package transform maps compositions to and from log-ratio coordinates.
//
// Forward maps (all validate positivity first and fail fast):
//
//	CLR(X)            log X − rowmean(log X)              n×D
//	MLR(X)            log X − rowmedian(log X)            n×D
//	MRLR(X)           log X − (rowmax + rowmin)/2         n×D
//	ALR(X, denom)     log(x_i / x_denom), i ≠ denom       n×(D−1)
//	OLR(X, Ψ)         CLR(X) · Ψ, Ψ orthonormal           n×(D−1)
//	NALR(X, sets)     nested additive log-ratios          n×(D−1)
//	PLR(X)            log(x_i / x_j) for every pair i<j   n×D(D−1)/2
//
// Inverse maps return closed compositions (rows sum to 1):
//
//	InvCLR(Z), InvALR(Y, denom), InvOLR(Y, Ψ), Closure(X, k)
//
// Every forward map returns Coordinates: the numeric table plus one name per
// column ("clr(x1)", "log(x1/x4)", "olr2", ...). Names come from
// codatools.WithPartNames when given and never influence the numbers.
package transform
