// SPDX-License-Identifier: MIT

// Package norm computes the induced norms of compositions, one value per row.
//
//	Aitchison(X)  ‖clr(x)‖₂
//	L1CLR(X)      ‖clr(x)‖₁
//	L1CoDa(X)     ‖mlr(x)‖₁
//	LinfCoDa(X)   ‖mrlr(x)‖∞
//	L1PLR(X)      Σ_{i<j} |log(x_i/x_j)| / (D−1)
//	LpCoDa(X)     min_λ ‖clr(x) + λ·1‖_p, p from codatools.WithP (default 2)
//
// All norms are non-negative, scale invariant, and zero exactly on rows with
// equal parts. LpCoDa solves a bounded one-dimensional convex problem per row
// with Brent's method; every other norm is a closed form on top of package
// transform. Per-row work honors codatools.WithWorkers.
//
// Of resolves a Type name ("Ait", "L1clr", ...) to its function.
package norm
