// SPDX-License-Identifier: MIT

// Package codatools is a coordinate-transformation and metric engine for
// Compositional Data Analysis (CoDa).
//
// 🚀 What is compositional data?
//
//	Rows of strictly positive parts of a whole (proportions, concentrations,
//	mineral shares, budget splits). Only the ratios between parts carry
//	information, so the meaningful geometry is log-ratio based, not Euclidean.
//
// ✨ What lives here:
//   - Log-ratio coordinates: clr, alr, olr, nalr, mlr, mrlr (+ inverses, plr)
//   - Basis construction: pairwise contrasts, pivot bases, SBP bases
//   - Induced norms: Aitchison, L1clr, L1CoDa, L∞CoDa, L1plr, LpCoDa
//   - Distances: paired or all-to-all, over any of the norms above
//   - Pairwise recovery: composition from pairwise log-ratios (pseudoinverse)
//
// Under the hood, everything is organized under subpackages:
//
//	matrix/    — row-major Dense, kernels, gonum-backed pseudoinverse
//	validate/  — composition / closure / clr checks with per-row masks
//	basis/     — pairwise, pivot and SBP bases; SBP validation
//	transform/ — log-ratio coordinate systems and their inverses
//	norm/      — induced norms, including the Lp minimization
//	distance/  — ratio-based distances with paired/all-to-all dispatch
//	pairwise/  — least-squares recovery from pairwise log-ratios
//	labeled/   — go-gg named tables around the raw-array core
//
// This root package holds the shared error taxonomy and functional options.
//
//	go get github.com/jsuyu/CoDaTools
package codatools
