// Package polytope generates discretized perturbation grids inside
// axis-aligned parameter boxes: feed it candidate parameter vectors,
// get back every feasible (parameter, delta) pair on a regular grid.
//
// 🚀 What is polytope?
//
//	A small, pure-Go library that brings together:
//		• Dense primitives: a row-major float64 matrix with per-row envelopes
//		• Feasible intervals: per-dimension delta ranges that keep every
//		  perturbed vector inside the global parameter envelope
//		• Inclusive discretization: fixed-step grids that always contain
//		  both interval boundaries exactly
//		• Cartesian enumeration: the full product of per-dimension grids,
//		  materialized or streamed
//
// ✨ Why choose polytope?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – no randomness, no global state, identical inputs
//     always produce identical output in identical order
//   - Pure Go – no cgo, no hidden machinery
//   - Scalable – a streaming Walk visitor bounds memory when the
//     Cartesian product is large
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — dense float64 matrix, row envelopes, gonum interop
//	grid/   — feasible intervals, discretization, Cartesian sampling
//
// Quick ASCII example:
//
//	    pMax ┬────────────┐
//	         │  ·  ·  ·   │      each · is one grid sample:
//	         │  ·  p+δ ·  │      p stays a column of the input,
//	         │  ·  ·  ·   │      δ walks the discretized box
//	    pMin ┴────────────┘
//
// Dive into the package docs (grid/doc.go, matrix/doc.go) for full
// examples and complexity notes.
//
//	go get github.com/katalvlaran/polytope/grid
package polytope
