// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// sample is the 2×3 matrix used across scenarios.
var sample = [][]float64{
	{2, 4, -3},
	{21, -6, -1},
}

// MustMatrix BUILDS a validated Matrix from literal rows or fails the test.
// Implementation:
//   - Stage 1: Call matrix.NewMatrix(rows).
//   - Stage 2: t.Fatalf on error to abort the test early.
func MustMatrix(tb testing.TB, rows [][]float64) matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewMatrix(rows)
	if err != nil {
		tb.Fatalf("NewMatrix(%v): %v", rows, err)
	}

	return m
}

// RandomMatrix FILLS an r×c matrix with uniform values in [-1, 1) from a fixed seed.
// Determinism: same (r, c, seed) ⇒ same matrix.
func RandomMatrix(tb testing.TB, r, c int, seed int64) matrix.Matrix {
	tb.Helper()
	m, err := matrix.Zeros(r, c)
	if err != nil {
		tb.Fatalf("Zeros(%d,%d): %v", r, c, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range m {
		for j := range m[i] {
			m[i][j] = rng.Float64()*2 - 1
		}
	}

	return m
}

// RandomVector RETURNS a length-n vector with uniform values in [-1, 1).
func RandomVector(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}
