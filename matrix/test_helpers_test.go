// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for storage/kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chunkmul/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*RangeDense) Multiply path.
type hide struct{ matrix.Matrix }

// mustFromRows builds a full matrix from literal rows or fails the test.
func mustFromRows(t testing.TB, rows [][]float32) *matrix.RangeDense {
	t.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := matrix.NewFull(len(rows), cols)
	if err != nil {
		t.Fatalf("NewFull(%d,%d): %v", len(rows), cols, err)
	}
	for i, row := range rows {
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// mustSlice copies the rows rr of a full matrix into a new row-range matrix,
// the way a worker would hold its chunk.
func mustSlice(t testing.TB, full *matrix.RangeDense, rr matrix.RowRange) *matrix.RangeDense {
	t.Helper()
	m, err := matrix.NewRangeDense(full.Rows(), full.Cols(), rr)
	if err != nil {
		t.Fatalf("NewRangeDense(%s): %v", rr, err)
	}
	for i := rr.Start; i < rr.End; i++ {
		src, err := full.Row(i)
		if err != nil {
			t.Fatalf("Row(%d): %v", i, err)
		}
		dst, _ := m.Row(i)
		copy(dst, src)
	}

	return m
}

// randomFull returns an r×c full matrix with values in [-1, 1) from a fixed seed.
func randomFull(t testing.TB, r, c int, seed int64) *matrix.RangeDense {
	t.Helper()
	m, err := matrix.NewFull(r, c)
	if err != nil {
		t.Fatalf("NewFull(%d,%d): %v", r, c, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		row, _ := m.Row(i)
		for j := range row {
			row[j] = rng.Float32()*2 - 1
		}
	}

	return m
}

// ownedRows flattens the owned rows of m into [][]float32 for comparisons.
func ownedRows(m *matrix.RangeDense) [][]float32 {
	out := make([][]float32, 0, m.OwnedRows())
	rr := m.Range()
	for i := rr.Start; i < rr.End; i++ {
		row, _ := m.Row(i)
		out = append(out, append([]float32(nil), row...))
	}

	return out
}
