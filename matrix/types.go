// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, partitioning and I/O.
// This file intentionally contains ONLY domain-facing types (the element type,
// the RowRange descriptor and the public Matrix interface). Errors and options
// live in dedicated files (errors.go, options.go).
package matrix

import "fmt"

// RowRange is a half-open interval [Start, End) of globally indexed rows.
// It carries no ownership semantics; it is a plain descriptor passed by value.
type RowRange struct {
	Start int // first owned row (inclusive)
	End   int // one past the last owned row (exclusive)
}

// FullRange returns the range [0, rows) covering every row of a matrix.
func FullRange(rows int) RowRange { return RowRange{Start: 0, End: rows} }

// Len returns the number of rows in the range (End - Start).
// Complexity: O(1).
func (r RowRange) Len() int { return r.End - r.Start }

// Contains reports whether the global row index lies inside [Start, End).
// Complexity: O(1).
func (r RowRange) Contains(row int) bool { return row >= r.Start && row < r.End }

// Within reports whether 0 <= Start <= End <= total.
func (r RowRange) Within(total int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= total
}

// String renders the range as "[start,end)".
func (r RowRange) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Matrix is a two-dimensional float32 matrix addressed by GLOBAL row index,
// whose storage may cover only the contiguous row sub-range Range().
//
// Contract:
//   - Rows() is the declared (logical) row count; Range() ⊆ [0, Rows()).
//   - At/Set succeed only for rows inside Range() and 0 <= col < Cols();
//     any other row fails fast with ErrRowNotOwned.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the logical number of rows (declared total).
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Range returns the stored half-open row range.
	Range() RowRange

	// At retrieves the element at (row, col) using a global row index.
	At(row, col int) (float32, error)

	// Set assigns v at (row, col) using a global row index.
	Set(row, col int, v float32) error
}
