// SPDX-License-Identifier: MIT

// Package matrix - row-range Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer that physically stores only the rows [start,end)
//     of a logically rows×cols matrix, while callers keep using GLOBAL row indices.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Offset formula: (row-start)*cols + col. A full matrix is simply start=0, end=rows.
//   - Prefer fast-paths on *RangeDense in hot loops (see impl_linear_algebra.go): operate on data directly.
//   - Use Row(r) for a no-copy slice of one owned row.
//
// Complexity quicksheet:
//   - NewRangeDense: O((end-start)*cols) zero-init; At/Set/Row: O(1); Clone: O(owned*cols).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
	ctxNew   = "NewRangeDense"
	ctxAlloc = "alloc"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform RangeDense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("RangeDense.%s(%d,%d): %w", method, row, col, err)
}

// RangeDense is a concrete row-major matrix that stores a contiguous row sub-range.
//   - rows,cols hold the logical dimensions (rows is the declared total).
//   - start,end is the half-open range of global rows physically stored.
//   - data is a flat buffer of length (end-start)*cols in row-major order.
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type RangeDense struct {
	rows, cols     int       // logical dimensions (>= 0)
	start, end     int       // stored global rows [start,end), 0 <= start <= end <= rows
	data           []float32 // contiguous row-major storage of owned rows only
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*RangeDense)(nil)
	_ fmt.Stringer = (*RangeDense)(nil)
)

// NewRangeDense creates a rows×cols matrix that stores only the rows in rr.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape/range validation and the default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows,cols >= 0 and 0 <= rr.Start <= rr.End <= rows.
//   - Stage 2: check the element budget (overflow-safe) and allocate a zero-filled buffer.
//   - Stage 3: apply the numeric policy from options.
//
// Behavior highlights:
//   - Zero-sized shapes and empty ranges are legal (a worker may own no rows).
//   - No panics on user errors; returns sentinel errors.
//
// Inputs:
//   - rows, cols: logical dimensions.
//   - rr: stored global row range.
//   - opts: WithMaxElements, WithNoValidateNaNInf, ...
//
// Returns:
//   - *RangeDense: zero-initialized storage for rr.
//
// Errors:
//   - ErrBadShape (wraps ErrInvalidArgument) for invalid dimensions or range.
//   - ErrOutOfMemory when the allocation exceeds the budget or the runtime refuses it.
//
// Complexity:
//   - Time O(rr.Len()*cols), Space O(rr.Len()*cols).
func NewRangeDense(rows, cols int, rr RowRange, opts ...Option) (*RangeDense, error) {
	if rows < 0 || cols < 0 || !rr.Within(rows) {
		return nil, fmt.Errorf("%s(%d,%d,%s): %w", ctxNew, rows, cols, rr, ErrBadShape)
	}
	o := gatherOptions(opts...)

	buf, err := allocFloat32(rr.Len(), cols, o.maxElements)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d,%s): %w", ctxNew, rows, cols, rr, err)
	}

	return &RangeDense{
		rows:           rows,
		cols:           cols,
		start:          rr.Start,
		end:            rr.End,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewFull creates a rows×cols matrix storing every row (range [0, rows)).
func NewFull(rows, cols int, opts ...Option) (*RangeDense, error) {
	return NewRangeDense(rows, cols, FullRange(rows), opts...)
}

// allocFloat32 allocates n*cols zeroed cells or reports ErrOutOfMemory.
// The product is checked against limit before multiplying so it cannot overflow.
// A runtime allocation panic (makeslice) is converted into ErrOutOfMemory.
func allocFloat32(n, cols, limit int) (buf []float32, err error) {
	if cols != 0 && n > limit/cols {
		return nil, fmt.Errorf("%s: %d×%d cells exceed limit %d: %w", ctxAlloc, n, cols, limit, ErrOutOfMemory)
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%s: %v: %w", ctxAlloc, r, ErrOutOfMemory)
		}
	}()

	return make([]float32, n*cols), nil
}

// Rows returns the logical (declared) row count.
// Complexity: O(1).
func (m *RangeDense) Rows() int { return m.rows }

// Cols returns the column count.
// Complexity: O(1).
func (m *RangeDense) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *RangeDense) Shape() (rows, cols int) { return m.rows, m.cols }

// Range returns the stored half-open row range.
func (m *RangeDense) Range() RowRange { return RowRange{Start: m.start, End: m.end} }

// OwnedRows returns end-start, the number of physically stored rows.
func (m *RangeDense) OwnedRows() int { return m.end - m.start }

// IsFull reports whether every logical row is stored.
func (m *RangeDense) IsFull() bool { return m.start == 0 && m.end == m.rows }

// indexOf maps a global (row, col) to a flat offset or returns a sentinel.
// MAIN DESCRIPTION:
//   - Bounds-check against the OWNED range and compute (row-start)*cols + col.
//
// Errors:
//   - ErrRowNotOwned when row ∉ [start,end); ErrOutOfRange when col ∉ [0,cols).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *RangeDense) indexOf(row, col int) (int, error) {
	if row < m.start || row >= m.end {
		return 0, ErrRowNotOwned
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	return (row-m.start)*m.cols + col, nil
}

// At returns the value at global (row, col).
// Never panics; rows outside the stored range fail with ErrRowNotOwned.
// Complexity: O(1).
func (m *RangeDense) At(row, col int) (float32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at global (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (ownership + column check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrRowNotOwned / ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *RangeDense) Set(row, col int, v float32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite32(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns the owned row as a slice sharing the matrix storage.
// Writes through the slice bypass the numeric policy.
func (m *RangeDense) Row(row int) ([]float32, error) {
	if row < m.start || row >= m.end {
		return nil, denseErrorf(ctxRow, row, 0, ErrRowNotOwned)
	}
	base := (row - m.start) * m.cols

	return m.data[base : base+m.cols : base+m.cols], nil
}

// Clone returns a deep copy (new buffer, same range and numeric policy).
// Complexity: O(owned*cols).
func (m *RangeDense) Clone() *RangeDense {
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &RangeDense{
		rows:           m.rows,
		cols:           m.cols,
		start:          m.start,
		end:            m.end,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Do visits each owned element in ascending global row order, then column
// order, and calls f(row, col, v). It stops early when f returns false.
func (m *RangeDense) Do(f func(row, col int, v float32) bool) {
	var i, j, base int
	for i = m.start; i < m.end; i++ {
		base = (i - m.start) * m.cols
		for j = 0; j < m.cols; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String dumps the owned rows for diagnostics, one "[a, b, ...]" line per row.
// Not for hot paths; the matrixio writer owns the user-facing format.
func (m *RangeDense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.end-m.start; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			b.WriteString(strconv.FormatFloat(float64(m.data[base+j]), 'g', -1, 32))
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// isNonFinite32 reports NaN or ±Inf for a float32 value.
func isNonFinite32(v float32) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}
