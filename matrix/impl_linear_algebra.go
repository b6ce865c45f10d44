// SPDX-License-Identifier: MIT
// Package matrix provides the row-range multiplication kernel.
//
// Purpose:
//   - Compute the slice of C = A × B owned by A's row range, where B is a full matrix.
//   - Perform strict fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Accumulation is float32 with k ascending for every output cell; both the
//     *RangeDense fast path and the generic fallback follow that order exactly.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMultiply = "Multiply"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Multiply computes the rows of left × right that left owns.
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, right full, left.Cols == right.Rows).
//   - Stage 2: allocate a result over left.Range() with shape left.Rows × right.Cols.
//   - Stage 3: if both operands are *RangeDense, run i→k→j over flat buffers;
//     otherwise run i→j→k through At/Set.
//
// Behavior highlights:
//   - The result has exactly the row ownership of the left chunk; rows outside it
//     are neither computed nor allocated.
//   - A chunk with zero owned rows yields a valid result with zero owned rows.
//   - No zero-skipping: 0*Inf and 0*NaN propagate as IEEE arithmetic dictates.
//
// Inputs:
//   - left: row-range matrix (r × n), any stored range.
//   - right: full matrix (n × c).
//
// Returns:
//   - *RangeDense: rows=r, cols=c, range=left.Range().
//
// Errors:
//   - ErrNilMatrix (wraps ErrInvalidArgument) for a nil operand.
//   - ErrDimensionMismatch when right is not full or inner dimensions disagree.
//   - ErrOutOfMemory when the result cannot be allocated.
//
// Determinism:
//   - For every (r, c) the sum runs k = 0..n-1 in order, in float32, with every
//     product rounded before it is added, so both paths agree bit for bit.
//
// Complexity:
//   - Time O(owned*n*c), Space O(owned*c).
//
// AI-Hints:
//   - Keep operands as *RangeDense to unlock the flat fast path.
func Multiply(left, right Matrix, opts ...Option) (*RangeDense, error) {
	if err := ValidateMulCompatible(left, right); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	rr := left.Range()
	inner, outCols := left.Cols(), right.Cols()
	res, err := NewRangeDense(left.Rows(), outCols, rr, opts...)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	if da, okA := left.(*RangeDense); okA {
		if db, okB := right.(*RangeDense); okB {
			multiplyDense(res, da, db)

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i-j-k) over global rows.
	var (
		i, j, k int
		av, bv  float32
		sum     float32
	)
	for i = rr.Start; i < rr.End; i++ {
		for j = 0; j < outCols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				if av, err = left.At(i, k); err != nil {
					return nil, matrixErrorf(opMultiply, err)
				}
				if bv, err = right.At(k, j); err != nil {
					return nil, matrixErrorf(opMultiply, err)
				}
				sum += float32(av * bv) // explicit rounding: no fused multiply-add
			}
			// Direct store: the numeric policy guards ingestion, not arithmetic.
			res.data[(i-rr.Start)*outCols+j] = sum
		}
	}

	return res, nil
}

// multiplyDense is the flat i→k→j kernel. res.data is zeroed by construction,
// so each res cell receives its k-terms in ascending k order.
//   - a.data layout: (i-start)*inner + k
//   - b.data layout: k*outCols + j (b is full)
func multiplyDense(res, a, b *RangeDense) {
	inner, outCols := a.cols, b.cols
	owned := a.end - a.start

	var i, j, k int
	var rowA, rowB, rowR int
	var av float32
	for i = 0; i < owned; i++ {
		rowA = i * inner
		rowR = i * outCols
		for k = 0; k < inner; k++ {
			av = a.data[rowA+k]
			rowB = k * outCols
			for j = 0; j < outCols; j++ {
				res.data[rowR+j] += float32(av * b.data[rowB+j])
			}
		}
	}
}
