// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/katalvlaran/chunkmul/matrix"
)

// relTol is the relative tolerance for float32 products of random data.
const relTol = 1e-5

// approx compares float32 values within relTol relative (plus a tiny absolute floor).
var approx = cmpopts.EquateApprox(relTol, 1e-6)

// gemmOracle computes A×B with gonum's float32 BLAS on row-major buffers.
func gemmOracle(t *testing.T, a, b *matrix.RangeDense) [][]float32 {
	t.Helper()
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	ga := blas32.General{Rows: m, Cols: k, Stride: k, Data: make([]float32, 0, m*k)}
	gb := blas32.General{Rows: k, Cols: n, Stride: n, Data: make([]float32, 0, k*n)}
	for i := 0; i < m; i++ {
		row, _ := a.Row(i)
		ga.Data = append(ga.Data, row...)
	}
	for i := 0; i < k; i++ {
		row, _ := b.Row(i)
		gb.Data = append(gb.Data, row...)
	}
	gc := blas32.General{Rows: m, Cols: n, Stride: n, Data: make([]float32, m*n)}
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1, ga, gb, 0, gc)

	out := make([][]float32, m)
	for i := range out {
		out[i] = gc.Data[i*n : (i+1)*n]
	}

	return out
}

// TestMultiplyIdentity: [[1,2],[3,4]] × I₂ with one worker.
func TestMultiplyIdentity(t *testing.T) {
	left := mustFromRows(t, [][]float32{{1, 2}, {3, 4}})
	right := mustFromRows(t, [][]float32{{1, 0}, {0, 1}})

	got, err := matrix.Multiply(left, right)
	require.NoError(t, err)
	require.Equal(t, matrix.RowRange{Start: 0, End: 2}, got.Range())
	require.Equal(t, [][]float32{{1, 2}, {3, 4}}, ownedRows(got))
}

// TestMultiplyTwoWorkers: 4×1 column × [[10]] split between two workers.
func TestMultiplyTwoWorkers(t *testing.T) {
	full := mustFromRows(t, [][]float32{{1}, {2}, {3}, {4}})
	right := mustFromRows(t, [][]float32{{10}})

	first, err := matrix.Multiply(mustSlice(t, full, matrix.RowRange{Start: 0, End: 2}), right)
	require.NoError(t, err)
	require.Equal(t, matrix.RowRange{Start: 0, End: 2}, first.Range())
	require.Equal(t, [][]float32{{10}, {20}}, ownedRows(first))

	second, err := matrix.Multiply(mustSlice(t, full, matrix.RowRange{Start: 2, End: 4}), right)
	require.NoError(t, err)
	require.Equal(t, matrix.RowRange{Start: 2, End: 4}, second.Range())
	require.Equal(t, 4, second.Rows())
	require.Equal(t, [][]float32{{30}, {40}}, ownedRows(second))
}

// TestMultiplyChunksMatchFull splits the left matrix among N workers and checks
// that the concatenated chunk products reproduce the unsplit product.
func TestMultiplyChunksMatchFull(t *testing.T) {
	left := randomFull(t, 13, 7, 1337)
	right := randomFull(t, 7, 5, 4242)
	want := gemmOracle(t, left, right)

	whole, err := matrix.Multiply(left, right)
	require.NoError(t, err)
	if diff := cmp.Diff(want, ownedRows(whole), approx); diff != "" {
		t.Fatalf("full product mismatch (-want +got):\n%s", diff)
	}

	for _, n := range []int{1, 2, 3, 5, 13, 20} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			var stitched [][]float32
			base, rem := 13/n, 13%n
			start := 0
			for id := 0; id < n; id++ {
				size := base
				if id < rem {
					size++
				}
				rr := matrix.RowRange{Start: start, End: start + size}
				start += size

				part, err := matrix.Multiply(mustSlice(t, left, rr), right)
				require.NoError(t, err)
				require.Equal(t, rr, part.Range())
				stitched = append(stitched, ownedRows(part)...)
			}
			// Same kernel, same order: chunking must not change a single bit.
			require.Equal(t, ownedRows(whole), stitched)
		})
	}
}

// TestMultiplyFallbackMatchesFastPath forces the generic At/Set path.
func TestMultiplyFallbackMatchesFastPath(t *testing.T) {
	left := mustSlice(t, randomFull(t, 9, 6, 7), matrix.RowRange{Start: 3, End: 8})
	right := randomFull(t, 6, 4, 8)

	fast, err := matrix.Multiply(left, right)
	require.NoError(t, err)
	slow, err := matrix.Multiply(hide{left}, hide{right})
	require.NoError(t, err)

	require.Equal(t, fast.Range(), slow.Range())
	require.Equal(t, ownedRows(fast), ownedRows(slow))
}

// TestMultiplyDimensionMismatch covers inner mismatch and a non-full right operand.
func TestMultiplyDimensionMismatch(t *testing.T) {
	left := randomFull(t, 3, 4, 1)

	_, err := matrix.Multiply(left, randomFull(t, 3, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	partialRight := mustSlice(t, randomFull(t, 4, 2, 3), matrix.RowRange{Start: 1, End: 4})
	_, err = matrix.Multiply(left, partialRight)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMultiplyNilOperand checks nil and typed-nil operands.
func TestMultiplyNilOperand(t *testing.T) {
	m := randomFull(t, 2, 2, 1)
	var typedNil *matrix.RangeDense

	for _, tc := range []struct {
		name        string
		left, right matrix.Matrix
	}{
		{"nil left", nil, m},
		{"nil right", m, nil},
		{"typed nil left", typedNil, m},
		{"typed nil right", m, typedNil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Multiply(tc.left, tc.right)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
			require.ErrorIs(t, err, matrix.ErrInvalidArgument)
		})
	}
}

// TestMultiplyEmptyChunk: a worker owning no rows yields an empty, valid result.
func TestMultiplyEmptyChunk(t *testing.T) {
	left := mustSlice(t, randomFull(t, 2, 3, 1), matrix.RowRange{Start: 2, End: 2})
	right := randomFull(t, 3, 4, 2)

	got, err := matrix.Multiply(left, right)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 4, got.Cols())
	require.Equal(t, 0, got.OwnedRows())
}

// TestMultiplyNoZeroSkip: 0 × Inf must surface as NaN, not be skipped.
func TestMultiplyNoZeroSkip(t *testing.T) {
	left := mustFromRows(t, [][]float32{{0}})
	right, err := matrix.NewFull(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, right.Set(0, 0, float32(math.Inf(1))))

	got, err := matrix.Multiply(left, right)
	require.NoError(t, err)
	v, _ := got.At(0, 0)
	require.True(t, math.IsNaN(float64(v)))
}
