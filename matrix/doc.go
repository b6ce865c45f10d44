// Package matrix offers row-range dense storage and the chunk multiplication kernel.
//
// The matrix package provides:
//
//   - RowRange, a half-open [Start, End) descriptor of globally indexed rows.
//   - RangeDense, a float32 row-major matrix that allocates only the rows it
//     owns while still being addressed by global row index.
//   - Multiply, which computes the owned rows of left × right for a full right operand.
//   - The unified error taxonomy shared by the partition and matrixio packages.
//
// A "full" matrix is the special case Range() == [0, Rows()).
//
// See the examples in this package for usage patterns.
package matrix
