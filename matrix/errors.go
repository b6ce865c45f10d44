// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix,
// partition and matrixio packages. All algorithms MUST return these sentinels
// (optionally wrapped with context) and tests MUST check them via errors.Is.
// No algorithm should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. The five top-level kinds (InvalidArgument,
// SourceUnavailable, MalformedInput, DimensionMismatch, OutOfMemory) are what
// the command boundary reports; the finer sentinels below wrap one of them so
// errors.Is matches both the precise cause and its kind.

// Top-level error kinds.
var (
	// ErrInvalidArgument is returned for nonsensical caller input: zero worker
	// count, worker index outside [0,N), nil operands, invalid row ranges.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrSourceUnavailable indicates that an input source could not be opened.
	ErrSourceUnavailable = errors.New("matrix: source unavailable")

	// ErrMalformedInput indicates a parse failure or a mismatch between the
	// declared element count and the tokens actually present.
	ErrMalformedInput = errors.New("matrix: malformed input")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Multiply
	// where left.Cols != right.Rows or the right operand is not a full matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfMemory indicates that backing storage could not be allocated.
	ErrOutOfMemory = errors.New("matrix: not enough memory to allocate a matrix")
)

// Refined sentinels. Each one wraps a top-level kind.
var (
	// ErrOutOfRange indicates that a column (or row) index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

	// ErrRowNotOwned indicates access to a global row that lies outside the
	// stored [start,end) range of a row-range matrix.
	ErrRowNotOwned = fmt.Errorf("%w: row not owned by this range", ErrOutOfRange)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidArgument)

	// ErrBadShape is returned when a requested shape or row range is invalid
	// (negative sizes, start > end, end > rows).
	ErrBadShape = fmt.Errorf("%w: invalid shape", ErrInvalidArgument)

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
