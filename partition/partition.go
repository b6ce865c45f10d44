// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/katalvlaran/chunkmul/matrix"
)

// Operation tags for error wrapping.
const (
	opComputeRange = "ComputeRange"
	opPlan         = "Plan"
)

// ComputeRange returns the rows owned by worker workerIndex out of workerCount.
// Implementation:
//   - Stage 1: validate totalRows >= 0, workerCount >= 1, 0 <= workerIndex < workerCount.
//   - Stage 2: base = R/N, rem = R%N.
//   - Stage 3: id < rem → start = id*(base+1), size = base+1;
//     otherwise start = id*base + rem, size = base.
//
// Behavior highlights:
//   - Ranges are contiguous, disjoint, ordered by worker index and cover [0, R).
//   - Chunk sizes differ by at most one row.
//   - When N > R the trailing workers receive empty ranges (valid, not an error).
//
// Errors:
//   - matrix.ErrInvalidArgument for a zero/negative worker count, a worker index
//     outside [0, N) or a negative row count.
//
// Complexity:
//   - Time O(1), Space O(1).
func ComputeRange(totalRows, workerIndex, workerCount int) (matrix.RowRange, error) {
	if err := validate(totalRows, workerCount); err != nil {
		return matrix.RowRange{}, fmt.Errorf("%s: %w", opComputeRange, err)
	}
	if workerIndex < 0 || workerIndex >= workerCount {
		return matrix.RowRange{}, fmt.Errorf("%s: worker index %d not in [0,%d): %w",
			opComputeRange, workerIndex, workerCount, matrix.ErrInvalidArgument)
	}

	base := totalRows / workerCount
	rem := totalRows % workerCount

	var start, size int
	if workerIndex < rem {
		size = base + 1
		start = workerIndex * size
	} else {
		size = base
		start = workerIndex*size + rem
	}

	return matrix.RowRange{Start: start, End: start + size}, nil
}

// Plan returns the ranges of every worker in index order.
// Errors are those of ComputeRange.
func Plan(totalRows, workerCount int) ([]matrix.RowRange, error) {
	if err := validate(totalRows, workerCount); err != nil {
		return nil, fmt.Errorf("%s: %w", opPlan, err)
	}

	plan := make([]matrix.RowRange, workerCount)
	for id := range plan {
		rr, err := ComputeRange(totalRows, id, workerCount)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opPlan, err)
		}
		plan[id] = rr
	}

	return plan, nil
}

func validate(totalRows, workerCount int) error {
	if workerCount <= 0 {
		return fmt.Errorf("worker count must be >= 1, got %d: %w", workerCount, matrix.ErrInvalidArgument)
	}
	if totalRows < 0 {
		return fmt.Errorf("row count must be >= 0, got %d: %w", totalRows, matrix.ErrInvalidArgument)
	}

	return nil
}
