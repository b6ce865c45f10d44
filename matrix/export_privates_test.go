// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose UNEXPORTED allocation and options helpers to matrix_test ONLY.
//   - Being a _test.go file in package matrix, it never ships in production builds.

var (
	// ExportedAllocFloat32 exposes allocFloat32 for budget/overflow tests.
	ExportedAllocFloat32 = allocFloat32

	// ExportedGatherOptions exposes gatherOptions for defaults tests.
	ExportedGatherOptions = gatherOptions
)
