// Package chunkmul computes one worker's horizontal slice of a dense matrix
// product.
//
// The left matrix is split by row ranges among N independent workers. Worker
// id reads only the rows it owns (earlier rows are skipped in the stream,
// later rows are never read), reads the whole right matrix, multiplies, and
// prints its slice. No worker talks to another: the partition alone
// guarantees that the slices are disjoint and cover every row.
//
// Under the hood, everything is organized under these packages:
//
//	matrix/    : RowRange, RangeDense (global-row addressed storage), Multiply, errors
//	partition/ : ComputeRange / Plan: the even row split among workers
//	matrixio/  : streaming chunked reader and bracketed-list writer
//	cmd/chunkmul : the worker command line
//
// Quick example (worker 1 of 2):
//
//	$ chunkmul 1 2 a.txt b.txt
//	[[30],
//	 [40]]
//
// See the examples directory for a runnable walkthrough.
package chunkmul
