// Package matrixio reads and writes row-range matrices as text.
//
// Input format (both operands):
//
//	rows cols
//	v00 v01 ... (rows*cols float tokens, row-major, any whitespace)
//
// A chunked read parses the header, consumes without parsing every token of
// the rows before the requested range, parses and stores the rows inside it,
// and never touches the rows after it. Rows owned by other workers are skipped,
// not validated.
//
// Output format is a bracketed nested list of the owned rows only:
//
//	[[1, 2],
//	 [3, 4]]
//
// The output is for display; it is not meant to be read back.
package matrixio
