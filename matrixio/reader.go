// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/chunkmul/matrix"
	"github.com/katalvlaran/chunkmul/partition"
)

// StdinPath is the path that selects standard input instead of a file.
const StdinPath = "-"

// Reader streams one matrix from a whitespace-separated token source.
// The header is read lazily, at most once; afterwards exactly one of
// ReadRange / ReadFull / ReadChunk may be called.
type Reader struct {
	sc       *bufio.Scanner
	o        Options
	consumed int // element tokens read after the header

	headerRead bool
	rows, cols int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc, o: gatherOptions(opts...)}
}

// Header returns the declared (rows, cols), reading them on first use.
//
// Errors:
//   - matrix.ErrMalformedInput for a missing, non-integer or negative count,
//     or a token longer than the scanner buffer (64 KiB).
//   - matrix.ErrSourceUnavailable when the underlying read fails.
func (r *Reader) Header() (rows, cols int, err error) {
	if r.headerRead {
		return r.rows, r.cols, nil
	}
	if r.rows, err = r.headerInt("rows"); err != nil {
		return 0, 0, err
	}
	if r.cols, err = r.headerInt("cols"); err != nil {
		return 0, 0, err
	}
	r.headerRead = true
	r.o.logger.Debug("matrix header", zap.Int("rows", r.rows), zap.Int("cols", r.cols))

	return r.rows, r.cols, nil
}

func (r *Reader) headerInt(name string) (int, error) {
	tok, err := r.token()
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("%w: header: missing %s", matrix.ErrMalformedInput, name)
		}
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: header: %s %q is not a non-negative integer", matrix.ErrMalformedInput, name, tok)
	}

	return n, nil
}

// token returns the next whitespace-separated token, io.ErrUnexpectedEOF at
// the end of input, or a wrapped read error.
func (r *Reader) token() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", scanError(err)
	}

	return "", io.ErrUnexpectedEOF
}

// scanError classifies a scanner failure. A token longer than the scanner
// buffer is readable but unparsable input; anything else is a read failure.
func scanError(err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: %w", matrix.ErrMalformedInput, err)
	}

	return fmt.Errorf("%w: %w", matrix.ErrSourceUnavailable, err)
}

// ReadRange reads the rows rr of the matrix.
// Implementation:
//   - Stage 1: read the header and check rr ⊆ [0, rows].
//   - Stage 2: allocate storage for rr only.
//   - Stage 3: consume rr.Start*cols tokens without parsing them.
//   - Stage 4: parse rr.Len()*cols tokens into the owned rows.
//
// Behavior highlights:
//   - Tokens after rr.End are never read.
//   - Malformed tokens are errors, never zeros.
//
// Errors:
//   - matrix.ErrInvalidArgument when rr lies outside the declared rows.
//   - matrix.ErrMalformedInput for bad tokens, NaN/Inf under the numeric policy,
//     or input ending before the declared element count.
//   - matrix.ErrOutOfMemory when the chunk cannot be allocated.
//
// Complexity:
//   - Time O(rr.End*cols) tokens scanned, Space O(rr.Len()*cols).
func (r *Reader) ReadRange(rr matrix.RowRange) (*matrix.RangeDense, error) {
	rows, cols, err := r.Header()
	if err != nil {
		return nil, err
	}
	if !rr.Within(rows) {
		return nil, fmt.Errorf("range %s outside %d declared rows: %w", rr, rows, matrix.ErrInvalidArgument)
	}

	m, err := matrix.NewRangeDense(rows, cols, rr, r.o.matrixOptions()...)
	if err != nil {
		return nil, err
	}

	if cols != 0 && rr.Start > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: declared %d×%d elements cannot be addressed", matrix.ErrMalformedInput, rows, cols)
	}
	if err = r.skip(rr.Start * cols); err != nil {
		return nil, err
	}
	r.o.logger.Debug("skipped foreign rows", zap.Int("rows", rr.Start), zap.Int("tokens", rr.Start*cols))

	var tok string
	var v float64
	for i := rr.Start; i < rr.End; i++ {
		for j := 0; j < cols; j++ {
			if tok, err = r.element(); err != nil {
				return nil, err
			}
			if v, err = strconv.ParseFloat(tok, 32); err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: token %q is not a float32", matrix.ErrMalformedInput, i, j, tok)
			}
			if err = m.Set(i, j, float32(v)); err != nil {
				return nil, fmt.Errorf("%w: %w", matrix.ErrMalformedInput, err)
			}
		}
	}
	r.o.logger.Debug("read rows", zap.Stringer("range", rr), zap.Int("cols", cols))

	return m, nil
}

// ReadFull reads every row and rejects tokens beyond the declared count.
func (r *Reader) ReadFull() (*matrix.RangeDense, error) {
	rows, _, err := r.Header()
	if err != nil {
		return nil, err
	}
	m, err := r.ReadRange(matrix.FullRange(rows))
	if err != nil {
		return nil, err
	}
	if r.sc.Scan() {
		return nil, fmt.Errorf("%w: unexpected token %q after %d declared elements",
			matrix.ErrMalformedInput, r.sc.Text(), r.consumed)
	}
	if err = r.sc.Err(); err != nil {
		return nil, scanError(err)
	}

	return m, nil
}

// ReadChunk reads the header, derives the worker's range with
// partition.ComputeRange from the declared row count, and reads that range.
func (r *Reader) ReadChunk(workerIndex, workerCount int) (*matrix.RangeDense, error) {
	rows, _, err := r.Header()
	if err != nil {
		return nil, err
	}
	rr, err := partition.ComputeRange(rows, workerIndex, workerCount)
	if err != nil {
		return nil, err
	}
	r.o.logger.Debug("worker chunk",
		zap.Int("worker", workerIndex), zap.Int("workers", workerCount), zap.Stringer("range", rr))

	return r.ReadRange(rr)
}

// skip consumes n element tokens without parsing them.
func (r *Reader) skip(n int) error {
	for ; n > 0; n-- {
		if _, err := r.element(); err != nil {
			return err
		}
	}

	return nil
}

// element reads one element token, turning end-of-input into a count mismatch.
func (r *Reader) element() (string, error) {
	tok, err := r.token()
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return "", fmt.Errorf("%w: declared %d×%d elements, input ends after %d",
				matrix.ErrMalformedInput, r.rows, r.cols, r.consumed)
		}
		return "", err
	}
	r.consumed++

	return tok, nil
}

// ReadFull reads a whole matrix from src.
func ReadFull(src io.Reader, opts ...Option) (*matrix.RangeDense, error) {
	return NewReader(src, opts...).ReadFull()
}

// ReadRange reads only the rows rr of the matrix in src.
func ReadRange(src io.Reader, rr matrix.RowRange, opts ...Option) (*matrix.RangeDense, error) {
	return NewReader(src, opts...).ReadRange(rr)
}

// ReadChunk reads the rows owned by worker workerIndex of workerCount.
func ReadChunk(src io.Reader, workerIndex, workerCount int, opts ...Option) (*matrix.RangeDense, error) {
	return NewReader(src, opts...).ReadChunk(workerIndex, workerCount)
}

// OpenSource opens path for reading; StdinPath selects standard input.
// Failures wrap matrix.ErrSourceUnavailable.
func OpenSource(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", matrix.ErrSourceUnavailable, err)
	}

	return f, nil
}

// ReadFullFile reads a whole matrix from path.
func ReadFullFile(path string, opts ...Option) (*matrix.RangeDense, error) {
	src, err := OpenSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return ReadFull(src, opts...)
}

// ReadChunkFile reads worker workerIndex's chunk of the matrix in path.
func ReadChunkFile(path string, workerIndex, workerCount int, opts ...Option) (*matrix.RangeDense, error) {
	src, err := OpenSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return ReadChunk(src, workerIndex, workerCount, opts...)
}
