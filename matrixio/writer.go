// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/chunkmul/matrix"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = '['
	_fmtClose    = ']'
	_fmtSep      = ", "
	_fmtRowBreak = ",\n "
	_fmtEnd      = "]\n"
)

// Writer renders the owned rows of row-range matrices as bracketed lists.
type Writer struct {
	bw  *bufio.Writer
	o   Options
	buf []byte // scratch for strconv.AppendFloat
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	return &Writer{bw: bufio.NewWriter(w), o: gatherOptions(opts...)}
}

// WriteRange writes the owned rows of m and flushes.
// Implementation:
//   - Stage 1: reject nil matrices.
//   - Stage 2: for each owned row in ascending global order emit "[v0, v1, ...]",
//     separating rows with ",\n " and wrapping the chunk in "[" ... "]\n".
//   - Stage 3: flush; any write failure maps to ErrSinkUnavailable.
//
// Behavior highlights:
//   - Only owned rows are emitted, each with exactly Cols() values.
//   - A chunk with no owned rows renders as "[]\n".
//
// Errors:
//   - matrix.ErrNilMatrix for a nil matrix.
//   - ErrSinkUnavailable when the sink rejects the output.
func (w *Writer) WriteRange(m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("WriteRange: %w", err)
	}

	rr := m.Range()
	cols := m.Cols()
	_ = w.bw.WriteByte(_fmtOpen)
	for i := rr.Start; i < rr.End; i++ {
		if i > rr.Start {
			_, _ = w.bw.WriteString(_fmtRowBreak)
		}
		if err := w.writeRow(m, i, cols); err != nil {
			return fmt.Errorf("WriteRange: %w", err)
		}
	}
	_, _ = w.bw.WriteString(_fmtEnd)

	// bufio.Writer latches the first error; Flush reports it.
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("WriteRange: %w: %w", ErrSinkUnavailable, err)
	}
	w.o.logger.Debug("wrote rows", zap.Stringer("range", rr), zap.Int("cols", cols))

	return nil
}

// writeRow emits one "[v0, v1, ...]" row, using the flat row slice when m is
// a *RangeDense and At otherwise.
func (w *Writer) writeRow(m matrix.Matrix, row, cols int) error {
	var vals []float32
	if d, ok := m.(*matrix.RangeDense); ok {
		var err error
		if vals, err = d.Row(row); err != nil {
			return err
		}
	}

	_ = w.bw.WriteByte(_fmtOpen)
	for j := 0; j < cols; j++ {
		if j > 0 {
			_, _ = w.bw.WriteString(_fmtSep)
		}
		var v float32
		if vals != nil {
			v = vals[j]
		} else {
			var err error
			if v, err = m.At(row, j); err != nil {
				return err
			}
		}
		w.buf = strconv.AppendFloat(w.buf[:0], float64(v), w.o.format, w.o.precision, 32)
		_, _ = w.bw.Write(w.buf)
	}
	_ = w.bw.WriteByte(_fmtClose)

	return nil
}

// WriteRange writes the owned rows of m to dst.
func WriteRange(dst io.Writer, m matrix.Matrix, opts ...Option) error {
	return NewWriter(dst, opts...).WriteRange(m)
}
