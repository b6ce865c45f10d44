// SPDX-License-Identifier: MIT
package matrixio_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chunkmul/matrix"
	"github.com/katalvlaran/chunkmul/matrixio"
)

// hide masks *RangeDense so the writer takes its generic At path.
type hide struct{ matrix.Matrix }

// failingWriter rejects every write.
type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriteRangeFormat(t *testing.T) {
	m, err := matrixio.ReadChunk(strings.NewReader("4 2\n1 2\n3 4\n5 6.5\n7 8\n"), 1, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrixio.WriteRange(&buf, m))
	require.Equal(t, "[[5, 6.5],\n [7, 8]]\n", buf.String())

	buf.Reset()
	require.NoError(t, matrixio.WriteRange(&buf, hide{m}))
	require.Equal(t, "[[5, 6.5],\n [7, 8]]\n", buf.String())
}

func TestWriteRangeSingleRowAndEmpty(t *testing.T) {
	m, err := matrixio.ReadFull(strings.NewReader("1 3\n0.1 -2 1e-7\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrixio.WriteRange(&buf, m))
	require.Equal(t, "[[0.1, -2, 1e-07]]\n", buf.String())

	empty, err := matrix.NewRangeDense(3, 2, matrix.RowRange{Start: 3, End: 3})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, matrixio.WriteRange(&buf, empty))
	require.Equal(t, "[]\n", buf.String())
}

func TestWriteRangePrecision(t *testing.T) {
	m, err := matrixio.ReadFull(strings.NewReader("1 2\n1 2.5\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrixio.WriteRange(&buf, m, matrixio.WithFormat('f'), matrixio.WithPrecision(6)))
	require.Equal(t, "[[1.000000, 2.500000]]\n", buf.String())
}

func TestWriteRangeErrors(t *testing.T) {
	m, err := matrix.NewFull(1, 1)
	require.NoError(t, err)

	boom := errors.New("pipe closed")
	err = matrixio.WriteRange(failingWriter{boom}, m)
	require.ErrorIs(t, err, matrixio.ErrSinkUnavailable)
	require.ErrorIs(t, err, boom)

	err = matrixio.WriteRange(&bytes.Buffer{}, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestWriterOptionsPanic(t *testing.T) {
	require.Panics(t, func() { matrixio.WithFormat('x') })
	require.Panics(t, func() { matrixio.WithPrecision(-2) })
	require.Panics(t, func() { matrixio.WithMaxElements(0) })
}
